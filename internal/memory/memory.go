// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package memory reports the tool's own resident set size, for gauging
// how much overhead the benchmark harness itself carries.
package memory

import "fmt"

// Info holds resident set sizes in kilobytes. Fields are zero on
// platforms where a figure cannot be collected.
type Info struct {
	PeakRSSKB    uint64
	CurrentRSSKB uint64
}

// GetInfo collects memory usage for the current process.
func GetInfo() Info {
	return getInfo()
}

// Format renders a kilobyte count as a human-readable size.
func Format(kb uint64) string {
	switch {
	case kb < 1024:
		return fmt.Sprintf("%d KB", kb)
	case kb < 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(kb)/1024)
	default:
		return fmt.Sprintf("%.2f GB", float64(kb)/(1024*1024))
	}
}
