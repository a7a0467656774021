// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package memory

import "golang.org/x/sys/unix"

// getInfo reads the peak RSS from getrusage. ru_maxrss is bytes on
// Darwin, unlike Linux. No cheap current-RSS source exists here, so
// CurrentRSSKB stays zero.
func getInfo() Info {
	var info Info

	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err == nil && ru.Maxrss > 0 {
		info.PeakRSSKB = uint64(ru.Maxrss) / 1024
	}

	return info
}
