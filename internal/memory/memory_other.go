// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !linux && !darwin

package memory

// getInfo returns zeros on platforms without a rusage source; callers
// treat zero as "unavailable".
func getInfo() Info {
	return Info{}
}
