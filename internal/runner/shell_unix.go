// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package runner

import "os/exec"

// shellCommand hands the raw command line to the POSIX shell, matching
// what system(3) would run.
func shellCommand(raw string) *exec.Cmd {
	return exec.Command("/bin/sh", "-c", raw)
}
