// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows

package runner

import (
	"os"
	"os/exec"
)

// shellCommand hands the raw command line to cmd.exe, the Windows
// equivalent of system(3). COMSPEC is honored when set.
func shellCommand(raw string) *exec.Cmd {
	shell := os.Getenv("COMSPEC")
	if shell == "" {
		shell = "cmd.exe"
	}
	return exec.Command(shell, "/C", raw)
}
