// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package runner spawns one child process per benchmark iteration and
// reports how it exited.
package runner

import (
	"errors"
	"os/exec"
)

// SpawnFailure is the sentinel exit code for an iteration whose process
// could not be created or awaited at all. It is distinct from any real
// exit status the child could report.
const SpawnFailure = -1

// Runner executes one command invocation and returns its exit code.
//
// In direct mode tokens is the argv: tokens[0] is the program, the rest
// its arguments, and no shell sits in between. In shell mode the command
// travels as a single raw string in tokens[0] and is handed to the
// system interpreter, which enables globbing and pipes at the cost of
// measurement noise and injection exposure.
type Runner interface {
	Execute(tokens []string, shellMode bool) int
}

// ProcessRunner is the OS-backed Runner. The child's stdout and stderr
// are discarded so its I/O neither pollutes the tool's own output nor
// varies the timing with console throughput. It holds no state between
// calls and leaks no process or descriptor resources: every invocation
// is a fresh exec.Cmd that is waited to completion.
type ProcessRunner struct{}

// New creates a ProcessRunner.
func New() *ProcessRunner {
	return &ProcessRunner{}
}

// Execute runs one invocation and blocks until the child terminates.
// It returns the child's exit code, or SpawnFailure when the process
// could not be created. The caller decides what a non-zero exit means;
// Execute itself treats it as a perfectly normal outcome.
func (r *ProcessRunner) Execute(tokens []string, shellMode bool) int {
	if len(tokens) == 0 || tokens[0] == "" {
		return SpawnFailure
	}

	var cmd *exec.Cmd
	if shellMode {
		cmd = shellCommand(tokens[0])
	} else {
		cmd = exec.Command(tokens[0], tokens[1:]...)
	}

	// Leaving Stdout/Stderr nil connects the child to the null device,
	// and Run always reaps the child, so repeated calls cannot
	// accumulate zombies or open descriptors.
	err := cmd.Run()
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return SpawnFailure
}
