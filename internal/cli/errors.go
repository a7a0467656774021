// errors.go - Error types and exit codes for the vajra CLI.
//
// STANDARDIZED PATTERN:
//   - Handlers ALWAYS return errors, never print-and-return-nil
//   - main maps the returned error to an exit code in one place
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/vajra/internal/benchmark"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 3
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError represents invalid command-line input.
type UsageError struct {
	Reason string
	Hint   string // optional example of correct usage
}

func (e *UsageError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s\n%s", e.Reason, e.Hint)
	}
	return e.Reason
}

// ConfigLoadError wraps a configuration file problem so the exit-code
// mapping can tell it apart from a failed benchmark.
type ConfigLoadError struct {
	Err error
}

func (e *ConfigLoadError) Error() string {
	return e.Err.Error()
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var cfgLoadErr *ConfigLoadError
	if errors.As(err, &cfgLoadErr) {
		return ExitConfigError
	}

	// Benchmark configuration problems are usage errors too: the user
	// typed them on the command line.
	var cfgErr *benchmark.ConfigError
	var parseErr *benchmark.ParseError
	if errors.As(err, &cfgErr) ||
		errors.As(err, &parseErr) ||
		errors.Is(err, benchmark.ErrMissingCommand) {
		return ExitUsageError
	}

	return ExitGeneralError
}

// DisplayError prints an error to stderr in a consistent format.
func DisplayError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), err.Error())
}
