// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for the vajra CLI.
//
// Behavior differs by environment:
// - Interactive terminals: colors, live progress bar
// - Piped output: plain text, no progress redraws
// - CI: respects NO_COLOR (https://no-color.org/)

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStderrTTY returns true if stderr is a terminal.
func IsStderrTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// =============================================================================
// TERMINAL WIDTH
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth keeps the progress bar renderable on tiny panes
	MinTerminalWidth = 40
)

// TerminalWidth returns the current terminal width, clamped to the
// minimum, with a fallback when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	colorsEnabled     bool
	colorsEnabledOnce sync.Once
)

// ColorsEnabled returns true if colored output should be used, given
// the config color mode ("auto", "always", "never"). NO_COLOR and
// FORCE_COLOR override TTY detection in auto mode.
func ColorsEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	colorsEnabledOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			colorsEnabled = false
			return
		}
		if os.Getenv("FORCE_COLOR") != "" {
			colorsEnabled = true
			return
		}
		colorsEnabled = IsStdoutTTY()
	})
	return colorsEnabled
}

// ColorProfile returns the termenv profile to render with.
func ColorProfile(mode string) termenv.Profile {
	if !ColorsEnabled(mode) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
