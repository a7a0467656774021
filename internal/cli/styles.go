// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Styling for CLI-level output (usage, errors).
//
// Report styling lives in internal/export; these styles cover only
// what the CLI itself prints around a report.

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/vajra/internal/export"
)

// =============================================================================
// CLI STYLES
// =============================================================================

var (
	// ErrorStyle marks error prefixes on stderr
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// HeadingStyle is used for section headers in help output
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// DimStyle de-emphasizes secondary lines
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// ConfigureColor sets the global lipgloss profile from the configured
// color mode and returns the report styles to match. Call once, before
// any styled output.
func ConfigureColor(mode string) export.Styles {
	profile := ColorProfile(mode)
	lipgloss.SetColorProfile(profile)

	if !ColorsEnabled(mode) {
		return export.PlainStyles()
	}
	return export.ColorStyles()
}
