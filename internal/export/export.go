// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders a finished benchmark result. The engine knows
// nothing about presentation; everything visual lives here and in the
// cli package.
package export

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/vajra/internal/benchmark"
)

// =============================================================================
// FORMATTER INTERFACE
// =============================================================================

// Formatter renders a Result into one output format.
type Formatter interface {
	Format(result *benchmark.Result) ([]byte, error)
	FileExtension() string
}

// Options control presentation details shared across formatters.
type Options struct {
	// Styles is the injected style table for text output. Formatters
	// hold no process-wide color state of their own.
	Styles Styles
	// ShowMemory appends the tool's own RSS figures to the text report.
	ShowMemory bool
}

// DefaultOptions returns options with plain (uncolored) styles.
func DefaultOptions() *Options {
	return &Options{Styles: PlainStyles()}
}

// ForFormat returns the formatter for a format name.
func ForFormat(format string, opts *Options) (Formatter, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	switch format {
	case benchmark.FormatText:
		return NewTextFormatter(opts), nil
	case benchmark.FormatJSON:
		return NewJSONFormatter(opts), nil
	case "markdown":
		return NewMarkdownFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// =============================================================================
// STYLE TABLE
// =============================================================================

// Styles is the style configuration injected into the text formatter.
type Styles struct {
	Title   lipgloss.Style
	Command lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Warn    lipgloss.Style
	Dim     lipgloss.Style
}

// PlainStyles returns unstyled styles for non-TTY output and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:   plain,
		Command: plain,
		Label:   plain,
		Value:   plain,
		Warn:    plain,
		Dim:     plain,
	}
}

// ColorStyles returns the standard vajra palette.
func ColorStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),  // cyan
		Command: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")), // yellow
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),            // light gray
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),            // off-white
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // orange
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("242")),            // dim gray
	}
}
