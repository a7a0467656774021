// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/vajra/internal/benchmark"
	"github.com/jeranaias/vajra/internal/memory"
)

// =============================================================================
// TEXT FORMATTER
// =============================================================================

// labelWidth aligns the report's value column. Wide enough for the
// longest label plus a margin.
const labelWidth = 16

// TextFormatter renders the human-readable report.
type TextFormatter struct {
	options *Options
}

// NewTextFormatter creates a text formatter.
func NewTextFormatter(opts *Options) *TextFormatter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &TextFormatter{options: opts}
}

// Format renders the report. Styling comes entirely from the injected
// style table; with PlainStyles the output is clean ASCII.
func (f *TextFormatter) Format(result *benchmark.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result is nil")
	}
	s := f.options.Styles

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Benchmark Results"))
	sb.WriteString(" ")
	sb.WriteString(s.Command.Render(result.Command))
	sb.WriteString("\n\n")

	f.row(&sb, "Mean", fmt.Sprintf("%.3f ms", result.Mean))
	f.row(&sb, "Std Dev", fmt.Sprintf("%.3f ms", result.StdDev))
	f.row(&sb, "Median", fmt.Sprintf("%.3f ms", result.Median))
	f.row(&sb, "Min", fmt.Sprintf("%.3f ms", result.Min))
	f.row(&sb, "Max", fmt.Sprintf("%.3f ms", result.Max))
	f.row(&sb, "Range", fmt.Sprintf("%.3f ms", result.Range))
	f.row(&sb, "P95", fmt.Sprintf("%.3f ms", result.P95))
	f.row(&sb, "P99", fmt.Sprintf("%.3f ms", result.P99))
	f.row(&sb, "Ops/sec", fmt.Sprintf("%.2f", result.OpsPerSec))

	sb.WriteString("\n")
	f.row(&sb, "Iterations", fmt.Sprintf("%d (plus %d warmup)", result.Iterations, result.Warmup))
	f.row(&sb, "Total time", fmt.Sprintf("%.3f ms measured, %s wall", result.Total, result.Duration.Round(time.Millisecond)))

	if result.SpawnFailures > 0 {
		line := fmt.Sprintf("%d of %d invocations failed to spawn", result.SpawnFailures, result.Iterations)
		f.row(&sb, "Warning", s.Warn.Render(line))
	}

	if f.options.ShowMemory {
		info := memory.GetInfo()
		if info.PeakRSSKB > 0 {
			f.row(&sb, "Peak RSS", memory.Format(info.PeakRSSKB))
		}
		if info.CurrentRSSKB > 0 {
			f.row(&sb, "Current RSS", memory.Format(info.CurrentRSSKB))
		}
	}

	sb.WriteString(f.options.Styles.Dim.Render("run " + result.RunID))
	sb.WriteString("\n")

	return []byte(sb.String()), nil
}

// row writes one aligned label/value line. runewidth keeps the value
// column straight even if a label ever grows a wide rune.
func (f *TextFormatter) row(sb *strings.Builder, label, value string) {
	s := f.options.Styles
	padded := runewidth.FillRight(label+":", labelWidth)
	sb.WriteString("  ")
	sb.WriteString(s.Label.Render(padded))
	sb.WriteString(s.Value.Render(value))
	sb.WriteString("\n")
}

// FileExtension returns the file extension for text reports.
func (f *TextFormatter) FileExtension() string {
	return ".txt"
}
