// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/vajra/internal/benchmark"
)

// =============================================================================
// MARKDOWN FORMATTER
// =============================================================================

// MarkdownFormatter renders a result as a standalone markdown report,
// suitable for dropping into a PR description or a docs page.
type MarkdownFormatter struct {
	options *Options
}

// NewMarkdownFormatter creates a Markdown formatter.
func NewMarkdownFormatter(opts *Options) *MarkdownFormatter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownFormatter{options: opts}
}

// Format renders the report.
func (f *MarkdownFormatter) Format(result *benchmark.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result is nil")
	}

	var sb strings.Builder
	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("- **Command**: `%s`\n", result.Command))
	sb.WriteString(fmt.Sprintf("- **Mode**: %s\n", result.Mode))
	sb.WriteString(fmt.Sprintf("- **Iterations**: %d (plus %d warmup)\n", result.Iterations, result.Warmup))
	sb.WriteString(fmt.Sprintf("- **Date**: %s\n", result.EndTime.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- **Run ID**: %s\n", result.RunID))
	if result.SpawnFailures > 0 {
		sb.WriteString(fmt.Sprintf("- **Spawn failures**: %d\n", result.SpawnFailures))
	}
	sb.WriteString("\n")

	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	row := func(metric, value string) {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", metric, value))
	}
	row("Mean", fmt.Sprintf("%.3f ms", result.Mean))
	row("Std Dev", fmt.Sprintf("%.3f ms", result.StdDev))
	row("Median", fmt.Sprintf("%.3f ms", result.Median))
	row("Min", fmt.Sprintf("%.3f ms", result.Min))
	row("Max", fmt.Sprintf("%.3f ms", result.Max))
	row("Range", fmt.Sprintf("%.3f ms", result.Range))
	row("P95", fmt.Sprintf("%.3f ms", result.P95))
	row("P99", fmt.Sprintf("%.3f ms", result.P99))
	row("Ops/sec", fmt.Sprintf("%.2f", result.OpsPerSec))

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (f *MarkdownFormatter) FileExtension() string {
	return ".md"
}
