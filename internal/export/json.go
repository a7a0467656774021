// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/jeranaias/vajra/internal/benchmark"
)

// =============================================================================
// JSON FORMATTER
// =============================================================================

// jsonReport is the stable machine-readable schema. Deliberately
// minimal: scripts parse these six figures plus the command, and the
// richer fields stay in the text and markdown reports so this document
// never churns.
type jsonReport struct {
	Command    string  `json:"command"`
	MeanMs     float64 `json:"mean_ms"`
	StdDevMs   float64 `json:"std_dev_ms"`
	MinMs      float64 `json:"min_ms"`
	MaxMs      float64 `json:"max_ms"`
	OpsPerSec  float64 `json:"ops_per_sec"`
	Iterations int     `json:"iterations"`
}

// JSONFormatter renders the machine-readable report.
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONFormatter{options: opts}
}

// Format renders the schema document, indented, trailing newline.
func (f *JSONFormatter) Format(result *benchmark.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result is nil")
	}

	report := jsonReport{
		Command:    result.Command,
		MeanMs:     result.Mean,
		StdDevMs:   result.StdDev,
		MinMs:      result.Min,
		MaxMs:      result.Max,
		OpsPerSec:  result.OpsPerSec,
		Iterations: result.Iterations,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return append(data, '\n'), nil
}

// FileExtension returns the file extension for JSON.
func (f *JSONFormatter) FileExtension() string {
	return ".json"
}

// HighlightTerminal syntax-highlights a JSON document for a color
// terminal. On any highlighting error the plain document is returned;
// decoration is never worth failing the run over.
func HighlightTerminal(data []byte) string {
	var sb strings.Builder
	if err := quick.Highlight(&sb, string(data), "json", "terminal256", "monokai"); err != nil {
		return string(data)
	}
	return sb.String()
}
