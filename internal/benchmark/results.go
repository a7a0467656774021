// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/vajra/internal/stats"
)

// =============================================================================
// RESULT TYPE
// =============================================================================

// Result is the immutable summary of one benchmark run, derived once
// from the finalized timing series. All timing figures are milliseconds.
type Result struct {
	RunID   string   `json:"run_id"`
	Command string   `json:"command"`
	Mode    ExecMode `json:"mode"`

	Warmup     int `json:"warmup"`
	Iterations int `json:"iterations"`

	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`

	// Samples is the raw timing series in iteration order. Owned by the
	// engine while the run is in flight; read-only afterward.
	Samples []float64 `json:"samples"`

	Mean   float64 `json:"mean_ms"`
	StdDev float64 `json:"std_dev_ms"`
	Min    float64 `json:"min_ms"`
	Max    float64 `json:"max_ms"`
	Median float64 `json:"median_ms"`
	P95    float64 `json:"p95_ms"`
	P99    float64 `json:"p99_ms"`
	Range  float64 `json:"range_ms"`
	Total  float64 `json:"total_ms"`

	// OpsPerSec is derived throughput: 1000/mean, or 0 when the mean is
	// zero (an empty or immeasurably fast series has no rate).
	OpsPerSec float64 `json:"ops_per_sec"`

	// SpawnFailures counts iterations whose process could not be
	// created. Whether their timings appear in Samples is governed by
	// Options.DiscardSpawnFailures.
	SpawnFailures int `json:"spawn_failures"`
}

// newResult seeds a result from the run configuration. Statistics are
// filled in by computeStats once the series is finalized.
func newResult(cfg Config) *Result {
	return &Result{
		RunID:      uuid.NewString(),
		Command:    cfg.Command,
		Mode:       cfg.Mode,
		Warmup:     cfg.Warmup,
		Iterations: cfg.Iterations,
		Samples:    make([]float64, 0, cfg.Iterations),
	}
}

// computeStats reduces the timing series into the summary figures.
func (r *Result) computeStats() {
	r.Mean = stats.Mean(r.Samples)
	r.StdDev = stats.StdDev(r.Samples)
	r.Min = stats.Min(r.Samples)
	r.Max = stats.Max(r.Samples)
	r.Median = stats.Median(r.Samples)
	r.P95 = stats.Percentile(r.Samples, 95)
	r.P99 = stats.Percentile(r.Samples, 99)
	r.Range = stats.Range(r.Samples)
	r.Total = stats.Sum(r.Samples)

	if r.Mean > 0 {
		r.OpsPerSec = 1000 / r.Mean
	}
}

// Summary returns a one-line digest for logs and error paths.
func (r *Result) Summary() string {
	return fmt.Sprintf("%s: mean %.3fms ± %.3fms (min %.3fms, max %.3fms, %d runs)",
		r.Command, r.Mean, r.StdDev, r.Min, r.Max, r.Iterations)
}
