// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package stats

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
	if got := Mean([]float64{42}); !almostEqual(got, 42) {
		t.Errorf("Mean([42]) = %v, want 42", got)
	}
	if got := Mean([]float64{1, 2, 3, 4}); !almostEqual(got, 2.5) {
		t.Errorf("Mean([1 2 3 4]) = %v, want 2.5", got)
	}
}

func TestVarianceAndStdDev(t *testing.T) {
	// Fewer than two samples have no spread.
	if got := Variance(nil); got != 0 {
		t.Errorf("Variance(nil) = %v, want 0", got)
	}
	if got := Variance([]float64{7}); got != 0 {
		t.Errorf("Variance([7]) = %v, want 0", got)
	}
	if got := StdDev([]float64{7}); got != 0 {
		t.Errorf("StdDev([7]) = %v, want 0", got)
	}

	// Population variance of [2 4 4 4 5 5 7 9] is exactly 4.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Variance(values); !almostEqual(got, 4) {
		t.Errorf("Variance = %v, want 4", got)
	}
	if got := StdDev(values); !almostEqual(got, 2) {
		t.Errorf("StdDev = %v, want 2", got)
	}
}

func TestMedian(t *testing.T) {
	if got := Median(nil); got != 0 {
		t.Errorf("Median(nil) = %v, want 0", got)
	}
	if got := Median([]float64{1, 2, 3}); !almostEqual(got, 2) {
		t.Errorf("Median odd = %v, want 2", got)
	}
	if got := Median([]float64{1, 2, 3, 4}); !almostEqual(got, 2.5) {
		t.Errorf("Median even = %v, want 2.5", got)
	}
	// Order must not matter.
	if got := Median([]float64{4, 1, 3, 2}); !almostEqual(got, 2.5) {
		t.Errorf("Median unsorted = %v, want 2.5", got)
	}
}

func TestPercentile(t *testing.T) {
	values := []float64{3, 1, 4, 2}

	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Percentile(nil, 50) = %v, want 0", got)
	}
	if got := Percentile(values, 0); !almostEqual(got, Min(values)) {
		t.Errorf("Percentile(v, 0) = %v, want Min = %v", got, Min(values))
	}
	if got := Percentile(values, 100); !almostEqual(got, Max(values)) {
		t.Errorf("Percentile(v, 100) = %v, want Max = %v", got, Max(values))
	}
	if got := Percentile(values, 50); !almostEqual(got, 2.5) {
		t.Errorf("Percentile(v, 50) = %v, want 2.5", got)
	}
	// Linear interpolation at a fractional index: p25 of [1 2 3 4] sits
	// a quarter of the way between 1 and 2.
	if got := Percentile(values, 25); !almostEqual(got, 1.75) {
		t.Errorf("Percentile(v, 25) = %v, want 1.75", got)
	}

	// Out-of-range p clamps instead of exploding.
	if got := Percentile(values, -10); !almostEqual(got, 1) {
		t.Errorf("Percentile(v, -10) = %v, want 1", got)
	}
	if got := Percentile(values, 250); !almostEqual(got, 4) {
		t.Errorf("Percentile(v, 250) = %v, want 4", got)
	}
}

func TestMinMaxRangeSum(t *testing.T) {
	if Min(nil) != 0 || Max(nil) != 0 || Range(nil) != 0 || Sum(nil) != 0 {
		t.Error("empty-input reductions must all be 0")
	}

	values := []float64{5, 3, 8, 1}
	if got := Min(values); !almostEqual(got, 1) {
		t.Errorf("Min = %v, want 1", got)
	}
	if got := Max(values); !almostEqual(got, 8) {
		t.Errorf("Max = %v, want 8", got)
	}
	if got := Range(values); !almostEqual(got, 7) {
		t.Errorf("Range = %v, want 7", got)
	}
	if got := Sum(values); !almostEqual(got, 17) {
		t.Errorf("Sum = %v, want 17", got)
	}
}

func TestReductionsDoNotMutateInput(t *testing.T) {
	values := []float64{9, 1, 5, 3}
	original := []float64{9, 1, 5, 3}

	Mean(values)
	Median(values)
	Percentile(values, 95)
	Variance(values)
	StdDev(values)
	Min(values)
	Max(values)
	Range(values)
	Sum(values)

	for i := range values {
		if values[i] != original[i] {
			t.Fatalf("input mutated at %d: %v -> %v", i, original[i], values[i])
		}
	}
}

func TestReductionsAreIdempotent(t *testing.T) {
	values := []float64{12.5, 0.25, 100, 7.75, 7.75}
	reductions := map[string]func([]float64) float64{
		"mean":     Mean,
		"median":   Median,
		"variance": Variance,
		"stddev":   StdDev,
		"min":      Min,
		"max":      Max,
		"range":    Range,
		"sum":      Sum,
		"p95":      func(v []float64) float64 { return Percentile(v, 95) },
	}

	for name, fn := range reductions {
		first := fn(values)
		second := fn(values)
		if first != second {
			t.Errorf("%s not bit-identical across calls: %v vs %v", name, first, second)
		}
	}
}
