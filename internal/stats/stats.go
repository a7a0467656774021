// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package stats provides the pure reductions behind a benchmark report.
//
// Every function takes an ordered sequence of float64 samples and never
// mutates it; the ones that need sorted order (Median, Percentile) sort a
// private copy. Empty input yields the zero value rather than an error:
// a report over nothing is legitimately all zeros.
//
// Variance is population variance (divide by N, not N-1). A benchmark run
// is the entire population under study, not a sample drawn from a larger
// one, so Bessel's correction would be wrong here.
package stats

import (
	"math"
	"slices"
)

// Mean returns the arithmetic average, or 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Variance returns the population variance, or 0 when fewer than two
// samples exist (a single observation has no spread).
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := Mean(values)
	var acc float64
	for _, v := range values {
		diff := v - avg
		acc += diff * diff
	}
	return acc / float64(len(values))
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return math.Sqrt(Variance(values))
}

// Median returns the middle value of the sorted samples; for an even
// count it averages the two middle values. 0 for empty input.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Percentile returns the p-th percentile using nearest-rank linear
// interpolation: the fractional index p/100*(N-1) is interpolated between
// its floor and ceiling neighbors. p is clamped to [0, 100], so
// Percentile(v, 0) == Min(v) and Percentile(v, 100) == Max(v).
// 0 for empty input.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	index := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Min returns the smallest sample, or 0 for empty input.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return slices.Min(values)
}

// Max returns the largest sample, or 0 for empty input.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return slices.Max(values)
}

// Range returns Max - Min, or 0 for empty input.
func Range(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Max(values) - Min(values)
}

// Sum returns the total of all samples.
func Sum(values []float64) float64 {
	var acc float64
	for _, v := range values {
		acc += v
	}
	return acc
}
