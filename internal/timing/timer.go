// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timing provides the interval timer used for each benchmark
// iteration. time.Time values from time.Now carry the monotonic clock,
// so wall-clock adjustments during a run cannot skew an interval.
package timing

import "time"

// Timer measures a single interval. One instance measures one interval;
// call Reset before reusing it for another. Not safe for concurrent use,
// which is fine: iterations never overlap.
type Timer struct {
	name      string
	startTime time.Time
	endTime   time.Time
	running   bool
	started   bool
}

// New creates a named timer. The name only matters for diagnostics.
func New(name string) *Timer {
	if name == "" {
		name = "timer"
	}
	return &Timer{name: name}
}

// Start captures the opening timestamp. Calling Start on a running timer
// restarts the interval.
func (t *Timer) Start() {
	t.startTime = time.Now()
	t.running = true
	t.started = true
}

// Stop captures the closing timestamp.
func (t *Timer) Stop() {
	t.endTime = time.Now()
	t.running = false
}

// Reset clears the started/running flags so the timer can measure a new
// interval. Elapsed readings return zero until the next Start.
func (t *Timer) Reset() {
	t.running = false
	t.started = false
}

// IsRunning reports whether Start has been called without a matching Stop.
func (t *Timer) IsRunning() bool {
	return t.running
}

// Name returns the timer's name.
func (t *Timer) Name() string {
	return t.name
}

// elapsed returns the captured interval. While the timer is running it
// returns a live "elapsed so far" value without stopping the timer.
// Before any Start it returns zero.
func (t *Timer) elapsed() time.Duration {
	if !t.started {
		return 0
	}
	if t.running {
		return time.Since(t.startTime)
	}
	return t.endTime.Sub(t.startTime)
}

// ElapsedSeconds returns the interval in seconds.
func (t *Timer) ElapsedSeconds() float64 {
	return t.elapsed().Seconds()
}

// ElapsedMilliseconds returns the interval in milliseconds.
func (t *Timer) ElapsedMilliseconds() float64 {
	return float64(t.elapsed().Nanoseconds()) / 1e6
}

// ElapsedMicroseconds returns the interval in microseconds.
func (t *Timer) ElapsedMicroseconds() float64 {
	return float64(t.elapsed().Nanoseconds()) / 1e3
}

// ElapsedNanoseconds returns the interval in nanoseconds.
func (t *Timer) ElapsedNanoseconds() float64 {
	return float64(t.elapsed().Nanoseconds())
}
