// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/vajra/internal/runner"
)

// fakeRunner is a scripted runner.Runner. It records every invocation
// and replays exit codes from a list, defaulting to 0 when exhausted.
type fakeRunner struct {
	calls     int
	lastShell bool
	lastArgv  []string
	exitCodes []int
	delay     time.Duration
}

func (f *fakeRunner) Execute(tokens []string, shellMode bool) int {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	code := 0
	if f.calls < len(f.exitCodes) {
		code = f.exitCodes[f.calls]
	}
	f.calls++
	f.lastShell = shellMode
	f.lastArgv = tokens
	return code
}

// progressRecorder captures the event stream for order assertions.
type progressRecorder struct {
	events [][2]int
}

func (p *progressRecorder) OnProgress(current, total int) {
	p.events = append(p.events, [2]int{current, total})
}

func directConfig(iterations, warmup int) Config {
	return Config{
		Command:    "echo hi",
		Tokens:     []string{"echo", "hi"},
		Warmup:     warmup,
		Iterations: iterations,
	}
}

func TestRunProducesExactSeriesAndProgress(t *testing.T) {
	fr := &fakeRunner{}
	sink := &progressRecorder{}
	eng := New(fr, Options{})

	result, err := eng.Run(context.Background(), directConfig(5, 0), sink)
	require.NoError(t, err)

	assert.Len(t, result.Samples, 5)
	assert.Equal(t, 5, fr.calls)
	assert.Equal(t, StateCompleted, eng.State())

	want := [][2]int{{1, 5}, {2, 5}, {3, 5}, {4, 5}, {5, 5}}
	assert.Equal(t, want, sink.events, "progress must be gapless and end at total")
}

func TestRunWarmupDiscardsTimingButExecutes(t *testing.T) {
	fr := &fakeRunner{}
	sink := &progressRecorder{}
	eng := New(fr, Options{})

	result, err := eng.Run(context.Background(), directConfig(3, 2), sink)
	require.NoError(t, err)

	// Warmup invocations run but leave no sample and, with the default
	// options, no progress event.
	assert.Equal(t, 5, fr.calls)
	assert.Len(t, result.Samples, 3)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, sink.events)
}

func TestRunWarmupSharedProgressCounter(t *testing.T) {
	fr := &fakeRunner{}
	sink := &progressRecorder{}
	eng := New(fr, Options{WarmupInProgress: true})

	_, err := eng.Run(context.Background(), directConfig(3, 2), sink)
	require.NoError(t, err)

	want := [][2]int{{1, 5}, {2, 5}, {3, 5}, {4, 5}, {5, 5}}
	assert.Equal(t, want, sink.events)
}

func TestRunIgnoresNonZeroExit(t *testing.T) {
	// A command failing on every invocation still yields a complete run
	// with finite, non-negative statistics.
	fr := &fakeRunner{exitCodes: []int{1, 1, 1, 1}}
	eng := New(fr, Options{})

	result, err := eng.Run(context.Background(), directConfig(4, 0), nil)
	require.NoError(t, err)

	assert.Len(t, result.Samples, 4)
	assert.GreaterOrEqual(t, result.Mean, 0.0)
	assert.Zero(t, result.SpawnFailures)
}

func TestRunRecordsSpawnFailuresByDefault(t *testing.T) {
	fr := &fakeRunner{exitCodes: []int{0, runner.SpawnFailure, 0}}
	eng := New(fr, Options{})

	result, err := eng.Run(context.Background(), directConfig(3, 0), nil)
	require.NoError(t, err)

	assert.Len(t, result.Samples, 3, "default policy records the degenerate timing")
	assert.Equal(t, 1, result.SpawnFailures)
}

func TestRunDiscardSpawnFailuresPolicy(t *testing.T) {
	fr := &fakeRunner{exitCodes: []int{runner.SpawnFailure, 0, runner.SpawnFailure}}
	sink := &progressRecorder{}
	eng := New(fr, Options{DiscardSpawnFailures: true})

	result, err := eng.Run(context.Background(), directConfig(3, 0), sink)
	require.NoError(t, err)

	assert.Len(t, result.Samples, 1)
	assert.Equal(t, 2, result.SpawnFailures)
	// The run still executes and reports every configured iteration.
	assert.Equal(t, 3, fr.calls)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, sink.events)
}

func TestRunShellModePassesRawCommand(t *testing.T) {
	fr := &fakeRunner{}
	eng := New(fr, Options{})

	cfg := Config{
		Command:    "echo a && echo b",
		Warmup:     0,
		Iterations: 1,
		Mode:       ModeShell,
	}
	_, err := eng.Run(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.True(t, fr.lastShell)
	assert.Equal(t, []string{"echo a && echo b"}, fr.lastArgv)
}

func TestRunThroughput(t *testing.T) {
	fr := &fakeRunner{delay: time.Millisecond}
	eng := New(fr, Options{})

	result, err := eng.Run(context.Background(), directConfig(3, 0), nil)
	require.NoError(t, err)

	require.Greater(t, result.Mean, 0.0)
	assert.InEpsilon(t, 1000/result.Mean, result.OpsPerSec, 1e-9)
}

func TestRunValidationFailsFast(t *testing.T) {
	fr := &fakeRunner{}
	eng := New(fr, Options{})
	ctx := context.Background()

	_, err := eng.Run(ctx, Config{Command: "   ", Iterations: 5}, nil)
	assert.ErrorIs(t, err, ErrMissingCommand)

	_, err = eng.Run(ctx, Config{Command: "ls", Tokens: []string{"ls"}, Iterations: 0}, nil)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	_, err = eng.Run(ctx, Config{Command: "ls", Tokens: []string{"ls"}, Iterations: 3, Warmup: -1}, nil)
	assert.ErrorAs(t, err, &cfgErr)

	_, err = eng.Run(ctx, Config{Command: "ls", Tokens: []string{"ls"}, Iterations: 3, Format: "yaml"}, nil)
	assert.ErrorAs(t, err, &cfgErr)

	// Quote-only command: non-empty string, zero tokens, direct mode.
	var parseErr *ParseError
	_, err = eng.Run(ctx, Config{Command: `""`, Tokens: nil, Iterations: 3}, nil)
	assert.ErrorAs(t, err, &parseErr)

	// Nothing was ever spawned.
	assert.Zero(t, fr.calls)
}

func TestRunContextCancelledBetweenIterations(t *testing.T) {
	fr := &fakeRunner{}
	eng := New(fr, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Run(ctx, directConfig(5, 0), nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, fr.calls)
}

func TestConfigValidateNormalizesZeroValues(t *testing.T) {
	cfg := Config{Command: "ls", Tokens: []string{"ls"}, Iterations: 1}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ModeDirect, cfg.Mode)
	assert.Equal(t, FormatText, cfg.Format)
}
