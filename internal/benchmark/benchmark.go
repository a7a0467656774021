// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"context"
	"strings"
	"time"

	"github.com/jeranaias/vajra/internal/runner"
	"github.com/jeranaias/vajra/internal/timing"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// ExecMode selects how the command is spawned.
type ExecMode string

const (
	// ModeDirect execs the parsed argv with no intermediate shell:
	// no globbing, no pipes, no injection risk.
	ModeDirect ExecMode = "direct"
	// ModeShell hands the raw command string to the system interpreter.
	ModeShell ExecMode = "shell"
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the validated parameters of one benchmark run. Construct
// it once from external input, call Validate, and treat it as immutable
// afterward.
type Config struct {
	// Command is the raw command line as the user wrote it.
	Command string
	// Tokens is the direct-mode argv, normally command.Parse(Command).
	// Ignored in shell mode.
	Tokens []string
	// Warmup is the number of unmeasured invocations run first.
	Warmup int
	// Iterations is the number of measured invocations.
	Iterations int
	// Mode selects direct exec or shell delegation. Empty means direct.
	Mode ExecMode
	// Format is the output format the caller will render: "text" or
	// "json". The engine never renders anything itself, but the format
	// is part of the run configuration and validated with the rest.
	Format string
}

// Validate checks the configuration eagerly, before any process is
// spawned. It normalizes the zero values (direct mode, text format).
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Command) == "" {
		return ErrMissingCommand
	}
	if c.Warmup < 0 {
		return &ConfigError{Field: "warmup", Reason: "must be >= 0"}
	}
	if c.Iterations < 1 {
		return &ConfigError{Field: "iterations", Reason: "must be >= 1"}
	}

	switch c.Mode {
	case "":
		c.Mode = ModeDirect
	case ModeDirect, ModeShell:
	default:
		return &ConfigError{Field: "mode", Reason: "must be direct or shell"}
	}

	switch c.Format {
	case "":
		c.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return &ConfigError{Field: "output format", Reason: "must be text or json"}
	}

	if c.Mode == ModeDirect && len(c.Tokens) == 0 {
		return &ParseError{Command: c.Command}
	}
	return nil
}

// execTokens returns what the runner receives: the argv in direct mode,
// the raw command line as a single element in shell mode.
func (c *Config) execTokens() []string {
	if c.Mode == ModeShell {
		return []string{c.Command}
	}
	return c.Tokens
}

// =============================================================================
// OPTIONS AND PROGRESS
// =============================================================================

// Options are the engine's explicit policy knobs. The zero value matches
// the historical tool behavior.
type Options struct {
	// WarmupInProgress counts warmup invocations in the progress stream:
	// the total becomes Warmup+Iterations and every invocation emits an
	// event. When false only measured iterations are reported.
	WarmupInProgress bool

	// DiscardSpawnFailures drops the degenerate timing of an iteration
	// whose process could not be spawned instead of recording it. The
	// run still executes all configured iterations either way; only the
	// sample is skipped, so the series can end up shorter than
	// Iterations. Default false: record unconditionally.
	DiscardSpawnFailures bool
}

// ProgressSink receives one event per counted invocation, with current
// strictly increasing from 1 to total. Sinks must be cheap: they run
// between timed iterations.
type ProgressSink interface {
	OnProgress(current, total int)
}

// ProgressFunc adapts a plain function to a ProgressSink.
type ProgressFunc func(current, total int)

// OnProgress implements ProgressSink.
func (f ProgressFunc) OnProgress(current, total int) { f(current, total) }

// discardProgress is used when the caller passes a nil sink.
type discardProgress struct{}

func (discardProgress) OnProgress(int, int) {}

// =============================================================================
// ENGINE
// =============================================================================

// State identifies where the engine is in its run.
type State int

const (
	StateIdle State = iota
	StateWarmup
	StateMeasuring
	StateCompleted
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWarmup:
		return "warmup"
	case StateMeasuring:
		return "measuring"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Engine drives one benchmark run through the warmup and measurement
// phases. Not safe for concurrent use; iterations are strictly
// sequential by design.
type Engine struct {
	runner runner.Runner
	opts   Options
	state  State
}

// New creates an engine using the given process runner.
func New(r runner.Runner, opts Options) *Engine {
	return &Engine{runner: r, opts: opts, state: StateIdle}
}

// State returns the engine's current phase.
func (e *Engine) State() State {
	return e.state
}

// Run executes the full benchmark: optional warmup, then exactly
// cfg.Iterations measured invocations, then result construction.
//
// The measured command's exit status never aborts the run, whether
// zero, non-zero, or the spawn failure sentinel. The only pre-measurement
// aborts are validation errors. Run blocks on each child process until
// it terminates; a hung command therefore blocks the run. As a
// documented extension beyond that baseline, Run checks ctx between
// iterations and stops early when the context is done; it never kills
// an in-flight child.
//
// Run performs no console or file I/O. Progress is reported only
// through sink, which may be nil.
func (e *Engine) Run(ctx context.Context, cfg Config, sink ProgressSink) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = discardProgress{}
	}

	tokens := cfg.execTokens()
	shellMode := cfg.Mode == ModeShell

	total := cfg.Iterations
	if e.opts.WarmupInProgress {
		total += cfg.Warmup
	}
	current := 0

	result := newResult(cfg)
	result.StartTime = time.Now()

	// Warmup: same invocations, no timing recorded. Stabilizes caches,
	// dynamic compilation, and CPU frequency scaling before measurement.
	if cfg.Warmup > 0 {
		e.state = StateWarmup
		for i := 0; i < cfg.Warmup; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			e.runner.Execute(tokens, shellMode)
			if e.opts.WarmupInProgress {
				current++
				sink.OnProgress(current, total)
			}
		}
	}

	e.state = StateMeasuring
	timer := timing.New("iteration")
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		timer.Reset()
		timer.Start()
		exitCode := e.runner.Execute(tokens, shellMode)
		timer.Stop()

		if exitCode != runner.SpawnFailure || !e.opts.DiscardSpawnFailures {
			result.Samples = append(result.Samples, timer.ElapsedMilliseconds())
		}
		if exitCode == runner.SpawnFailure {
			result.SpawnFailures++
		}

		current++
		sink.OnProgress(current, total)
	}

	e.state = StateCompleted
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.computeStats()

	return result, nil
}
