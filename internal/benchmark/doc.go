// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package benchmark orchestrates a timed command benchmark run.
//
// The engine walks a fixed state machine (Idle, Warmup (optional),
// Measuring, Completed), executing the command once per iteration
// through a runner.Runner, timing each measured invocation with
// timing.Timer, and reducing the timing series with the stats package.
//
// # Key Types
//
//   - Config: validated run parameters (command, warmup, iterations, mode)
//   - Engine: the state machine; one Run per Engine value
//   - Options: explicit policy knobs (warmup progress counting,
//     spawn-failure sample handling)
//   - Result: immutable summary derived from the finalized timing series
//   - ProgressSink: receiver for per-iteration numeric progress events
//
// # Usage
//
//	cfg := benchmark.Config{Command: "ls -la", Tokens: command.Parse("ls -la"), Warmup: 5, Iterations: 100}
//	eng := benchmark.New(runner.New(), benchmark.Options{})
//	result, err := eng.Run(ctx, cfg, sink)
//
// The engine performs no console or file I/O. Rendering progress events
// and the final result is a presentation concern owned by the caller.
//
// # Measurement policy
//
// The benchmarked command's own exit status never alters control flow:
// a command that fails on every invocation still produces a complete,
// finite result. Only configuration and parse errors abort a run before
// measurement. Iterations are strictly sequential; concurrent execution
// of the measured command would contend for the very resources being
// measured.
package benchmark
