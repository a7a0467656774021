// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// bench.go - The benchmark command handler. Wires config, tokenizer,
// engine, progress rendering and report export together.

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jeranaias/vajra/internal/benchmark"
	"github.com/jeranaias/vajra/internal/command"
	"github.com/jeranaias/vajra/internal/config"
	"github.com/jeranaias/vajra/internal/export"
	"github.com/jeranaias/vajra/internal/runner"
	"github.com/jeranaias/vajra/internal/ui/components"
)

// =============================================================================
// BENCHMARK HANDLER
// =============================================================================

// runBenchmark executes one full benchmark from parsed arguments.
func runBenchmark(ctx context.Context, parser *ArgParser) error {
	cfg, err := loadConfig(parser)
	if err != nil {
		return err
	}

	styles := ConfigureColor(cfg.UI.Color)

	bcfg, err := buildBenchmarkConfig(parser, cfg)
	if err != nil {
		return err
	}

	opts := benchmark.Options{
		WarmupInProgress:     parser.Switch("warmup-progress") || cfg.UI.WarmupInProgress,
		DiscardSpawnFailures: parser.Switch("discard-spawn-failures"),
	}
	engine := benchmark.New(runner.New(), opts)

	// Decoration only in text mode; JSON consumers get bytes they can
	// parse and nothing else on stdout.
	if bcfg.Format == benchmark.FormatText {
		header := HeadingStyle.Render("Benchmarking:") + " " + bcfg.Command
		if bcfg.Warmup > 0 {
			header += DimStyle.Render(fmt.Sprintf("  (%d warmup, %d measured)", bcfg.Warmup, bcfg.Iterations))
		} else {
			header += DimStyle.Render(fmt.Sprintf("  (%d measured)", bcfg.Iterations))
		}
		fmt.Println(header)
	}

	// Progress goes to stderr so piped stdout stays machine-clean.
	var sink benchmark.ProgressSink
	var renderer *components.ProgressRenderer
	if progressEnabled(bcfg.Format) {
		renderer = components.NewProgressRenderer(os.Stderr, 0)
		sink = renderer
	}

	result, err := engine.Run(ctx, bcfg, sink)
	if renderer != nil {
		renderer.Clear()
	}
	if err != nil {
		return err
	}

	showMemory := parser.Switch("show-memory") || cfg.UI.ShowMemory
	exportOpts := &export.Options{Styles: styles, ShowMemory: showMemory}

	if err := emitReport(result, bcfg.Format, exportOpts, cfg.UI.Color); err != nil {
		return err
	}

	if path := parser.Option("export-markdown", ""); path != "" {
		if err := exportMarkdown(result, path, exportOpts); err != nil {
			return err
		}
	}
	return nil
}

// progressEnabled reports whether the live progress bar should render.
// JSON mode runs undecorated, like the original tool; otherwise the bar
// needs a terminal on stderr to redraw in place.
func progressEnabled(format string) bool {
	return format == benchmark.FormatText && IsStderrTTY()
}

// loadConfig resolves the config file, honoring --config. Failures are
// wrapped so they exit with the configuration error code.
func loadConfig(parser *ArgParser) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path := parser.Option("config", ""); path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, &ConfigLoadError{Err: err}
	}
	return cfg, nil
}

// buildBenchmarkConfig merges config-file defaults with command-line
// overrides into a validated benchmark configuration.
func buildBenchmarkConfig(parser *ArgParser, cfg *config.Config) (benchmark.Config, error) {
	var zero benchmark.Config

	warmup := cfg.Defaults.Warmup
	if n, ok, err := parser.OptionInt("warmup"); err != nil {
		return zero, err
	} else if ok {
		warmup = n
	}

	iterations := cfg.Defaults.Iterations
	if n, ok, err := parser.OptionInt("iterations"); err != nil {
		return zero, err
	} else if ok {
		iterations = n
	}

	mode := benchmark.ModeDirect
	if parser.Switch("shell") || cfg.Defaults.Shell {
		mode = benchmark.ModeShell
	}

	raw := parser.Command()
	bcfg := benchmark.Config{
		Command:    raw,
		Tokens:     command.Parse(raw),
		Warmup:     warmup,
		Iterations: iterations,
		Mode:       mode,
		Format:     parser.Option("output", cfg.Defaults.Output),
	}
	if err := bcfg.Validate(); err != nil {
		return zero, err
	}
	return bcfg, nil
}

// emitReport renders the result to stdout in the requested format.
func emitReport(result *benchmark.Result, format string, opts *export.Options, colorMode string) error {
	formatter, err := export.ForFormat(format, opts)
	if err != nil {
		return err
	}
	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if format == benchmark.FormatJSON && IsStdoutTTY() && ColorsEnabled(colorMode) {
		fmt.Print(export.HighlightTerminal(data))
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}

// exportMarkdown writes the markdown report alongside the main output.
func exportMarkdown(result *benchmark.Result, path string, opts *export.Options) error {
	formatter := export.NewMarkdownFormatter(opts)
	data, err := formatter.Format(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	fmt.Println(DimStyle.Render("markdown report written to " + path))
	return nil
}
