// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Entry point and dispatch for the vajra CLI.

package cli

import (
	"context"
	"fmt"
	"runtime"
)

// Version information (can be overridden at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const usageText = `vajra - command-line benchmarking tool

Runs a command repeatedly, times every run, and reports mean, standard
deviation, min, max and throughput.

Usage:
  vajra [OPTIONS] <command>
  vajra [OPTIONS] -- <command with --flags of its own>

Options:
  --warmup <n>             Warmup runs before measuring (default 5)
  --iterations <n>         Measured runs (default 100)
  --output <format>        Report format: text or json (default text)
  --shell                  Run the command through the system shell
  --show-memory            Append vajra's own memory usage to the report
  --export-markdown <file> Also write a markdown report to <file>
  --warmup-progress        Count warmup runs in the progress bar
  --discard-spawn-failures Drop timings of runs that failed to spawn
  --config <file>          Config file (default ~/.vajra/config.toml)
  --help                   Show this help
  --version                Show version information

Examples:
  vajra sleep 0.1
  vajra --warmup 10 --iterations 500 ls -la
  vajra --shell 'echo $HOME | wc -c'
  vajra --output json grep -r needle . > bench.json

Exit codes:
  0  success
  1  benchmark failed
  2  invalid usage
  3  configuration error
`

// Run parses argv (without the program name) and executes the
// requested action. It returns the process exit code.
func Run(ctx context.Context, argv []string) int {
	parser, err := NewArgParser(argv)
	if err != nil {
		DisplayError(err)
		fmt.Println(DimStyle.Render("Run 'vajra --help' for usage."))
		return ExitCodeFor(err)
	}

	switch {
	case parser.Switch("help"), len(argv) == 0:
		fmt.Print(usageText)
		return ExitSuccess

	case parser.Switch("version"):
		printVersion()
		return ExitSuccess
	}

	if err := runBenchmark(ctx, parser); err != nil {
		DisplayError(err)
		if _, ok := err.(*UsageError); ok {
			fmt.Println(DimStyle.Render("Run 'vajra --help' for usage."))
		}
		return ExitCodeFor(err)
	}
	return ExitSuccess
}

func printVersion() {
	fmt.Printf("vajra %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
