// vajra - a command-line benchmarking tool.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jeranaias/vajra/internal/cli"
)

func main() {
	// Ctrl-C cancels the run between iterations; the report for
	// completed samples is lost, matching an aborted measurement.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(cli.Run(ctx, os.Args[1:]))
}
