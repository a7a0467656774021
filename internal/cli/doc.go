// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses vajra's command line and drives a benchmark run
// end to end: load config, tokenize the target command, run the
// engine with a progress bar, and emit the report in the requested
// format.
//
// The option grammar is deliberately narrow. Only --long options are
// vajra's own; every bare word, including -short flags, belongs to the
// command under test. A literal -- ends option parsing for commands
// that take --long flags themselves.
package cli
