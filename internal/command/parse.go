// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command tokenizes raw command strings for direct execution.
//
// The tokenizer is deliberately simple: double and single quotes both
// toggle a single "quoted" state (they are not matched against each
// other), there is no escape character, and quote characters never
// appear in the emitted tokens. This is not a shell grammar; commands
// that need globbing, pipes, or variable expansion belong in shell mode.
package command

// Parse splits a raw command string into an argument vector.
//
// Unquoted whitespace separates tokens. A quote character flips the
// quoted state, so an unterminated trailing quote treats the remainder
// of the string as a single quoted region. Empty input yields nil;
// deciding whether that is an error is the caller's job.
func Parse(raw string) []string {
	var args []string
	var current []rune
	inQuote := false

	flush := func() {
		if len(current) > 0 {
			args = append(args, string(current))
			current = current[:0]
		}
	}

	for _, c := range raw {
		switch {
		case c == '"' || c == '\'':
			inQuote = !inQuote
		case isSpace(c) && !inQuote:
			flush()
		default:
			current = append(current, c)
		}
	}
	flush()

	return args
}

// isSpace reports whether c is a token separator. Tabs and newlines
// count so that commands pasted from scripts tokenize sensibly.
func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
