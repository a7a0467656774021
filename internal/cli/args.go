// args.go - Argument parsing for the vajra CLI.
//
// Only --long options belong to vajra itself; every bare word is part
// of the command being benchmarked. That keeps invocations like
// `vajra ls -la` working without an explicit separator, since -la is
// not a vajra option. A literal `--` still forces everything after it
// into the command for the rare case where the benchmarked command
// takes --long flags of its own.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// valueOptions are the options that consume the following argument.
// Everything else recognized is a boolean switch.
var valueOptions = map[string]bool{
	"warmup":          true,
	"iterations":      true,
	"output":          true,
	"export-markdown": true,
	"config":          true,
}

// boolOptions are the recognized switches.
var boolOptions = map[string]bool{
	"shell":                  true,
	"show-memory":            true,
	"warmup-progress":        true,
	"discard-spawn-failures": true,
	"help":                   true,
	"version":                true,
}

// ArgParser separates vajra's own options from the command words that
// make up the benchmark target.
type ArgParser struct {
	options    map[string]string // --key value and --key=value
	switches   map[string]bool   // --key with no value
	positional []string          // command words, in order
	raw        []string
}

// NewArgParser parses raw arguments (os.Args[1:]).
//
// Supported forms:
//
//	--option value     value option, space separated
//	--option=value     value option, equals form
//	--switch           boolean switch
//	--                 end of options; the rest is the command
//	anything else      command word
//
// Unknown --options are an error so typos fail loudly instead of
// being benchmarked as part of the command.
func NewArgParser(raw []string) (*ArgParser, error) {
	p := &ArgParser{
		options:  make(map[string]string),
		switches: make(map[string]bool),
		raw:      raw,
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if arg == "--" {
			p.positional = append(p.positional, raw[i+1:]...)
			break
		}

		if !strings.HasPrefix(arg, "--") {
			p.positional = append(p.positional, arg)
			i++
			continue
		}

		name := strings.TrimPrefix(arg, "--")

		// --option=value form.
		if key, val, ok := strings.Cut(name, "="); ok {
			switch {
			case valueOptions[key]:
				p.options[key] = val
			case boolOptions[key]:
				b, err := strconv.ParseBool(val)
				if err != nil {
					return nil, &UsageError{Reason: fmt.Sprintf("invalid value for --%s: %q", key, val)}
				}
				p.switches[key] = b
			default:
				return nil, &UsageError{Reason: fmt.Sprintf("unknown option --%s", key)}
			}
			i++
			continue
		}

		switch {
		case valueOptions[name]:
			if i+1 >= len(raw) {
				return nil, &UsageError{Reason: fmt.Sprintf("option --%s requires a value", name)}
			}
			p.options[name] = raw[i+1]
			i += 2
		case boolOptions[name]:
			p.switches[name] = true
			i++
		default:
			return nil, &UsageError{Reason: fmt.Sprintf("unknown option --%s", name)}
		}
	}

	return p, nil
}

// Option returns the value of a value option, or defaultValue when the
// option was not given.
func (p *ArgParser) Option(name, defaultValue string) string {
	if val, ok := p.options[name]; ok {
		return val
	}
	return defaultValue
}

// OptionInt returns a value option parsed as an integer. The boolean
// reports whether the option was present; a present but malformed
// value is an error.
func (p *ArgParser) OptionInt(name string) (int, bool, error) {
	val, ok := p.options[name]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, true, &UsageError{
			Reason: fmt.Sprintf("invalid integer for --%s: %q", name, val),
			Hint:   fmt.Sprintf("expected a number, e.g. --%s 100", name),
		}
	}
	return n, true, nil
}

// Switch reports whether a boolean switch is set.
func (p *ArgParser) Switch(name string) bool {
	return p.switches[name]
}

// Has reports whether the option or switch was given at all.
func (p *ArgParser) Has(name string) bool {
	if _, ok := p.options[name]; ok {
		return true
	}
	_, ok := p.switches[name]
	return ok
}

// Command joins the positional arguments back into the raw command
// string handed to the tokenizer (or, in shell mode, to the shell).
func (p *ArgParser) Command() string {
	return strings.Join(p.positional, " ")
}

// Positional returns the command words in order.
func (p *ArgParser) Positional() []string {
	return p.positional
}

// Raw returns the original argument slice.
func (p *ArgParser) Raw() []string {
	return p.raw
}
