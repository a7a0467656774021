// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"errors"
	"fmt"
)

// ErrMissingCommand reports an empty command string. Detected during
// validation, before any process is spawned.
var ErrMissingCommand = errors.New("no command to benchmark")

// ConfigError reports an out-of-range or malformed run parameter.
// Configuration is validated eagerly so a bad invocation never wastes
// measurement time.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseError reports a non-empty command string that tokenized to zero
// tokens in direct mode, leaving nothing to exec.
type ParseError struct {
	Command string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse command %q: no tokens", e.Command)
}
