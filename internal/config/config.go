// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for vajra.
//
// Defaults come from a TOML file, with environment variable overrides
// on top. Command-line flags always win; the file only supplies the
// values a user is tired of typing.
//
// Configuration file location (in order of precedence):
//   - ~/.vajra/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete vajra configuration.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	UI       UIConfig       `toml:"ui"`
}

// DefaultsConfig supplies run parameters used when the corresponding
// flag is absent.
type DefaultsConfig struct {
	// Warmup is the default number of unmeasured invocations.
	Warmup int `toml:"warmup"`
	// Iterations is the default number of measured invocations.
	Iterations int `toml:"iterations"`
	// Output is the default output format: "text" or "json".
	Output string `toml:"output"`
	// Shell runs commands through the system shell by default.
	Shell bool `toml:"shell"`
}

// UIConfig controls presentation of text-mode output.
type UIConfig struct {
	// Color forces colored output on or off. Empty means auto-detect
	// (TTY plus NO_COLOR/FORCE_COLOR).
	Color string `toml:"color"`
	// ShowMemory appends the tool's own RSS to the text report.
	ShowMemory bool `toml:"show_memory"`
	// WarmupInProgress counts warmup invocations in the progress bar
	// denominator.
	WarmupInProgress bool `toml:"warmup_in_progress"`
}

// Default returns the built-in configuration, matching the historical
// tool defaults of 5 warmup and 100 measured iterations.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Warmup:     5,
			Iterations: 100,
			Output:     "text",
		},
		UI: UIConfig{
			Color: "auto",
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Dir returns the vajra configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".vajra"), nil
}

// Path returns the TOML config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file if present, fills gaps with defaults, and
// applies environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	fillDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults. A TOML file
// that sets only one key must not zero the others.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Defaults.Warmup < 0 {
		cfg.Defaults.Warmup = defaults.Defaults.Warmup
	}
	if cfg.Defaults.Iterations <= 0 {
		cfg.Defaults.Iterations = defaults.Defaults.Iterations
	}
	if cfg.Defaults.Output == "" {
		cfg.Defaults.Output = defaults.Defaults.Output
	}
	if cfg.UI.Color == "" {
		cfg.UI.Color = defaults.UI.Color
	}
}

// applyEnvOverrides applies VAJRA_* environment variables on top of the
// file. Malformed numeric values are ignored rather than fatal; the
// flag layer re-validates everything that matters.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VAJRA_WARMUP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Defaults.Warmup = n
		}
	}
	if v := os.Getenv("VAJRA_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.Defaults.Iterations = n
		}
	}
	if v := os.Getenv("VAJRA_OUTPUT"); v != "" {
		cfg.Defaults.Output = v
	}
	if v := os.Getenv("VAJRA_SHELL"); v != "" {
		cfg.Defaults.Shell = v == "1" || v == "true"
	}
}

// Validate checks value ranges before any run parameters derive from
// this config.
func (c *Config) Validate() error {
	if c.Defaults.Warmup < 0 {
		return fmt.Errorf("defaults.warmup must be >= 0, got %d", c.Defaults.Warmup)
	}
	if c.Defaults.Iterations < 1 {
		return fmt.Errorf("defaults.iterations must be >= 1, got %d", c.Defaults.Iterations)
	}
	switch c.Defaults.Output {
	case "text", "json":
	default:
		return fmt.Errorf("defaults.output must be text or json, got %q", c.Defaults.Output)
	}
	switch c.UI.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("ui.color must be auto, always, or never, got %q", c.UI.Color)
	}
	return nil
}
