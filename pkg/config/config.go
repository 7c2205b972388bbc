// Package config loads rkrgst's CLI-wide defaults using a
// file-then-env-then-flags precedence.
package config

import "fmt"

// Config holds the defaults the CLI falls back to when a flag is not
// supplied explicitly.
type Config struct {
	Match  MatchConfig  `yaml:"match" koanf:"match"`
	Output OutputConfig `yaml:"output" koanf:"output"`
	Log    LogConfig    `yaml:"log" koanf:"log"`
	Batch  BatchConfig  `yaml:"batch" koanf:"batch"`
}

// MatchConfig holds defaults for the "match" subcommand.
type MatchConfig struct {
	// DefaultSearchLength is the configured default threshold L0. The match
	// subcommand's --search-length flag has its own default of 1 and does
	// not read this field.
	DefaultSearchLength uint64 `yaml:"default_search_length" koanf:"default_search_length" validate:"gte=0"`
	// MaxInputBytes bounds pattern/text size accepted by the CLI. The core
	// algorithm enforces no such limit itself; this is a much lower,
	// configurable guard applied at the binding, not the engine.
	MaxInputBytes int64 `yaml:"max_input_bytes" koanf:"max_input_bytes" validate:"gte=0"`
}

// OutputConfig holds the default tile rendering format.
type OutputConfig struct {
	Format string `yaml:"format" koanf:"format" validate:"omitempty,oneof=table json jsonl yaml"`
}

// LogConfig holds slog configuration.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" koanf:"format" validate:"omitempty,oneof=json text"`
}

// BatchConfig holds defaults for the "batch" subcommand.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" koanf:"concurrency" validate:"gte=0"`
}

// Default returns the configuration used when no file, environment
// variable, or flag overrides a given field.
func Default() *Config {
	return &Config{
		Match: MatchConfig{
			DefaultSearchLength: 4,
			MaxInputBytes:       1 << 30, // 1 GiB
		},
		Output: OutputConfig{Format: "table"},
		Log:    LogConfig{Level: "info", Format: "text"},
		Batch:  BatchConfig{Concurrency: 4},
	}
}

// Validate checks cross-field constraints the struct tags alone cannot
// express.
func (c *Config) Validate() error {
	if c.Match.MaxInputBytes < 0 {
		return fmt.Errorf("match.max_input_bytes must be non-negative, got: %d", c.Match.MaxInputBytes)
	}
	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("batch.concurrency must be non-negative, got: %d", c.Batch.Concurrency)
	}

	validFormats := map[string]bool{"table": true, "json": true, "jsonl": true, "yaml": true}
	if c.Output.Format != "" && !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format: %s (valid: table, json, jsonl, yaml)", c.Output.Format)
	}

	return nil
}

// Merge overlays other on top of c, with other's non-zero fields taking
// precedence. Used to apply CLI flags over a loaded Config.
func (c *Config) Merge(other *Config) {
	if other.Match.DefaultSearchLength != 0 {
		c.Match.DefaultSearchLength = other.Match.DefaultSearchLength
	}
	if other.Match.MaxInputBytes != 0 {
		c.Match.MaxInputBytes = other.Match.MaxInputBytes
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
	if other.Batch.Concurrency != 0 {
		c.Batch.Concurrency = other.Batch.Concurrency
	}
}
