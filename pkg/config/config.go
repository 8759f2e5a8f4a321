package config

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/xyproto/env/v2"

	"github.com/scottcagno/lphash/pkg/hashmap/linear"
	"github.com/scottcagno/lphash/pkg/logging"
)

const (
	DefaultLogLevel = "info"
	DefaultPrompt   = "Command: "

	EnvCapacity = "LPHASH_CAPACITY"
	EnvLogLevel = "LPHASH_LOG_LEVEL"
	EnvPrompt   = "LPHASH_PROMPT"
	EnvMetrics  = "LPHASH_METRICS"
)

// Config holds the settings shared by the lphash commands
type Config struct {
	// Capacity is the initial slot count of every table created
	Capacity int `toml:"capacity"`
	// LogLevel is one of debug, info, warn or error
	LogLevel string `toml:"log_level"`
	// Prompt is printed before every console line
	Prompt string `toml:"prompt"`
	// Metrics turns on table instrumentation
	Metrics bool `toml:"metrics"`
}

// Default returns a Config with every field set to its default
func Default() *Config {
	return &Config{
		Capacity: linear.DefaultCapacity,
		LogLevel: DefaultLogLevel,
		Prompt:   DefaultPrompt,
	}
}

// Load builds a Config from the defaults, then the TOML file at path (if
// path is not empty), then the LPHASH_* environment variables. The result
// is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "decode config %q", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Newf("config %q: unknown key %q", path, undecoded[0].String())
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields with any LPHASH_* variables that are set.
// The env package caches the environment, so it is reloaded first.
func (c *Config) applyEnv() {
	env.Load()
	if env.Has(EnvCapacity) {
		c.Capacity = env.Int(EnvCapacity, c.Capacity)
	}
	if env.Has(EnvLogLevel) {
		c.LogLevel = env.Str(EnvLogLevel, c.LogLevel)
	}
	if env.Has(EnvPrompt) {
		c.Prompt = env.Str(EnvPrompt, c.Prompt)
	}
	if env.Has(EnvMetrics) {
		c.Metrics = env.Bool(EnvMetrics)
	}
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return errors.Newf("capacity must be positive, got %d", c.Capacity)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
