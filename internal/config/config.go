// Package config loads getkit settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// validate is shared; building a validator is expensive.
var validate = validator.New()

// Config holds settings read from GETKIT_* environment variables. Command
// line flags override them.
type Config struct {
	// Format is the default output format.
	Format string `env:"GETKIT_FORMAT" envDefault:"text" validate:"oneof=text json"`

	// Verbose enables diagnostic output on stderr.
	Verbose bool `env:"GETKIT_VERBOSE" envDefault:"false"`

	// LogLevel is the minimum slog level written to stderr.
	LogLevel string `env:"GETKIT_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`

	// LogFormat selects the slog handler.
	LogFormat string `env:"GETKIT_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`

	// Seed seeds the random generator; 0 means a fresh crypto seed.
	Seed int64 `env:"GETKIT_SEED" envDefault:"0"`

	// MeasureLog controls whether measure writes a perf log record.
	MeasureLog bool `env:"GETKIT_MEASURE_LOG" envDefault:"true"`
}

// Load parses and validates the environment configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Level returns LogLevel as a slog.Level.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return l
}
