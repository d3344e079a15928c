// Package config loads defaults for the approx command from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/approx/montecarlo"
	"github.com/katalvlaran/approx/series"
)

// Prefix is prepended to every variable name, e.g. APPROX_PI_SAMPLES.
const Prefix = "APPROX"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all command configuration. Fields are flat so that every
// variable is exactly APPROX_<tag>.
type Config struct {
	// Monte Carlo sampling. Seed 0 means unseeded: every run draws a fresh
	// stream.
	PiSamples       int   `envconfig:"PI_SAMPLES" default:"4000000"`
	IntegralSamples int   `envconfig:"INTEGRAL_SAMPLES" default:"10000000"`
	Seed            int64 `envconfig:"SEED" default:"0"`

	// Series term counts.
	PiTerms   int `envconfig:"SERIES_PI_TERMS" default:"100000000"`
	AtanTerms int `envconfig:"ATAN_TERMS" default:"10000000"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load reads configuration from APPROX_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PiSamples:       montecarlo.DefaultPiSamples,
		IntegralSamples: montecarlo.DefaultIntegralSamples,
		PiTerms:         series.DefaultPiTerms,
		AtanTerms:       series.DefaultAtanTerms,
		LogLevel:        "warn",
	}
}

// Validate rejects non-positive sample and term counts.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"PI_SAMPLES", c.PiSamples},
		{"INTEGRAL_SAMPLES", c.IntegralSamples},
		{"SERIES_PI_TERMS", c.PiTerms},
		{"ATAN_TERMS", c.AtanTerms},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%w: %s_%s=%d must be positive", ErrInvalidConfig, Prefix, chk.name, chk.value)
		}
	}
	return nil
}
