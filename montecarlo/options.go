// SPDX-License-Identifier: MIT
// Package: approx/montecarlo
//
// options.go — functional options shared by all estimators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs (nil RNG,
//     nil logger). Estimators themselves never panic.
//   • Determinism is explicit: WithSeed or WithRand. Without either, every
//     call draws from a fresh time-seeded stream.

package montecarlo

import "go.uber.org/zap"

// Uniform is a source of uniformly distributed float64 values in [0, 1).
// *math/rand.Rand satisfies it. Implementations need not be goroutine-safe; an
// estimator call uses its source from a single goroutine.
type Uniform interface {
	Float64() float64
}

// Option customizes an estimator call.
type Option func(*config)

// config is the resolved per-call configuration.
type config struct {
	rng      Uniform
	seed     int64
	seeded   bool
	injected bool
	logger   *zap.Logger
}

// WithRand injects an explicit uniform source.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r Uniform) Option {
	if r == nil {
		panic("montecarlo: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seeded = false
		c.injected = true
	}
}

// WithSeed makes the call deterministic. seed == 0 selects defaultRNGSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = nil
		c.seed = seed
		c.seeded = true
		c.injected = false
	}
}

// WithLogger enables the integrand range check of EstimateIntegral and routes
// its warning to l. Panics on nil; omit the option to disable the check.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("montecarlo: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// newConfig applies opts in order and resolves the uniform source.
func newConfig(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		if c.seeded {
			c.rng = rngFromSeed(c.seed)
		} else {
			c.rng = rngFromClock()
		}
	}
	return c
}
