// Package montecarlo - RNG utilities shared by all estimators.
//
// Goals:
//   - Determinism: same seed ⇒ identical estimates across platforms.
//   - Encapsulation: one factory per policy (seeded, clock, derived stream).
//   - Performance: no allocations in sampling loops.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Trials derives one stream per
//     trial with deriveRNG instead of sharing a source.
package montecarlo

import (
	"math"
	"math/rand"
	"time"
)

// defaultRNGSeed is the fixed seed used when callers pass WithSeed(0).
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// rngFromClock returns a stream seeded from the wall clock, giving the
// "repeated calls vary" behaviour of an unseeded estimator.
func rngFromClock() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic stream from a parent seed.
// Call during setup, never inside sampling loops.
func deriveRNG(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// parentSeed picks the seed that Trials derives its streams from.
//   - WithSeed: the seed (0 ⇒ defaultRNGSeed).
//   - WithRand: one draw from the injected source, consumed once so that two
//     Trials calls on the same source get different streams.
//   - neither: the clock.
func parentSeed(c *config) int64 {
	switch {
	case c.seeded:
		if c.seed == 0 {
			return defaultRNGSeed
		}
		return c.seed
	case c.injected:
		if src, ok := c.rng.(interface{ Int63() int64 }); ok {
			return src.Int63()
		}
		return int64(math.Float64bits(c.rng.Float64()))
	default:
		return time.Now().UnixNano()
	}
}

// uniformIn maps a [0,1) draw onto [lo, hi).
// For lo > hi the draw lands in (hi, lo], mirroring the interval formula.
func uniformIn(r Uniform, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
