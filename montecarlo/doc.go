// Package montecarlo estimates deterministic quantities by random sampling.
//
// 🚀 What is in here?
//
//	Two hit-or-miss estimators and a repetition helper:
//	  • Pi        — π from the fraction of unit-square points inside the
//	                quarter disc x² + y² < 1.
//	  • Integral  — ∫ₐᵇ f(x) dx for an f bounded by its endpoint values.
//	  • Trials    — run any estimator k times on independent streams and
//	                report mean, standard deviation and range.
//
// ✨ Key features:
//   - injectable randomness: WithSeed for reproducible runs, WithRand for a
//     caller-owned source, a clock-seeded stream otherwise
//   - Estimate* variants return hit counts and binomial standard errors
//   - optional range check on the integrand, reported through zap
//   - sentinel errors, all wrapping ErrInvalidArgument
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/approx/montecarlo"
//
//	pi, err := montecarlo.Pi(montecarlo.DefaultPiSamples, montecarlo.WithSeed(42))
//
//	quarter := func(x float64) float64 { return math.Sqrt(1 - x*x) }
//	area, err := montecarlo.Integral(0, 1, quarter, 1_000_000)
//
// Integral contract:
//
//	fn(a) and fn(b) must bound every fn(x) on [a, b]. This is the caller's
//	obligation; the estimator does not enforce it. Pass WithLogger to get a
//	warning when sampling observes a violation.
//
// Performance:
//
//   - Time:   O(n) per estimate
//   - Memory: O(1) per estimate, O(k) for Trials
package montecarlo
