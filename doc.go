// Package approx is a small toolbox of numerical approximations of π and
// the arctangent: Monte Carlo sampling on one side, alternating power
// series on the other.
//
// 🚀 What is approx?
//
//	A pure-Go collection of independent, stateless routines:
//		• montecarlo/ — π by unit-square sampling, hit-or-miss integration of
//		                a bounded f, repeated trials with spread statistics
//		• series/     — Leibniz π, Leibniz–Madhava arctan, and the arctangent
//		                addition identity
//
// ✨ Why approx?
//
//   - Reproducible – every random routine takes an injectable source (WithSeed, WithRand)
//   - Explicit failures – sentinel errors wrapping ErrInvalidArgument, no panics
//   - Honest contracts – unchecked preconditions are documented and observable
//
// The approx command (cmd/approx) runs every routine from the shell:
//
//	approx demo
//	approx integral --fn "Math.sqrt(1 - x*x)" --scale 4 --reference
//
//	go get github.com/katalvlaran/approx
package approx
