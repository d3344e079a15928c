// SPDX-License-Identifier: MIT
// Package: approx/montecarlo
//
// errors.go — sentinel errors for the montecarlo package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Every validation sentinel wraps ErrInvalidArgument, so a caller that
//     only cares about "bad input" can test for that single class.
//   • Estimators attach context with %w (see estimatorErrorf).
//   • Estimators never panic; option constructors (WithX) may.

package montecarlo

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root class of every validation failure reported
// by this package.
var ErrInvalidArgument = errors.New("montecarlo: invalid argument")

// ErrNonPositiveSamples indicates a sample count n <= 0. The estimators
// divide by n, so an empty run has no defined result.
var ErrNonPositiveSamples = fmt.Errorf("%w: sample count must be positive", ErrInvalidArgument)

// ErrNonPositiveTrials indicates Trials was asked for k <= 0 repetitions.
var ErrNonPositiveTrials = fmt.Errorf("%w: trial count must be positive", ErrInvalidArgument)

// ErrNilFunc indicates a nil integrand or estimator.
var ErrNilFunc = fmt.Errorf("%w: function is nil", ErrInvalidArgument)

// ErrNonFiniteBound indicates an integration bound that is NaN or ±Inf.
var ErrNonFiniteBound = fmt.Errorf("%w: integration bound is not finite", ErrInvalidArgument)

// Method names used as error prefixes.
const (
	MethodPi       = "Pi"
	MethodIntegral = "Integral"
	MethodTrials   = "Trials"
)

// estimatorErrorf prefixes a sentinel with the estimator name and a short
// detail, keeping the sentinel reachable for errors.Is.
// The result reads "<method>: <detail>: <sentinel text>".
func estimatorErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
