package series

import (
	"fmt"
	"math"
)

// Atan approximates arctan(x) with the Leibniz–Madhava series
//
//	arctan(x) = Σ_{k=0}^{n−1} (−1)^k · x^(2k+1) / (2k+1) = x − x³/3 + x⁵/5 − …
//
// using exactly n terms. x must lie strictly inside (−1, 1); convergence
// slows as |x| approaches 1, which is a property of the series.
// Atan(0, n) is exactly 0 for every n >= 1.
//
// The power x^(2k+1) is carried incrementally (multiplied by x² per term),
// so once it underflows the remaining terms are exact zeros.
//
// Complexity: O(n) time, O(1) memory.
//
// Errors (checked in this order):
//   - ErrOutOfDomain      — x <= −1, x >= 1 or x is NaN.
//   - ErrNonPositiveTerms — n <= 0.
func Atan(x float64, n int) (float64, error) {
	if !(x > -1 && x < 1) {
		return 0, fmt.Errorf("Atan: x=%g: %w", x, ErrOutOfDomain)
	}
	if n <= 0 {
		return 0, fmt.Errorf("Atan: n=%d: %w", n, ErrNonPositiveTerms)
	}

	var (
		sum   float64
		pow   = x
		x2    = x * x
		sign  = 1.0
		denom float64
	)
	for k := 0; k < n; k++ {
		denom = float64(2*k + 1)
		sum += sign * pow / denom
		pow *= x2
		sign = -sign
	}
	return sum, nil
}

// AddAtan evaluates arctan(x0) + arctan(x1) through the addition identity
//
//	arctan(x0) + arctan(x1) = arctan((x0 + x1) / (1 − x0·x1))
//
// with a single math.Atan call instead of two truncated series.
//
// Only the pole at x0 = x1 = 1 is rejected. The identity needs a ±π
// correction when x0·x1 > 1, and other products equal to 1 (e.g. 2 and 0.5)
// divide by zero; both cases return whatever math.Atan yields for the
// computed argument (±π/2 for ±Inf) without correction.
//
// Errors:
//   - ErrPole — x0 == 1 and x1 == 1.
func AddAtan(x0, x1 float64) (float64, error) {
	if x0 == 1 && x1 == 1 {
		return 0, fmt.Errorf("AddAtan: x0=%g x1=%g: %w", x0, x1, ErrPole)
	}
	return math.Atan((x0 + x1) / (1 - x0*x1)), nil
}
