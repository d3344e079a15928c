package montecarlo

import "math"

// Pi estimates π by sampling the unit square.
//
// Algorithm:
//  1. Draw n pairs (x, y), each coordinate uniform in [0, 1).
//  2. Count pairs with x² + y² < 1, i.e. inside the quarter disc.
//  3. Return 4 · count / n.
//
// The result converges in probability to π; for finite n its error is of
// order 1/√n. It always lies in [0, 4].
//
// Complexity: O(n) time, O(1) memory.
//
// Errors:
//   - ErrNonPositiveSamples — n <= 0.
func Pi(n int, opts ...Option) (float64, error) {
	est, err := EstimatePi(n, opts...)
	if err != nil {
		return 0, err
	}
	return est.Value, nil
}

// EstimatePi is Pi with the hit count and standard error attached.
func EstimatePi(n int, opts ...Option) (Estimate, error) {
	if n <= 0 {
		return Estimate{}, estimatorErrorf(MethodPi, ErrNonPositiveSamples, "n=%d", n)
	}
	c := newConfig(opts...)

	var (
		hits int
		x, y float64
	)
	for i := 0; i < n; i++ {
		x = c.rng.Float64()
		y = c.rng.Float64()
		if x*x+y*y < 1 {
			hits++
		}
	}

	p := float64(hits) / float64(n)
	return Estimate{
		Value:   4 * p,
		Hits:    hits,
		Samples: n,
		StdErr:  4 * math.Sqrt(p*(1-p)/float64(n)),
	}, nil
}
