package montecarlo

import (
	"math"

	"go.uber.org/zap"
)

// Integral estimates ∫ₐᵇ fn(x) dx by hit-or-miss sampling.
//
// Contract (NOT checked): fn(a) and fn(b) bound fn on [a, b], i.e. no
// interior value exceeds max(fn(a), fn(b)) or falls below min(fn(a), fn(b)).
// A violating fn yields a wrong number, never an error. Use EstimateIntegral
// with WithLogger to observe violations.
//
// Algorithm:
//  1. ymin, ymax = min/max of fn(a), fn(b).
//  2. Draw n points, x uniform in [a, b), y uniform in [ymin, ymax);
//     count points with fn(x) > y.
//  3. Return ymin·(b−a) + (ymax−ymin)·(b−a)·count/n.
//
// The first term is the rectangle wholly under the curve, the second the
// Monte Carlo share of the box above it. Reversed bounds (a > b) give the
// signed integral; a == b gives 0.
//
// Complexity: O(n) evaluations of fn, O(1) memory.
//
// Errors:
//   - ErrNonPositiveSamples — n <= 0.
//   - ErrNilFunc            — fn == nil.
//   - ErrNonFiniteBound     — a or b is NaN or ±Inf.
func Integral(a, b float64, fn func(float64) float64, n int, opts ...Option) (float64, error) {
	est, err := EstimateIntegral(a, b, fn, n, opts...)
	if err != nil {
		return 0, err
	}
	return est.Value, nil
}

// EstimateIntegral is Integral with sampling statistics attached.
//
// When a logger was supplied through WithLogger and any sampled fn(x) fell
// outside [ymin, ymax], a single warning is logged after the run. The
// returned value is the same with or without the logger.
func EstimateIntegral(a, b float64, fn func(float64) float64, n int, opts ...Option) (IntegralEstimate, error) {
	if n <= 0 {
		return IntegralEstimate{}, estimatorErrorf(MethodIntegral, ErrNonPositiveSamples, "n=%d", n)
	}
	if fn == nil {
		return IntegralEstimate{}, estimatorErrorf(MethodIntegral, ErrNilFunc, "fn")
	}
	if !isFinite(a) || !isFinite(b) {
		return IntegralEstimate{}, estimatorErrorf(MethodIntegral, ErrNonFiniteBound, "a=%g b=%g", a, b)
	}
	c := newConfig(opts...)

	ymin, ymax := fn(a), fn(b)
	if ymin > ymax {
		ymin, ymax = ymax, ymin
	}

	var (
		hits, outside int
		x, y, fx      float64
	)
	for i := 0; i < n; i++ {
		x = uniformIn(c.rng, a, b)
		y = uniformIn(c.rng, ymin, ymax)
		fx = fn(x)
		if fx > y {
			hits++
		}
		if !(fx >= ymin && fx <= ymax) {
			outside++
		}
	}

	width := b - a
	height := ymax - ymin
	p := float64(hits) / float64(n)
	constArea := ymin * width
	dynamicArea := height * width * p

	if outside > 0 && c.logger != nil {
		c.logger.Warn("integrand exceeds endpoint bounds; estimate is unreliable",
			zap.Float64("a", a),
			zap.Float64("b", b),
			zap.Float64("ymin", ymin),
			zap.Float64("ymax", ymax),
			zap.Int("out_of_range", outside),
			zap.Int("samples", n),
		)
	}

	return IntegralEstimate{
		Estimate: Estimate{
			Value:   constArea + dynamicArea,
			Hits:    hits,
			Samples: n,
			StdErr:  math.Abs(height*width) * math.Sqrt(p*(1-p)/float64(n)),
		},
		YMin:       ymin,
		YMax:       ymax,
		OutOfRange: outside,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
