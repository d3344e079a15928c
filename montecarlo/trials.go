package montecarlo

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Trials runs est k times and summarizes the spread of its results.
//
// Each trial receives its own RNG stream (WithRand), derived up front from
// the call's seed policy, so a seeded Trials call returns identical Values
// regardless of goroutine scheduling. A logger set with WithLogger is handed
// to every trial. Trials run concurrently; est must therefore not share
// mutable state between calls.
//
// Summary.StdDev is the sample standard deviation (0 when k == 1).
//
// Errors:
//   - ErrNonPositiveTrials — k <= 0.
//   - ErrNilFunc           — est == nil.
//   - the first error returned by any trial, or ctx.Err() on cancellation.
func Trials(ctx context.Context, k int, est Estimator, opts ...Option) (Summary, error) {
	if k <= 0 {
		return Summary{}, estimatorErrorf(MethodTrials, ErrNonPositiveTrials, "k=%d", k)
	}
	if est == nil {
		return Summary{}, estimatorErrorf(MethodTrials, ErrNilFunc, "estimator")
	}
	c := newConfig(opts...)
	parent := parentSeed(c)

	trialOpts := make([][]Option, k)
	for i := range trialOpts {
		trialOpts[i] = []Option{WithRand(deriveRNG(parent, uint64(i)))}
		if c.logger != nil {
			trialOpts[i] = append(trialOpts[i], WithLogger(c.logger))
		}
	}

	values := make([]float64, k)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < k; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := est(trialOpts[i]...)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	s := Summary{
		Values: values,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
	if k == 1 {
		s.Mean = values[0]
		return s, nil
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	return s, nil
}
