package cmd

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/approx/internal/expr"
	"github.com/katalvlaran/approx/montecarlo"
)

// referencePoints is the Gauss–Legendre order used for --reference.
const referencePoints = 256

func newIntegralCmd(a *app) *cobra.Command {
	var (
		lo, hi    float64
		src       string
		samples   int
		scale     float64
		trials    int
		reference bool
	)

	c := &cobra.Command{
		Use:   "integral",
		Short: "Integrate an expression in x by Monte Carlo sampling",
		Long: `Integrates a JavaScript expression in x over [a, b], e.g.

  approx integral --fn "Math.sqrt(1 - x*x)" --a 0 --b 1 --scale 4

The expression's values at a and b must bound its values on the whole
interval. This is not checked; a warning is logged when sampling sees a
violation, and the printed estimate is then meaningless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := expr.Compile(src)
			if err != nil {
				return err
			}

			if trials > 1 {
				// Each trial runs in its own goroutine and a Func is not
				// goroutine-safe, so compile one per trial.
				return runTrials(cmd.Context(), cmd, a, "integral", trials, func(opts ...montecarlo.Option) (float64, error) {
					tf, err := expr.Compile(src)
					if err != nil {
						return 0, err
					}
					v, err := montecarlo.Integral(lo, hi, tf.Eval, samples, opts...)
					if err != nil {
						return 0, err
					}
					if err := tf.Err(); err != nil {
						return 0, err
					}
					return scale * v, nil
				})
			}

			est, err := montecarlo.EstimateIntegral(lo, hi, f.Eval, samples, a.mcOptions()...)
			if err != nil {
				return err
			}
			if err := f.Err(); err != nil {
				return err
			}

			r := result{
				Name:   "integral of " + f.String(),
				Value:  scale * est.Value,
				StdErr: abs(scale) * est.StdErr,
				Params: map[string]float64{
					"a": lo, "b": hi, "scale": scale,
					"samples":      float64(est.Samples),
					"out_of_range": float64(est.OutOfRange),
				},
			}
			if reference {
				r.Reference = ptr(scale * quad.Fixed(f.Eval, lo, hi, referencePoints, nil, 0))
				if err := f.Err(); err != nil {
					return err
				}
			}
			return writeResults(cmd.OutOrStdout(), a.output, r)
		},
	}
	c.Flags().Float64Var(&lo, "a", 0, "lower bound")
	c.Flags().Float64Var(&hi, "b", 1, "upper bound")
	c.Flags().StringVar(&src, "fn", "Math.sqrt(1 - x*x)", "integrand, a JavaScript expression in x")
	c.Flags().IntVarP(&samples, "samples", "n", a.cfg.IntegralSamples, "number of sample points")
	c.Flags().Float64Var(&scale, "scale", 1, "multiply the result (e.g. 4 to turn the quarter circle into π)")
	c.Flags().IntVar(&trials, "trials", 1, "repeat the estimate on independent streams and summarize")
	c.Flags().BoolVar(&reference, "reference", false, "also print a Gauss–Legendre quadrature reference")
	return c
}
