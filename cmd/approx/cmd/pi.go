package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/approx/montecarlo"
)

func newPiCmd(a *app) *cobra.Command {
	var (
		samples int
		trials  int
	)

	c := &cobra.Command{
		Use:   "pi",
		Short: "Estimate π by sampling the unit square",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if trials > 1 {
				return runTrials(cmd.Context(), cmd, a, "pi", trials, func(opts ...montecarlo.Option) (float64, error) {
					return montecarlo.Pi(samples, opts...)
				})
			}

			est, err := montecarlo.EstimatePi(samples, a.mcOptions()...)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), a.output, result{
				Name:   "pi",
				Value:  est.Value,
				StdErr: est.StdErr,
				Params: map[string]float64{"samples": float64(est.Samples), "hits": float64(est.Hits)},
			})
		},
	}
	c.Flags().IntVarP(&samples, "samples", "n", a.cfg.PiSamples, "number of sample points")
	c.Flags().IntVar(&trials, "trials", 1, "repeat the estimate on independent streams and summarize")
	return c
}

// runTrials runs est through montecarlo.Trials and reports the summary.
func runTrials(ctx context.Context, cmd *cobra.Command, a *app, name string, k int, est montecarlo.Estimator) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := montecarlo.Trials(ctx, k, est, a.mcOptions()...)
	if err != nil {
		return err
	}
	return writeResults(cmd.OutOrStdout(), a.output, result{
		Name:   fmt.Sprintf("%s (mean of %d trials)", name, k),
		Value:  s.Mean,
		StdErr: s.StdDev,
		Params: map[string]float64{"min": s.Min, "max": s.Max, "trials": float64(k)},
	})
}
