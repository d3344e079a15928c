package cmd

import (
	"math"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/approx/montecarlo"
	"github.com/katalvlaran/approx/series"
)

func newDemoCmd(a *app) *cobra.Command {
	var noProgress bool

	c := &cobra.Command{
		Use:   "demo",
		Short: "Run every routine once and print the results",
		Long: `Runs, in order: Monte Carlo π, Monte Carlo integration of 4·√(1−x²)
over [0, 1], Leibniz π, Leibniz–Madhava atan(0.5) and atan(.99) + atan(.99)
via the addition identity. Sample and term counts come from APPROX_*.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := []struct {
				name string
				run  func() (float64, error)
			}{
				{"Monte Carlo approximation of π", func() (float64, error) {
					return montecarlo.Pi(a.cfg.PiSamples, a.mcOptions()...)
				}},
				{"Monte Carlo integration (4√(1-x²)) approximation of π", func() (float64, error) {
					quarter := func(x float64) float64 { return math.Sqrt(1 - x*x) }
					v, err := montecarlo.Integral(0, 1, quarter, a.cfg.IntegralSamples, a.mcOptions()...)
					return 4 * v, err
				}},
				{"Leibniz approximation of π", func() (float64, error) {
					return series.Pi(a.cfg.PiTerms)
				}},
				{"Leibniz-Madhava approximation of atan(.5)", func() (float64, error) {
					return series.Atan(0.5, a.cfg.AtanTerms)
				}},
				{"atan(.99) + atan(.99)", func() (float64, error) {
					return series.AddAtan(0.99, 0.99)
				}},
			}

			var bar *pb.ProgressBar
			if !noProgress {
				bar = pb.New(len(steps)).SetWriter(cmd.ErrOrStderr()).Start()
			}

			results := make([]result, 0, len(steps))
			for _, s := range steps {
				if bar != nil {
					bar.Set("prefix", s.name+" ")
				}
				v, err := s.run()
				if err != nil {
					if bar != nil {
						bar.Finish()
					}
					return err
				}
				a.logger.Debug("demo step done", zap.String("step", s.name), zap.Float64("value", v))
				results = append(results, result{Name: s.name, Value: v})
				if bar != nil {
					bar.Increment()
				}
			}
			if bar != nil {
				bar.Finish()
			}

			return writeResults(cmd.OutOrStdout(), a.output, results...)
		},
	}
	c.Flags().BoolVar(&noProgress, "no-progress", false, "hide the progress bar")
	return c
}
