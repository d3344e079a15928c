package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/approx/series"
)

func newLeibnizCmd(a *app) *cobra.Command {
	var terms int
	c := &cobra.Command{
		Use:   "leibniz",
		Short: "Approximate π with the Leibniz series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := series.Pi(terms)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), a.output, result{
				Name:      "pi",
				Value:     v,
				Reference: ptr(math.Pi),
				Params:    map[string]float64{"terms": float64(terms)},
			})
		},
	}
	c.Flags().IntVarP(&terms, "terms", "n", a.cfg.PiTerms, "number of series terms")
	return c
}

func newAtanCmd(a *app) *cobra.Command {
	var terms int
	c := &cobra.Command{
		Use:   "atan X",
		Short: "Approximate arctan(X), -1 < X < 1, with the Leibniz–Madhava series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			v, err := series.Atan(x, terms)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), a.output, result{
				Name:      fmt.Sprintf("atan(%g)", x),
				Value:     v,
				Reference: ptr(math.Atan(x)),
				Params:    map[string]float64{"terms": float64(terms)},
			})
		},
	}
	c.Flags().IntVarP(&terms, "terms", "n", a.cfg.AtanTerms, "number of series terms")
	return c
}

func newAddAtanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "addatan X0 X1",
		Short: "Compute atan(X0) + atan(X1) with the addition identity",
		Long: `Computes atan((X0 + X1) / (1 - X0·X1)). The identity holds for X0·X1 < 1;
for X0·X1 > 1 the result is off by ±π and is printed uncorrected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x0, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			x1, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			v, err := series.AddAtan(x0, x1)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), a.output, result{
				Name:  fmt.Sprintf("atan(%g) + atan(%g)", x0, x1),
				Value: v,
			})
		},
	}
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}
