// Package cmd implements the approx command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/approx/internal/config"
	"github.com/katalvlaran/approx/internal/logging"
	"github.com/katalvlaran/approx/montecarlo"
)

// app carries the state shared by all subcommands for one invocation.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	seed    int64
	output  string
	verbose bool
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Defaults come from APPROX_*
// environment variables (see internal/config); flags override them.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cfg, err := config.Load()
	if err != nil {
		// Keep the command usable; the error resurfaces in PersistentPreRunE.
		cfg = config.Default()
	}
	a.cfg = cfg

	root := &cobra.Command{
		Use:   "approx",
		Short: "Numerical approximations of π and arctan",
		Long: `approx estimates π and arctangents with Monte Carlo sampling and
alternating power series.

Commands:
  demo      - run every routine once with default parameters
  pi        - Monte Carlo π from unit-square sampling
  integral  - Monte Carlo integration of an expression in x
  leibniz   - Leibniz series π
  atan      - Leibniz–Madhava series arctan(x), |x| < 1
  addatan   - arctan(x0) + arctan(x1) via the addition identity`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err != nil {
				return err
			}
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().Int64Var(&a.seed, "seed", cfg.Seed, "RNG seed for Monte Carlo commands (0 = unseeded)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputText, "output format: text|yaml")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newDemoCmd(a),
		newPiCmd(a),
		newIntegralCmd(a),
		newLeibnizCmd(a),
		newAtanCmd(a),
		newAddAtanCmd(a),
	)
	return root
}

// setup validates global flags and builds the logger.
func (a *app) setup() error {
	if a.output != outputText && a.output != outputYAML {
		return fmt.Errorf("unknown output format %q (want %s or %s)", a.output, outputText, outputYAML)
	}

	logCfg := logging.DefaultConfig()
	if a.cfg.LogDev {
		logCfg = logging.DevelopmentConfig()
	}
	logCfg.Level = a.cfg.LogLevel
	if a.verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.logger = logger
	return nil
}

// mcOptions translates the global flags into estimator options.
func (a *app) mcOptions() []montecarlo.Option {
	opts := []montecarlo.Option{montecarlo.WithLogger(a.logger)}
	if a.seed != 0 {
		opts = append(opts, montecarlo.WithSeed(a.seed))
	}
	return opts
}
