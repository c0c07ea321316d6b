// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command lamb evaluates the function-only algebra from the command line
// and runs the interpreted challenge set.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code.hybscloud.com/lamb/conv"
	"code.hybscloud.com/lamb/internal/config"
)

// app holds state shared by every command of one invocation.
type app struct {
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
	conv   conv.Converter
	styles styles
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lamb",
		Short: "Church encodings built from nothing but one-argument functions",
		Long: `lamb evaluates booleans, pairs, numerals, lists, and recursion encoded
as one-argument functions. Host integers go in, are converted to numerals,
flow through the algebra, and are converted back for printing.

The challenge commands grade Go submissions against the same algebra.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.conv = conv.Converter{Ceiling: cfg.Numerals.Ceiling}
			a.styles = newStyles()

			logger, err := cfg.Logger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			a.logger.Debug("configuration loaded",
				zap.String("path", a.cfgPath),
				zap.String("strategy", cfg.Recursion.Strategy),
				zap.Int("ceiling", cfg.Numerals.Ceiling))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "lamb.yaml", "path to the YAML configuration")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.factorialCmd(),
		a.fibonacciCmd(),
		a.arithCmd(),
		a.listCmd(),
		a.challengeCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
