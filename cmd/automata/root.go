package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/automata/internal/logging"
)

// newRootCmd wires the root command and every subcommand.
func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "automata",
		Short:         "Finite-automata kernels: unary prime TM and DFA equivalence",
		Long:          `automata decides primality of unary strings with a simulated Turing machine and compares DFAs loaded from YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warn", "Log level: debug, info, warn or error")

	logger := func(cmd *cobra.Command) (*slog.Logger, error) {
		lvl, err := logging.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		return logging.NewWithWriter(cmd.ErrOrStderr(), lvl), nil
	}

	root.AddCommand(newPrimeCmd(logger), newEquivCmd(logger))
	return root
}

// loggerFunc builds the command's logger from the persistent flags.
type loggerFunc func(cmd *cobra.Command) (*slog.Logger, error)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
