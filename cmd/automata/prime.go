package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/automata/turing"
)

func newPrimeCmd(newLogger loggerFunc) *cobra.Command {
	var (
		blank, marked string
		maxSteps      int
		trace         bool
	)
	cmd := &cobra.Command{
		Use:   "prime <input>...",
		Short: "Decide whether each unary input has prime length",
		Long: `Runs the unary-prime Turing machine on every argument. Inputs must consist
of '1' only; anything else is rejected without simulation. Use --trace to
print the tape after every step.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			b, err := singleRune("blank", blank)
			if err != nil {
				return err
			}
			m, err := singleRune("marked", marked)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, in := range args {
				opts := []turing.Option{
					turing.WithBlank(b),
					turing.WithMarked(m),
					turing.WithBaseMaxSteps(maxSteps),
					turing.WithLogger(log),
				}
				if trace {
					opts = append(opts, turing.WithOnStep(func(c turing.Config) {
						fmt.Fprintf(out, "  step %-3d state=%-11s head=%-2d count=%-2d %s\n",
							c.Step, c.State, c.Head, c.Count, c.Tape)
					}))
				}
				v, err := turing.Decide(in, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%q (len %d): %s\n", in, len(in), v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&blank, "blank", string(turing.DefaultBlank), "Blank tape symbol")
	cmd.Flags().StringVar(&marked, "marked", string(turing.DefaultMarked), "Marked tape symbol")
	cmd.Flags().IntVar(&maxSteps, "max-steps", turing.DefaultBaseMaxSteps, "Base step budget added to the input length")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print every configuration")
	return cmd
}

// singleRune parses a flag value that must be exactly one character.
func singleRune(flag, v string) (rune, error) {
	r := []rune(v)
	if len(r) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", flag, v)
	}
	return r[0], nil
}
