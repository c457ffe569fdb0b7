package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/ladder"
)

func newSolveCommand(ro *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve START END",
		Short: "Print one shortest ladder from START to END",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			solver, err := ro.newSolver()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ro.cfg.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, ro.cfg.Timeout)
				defer cancel()
			}

			path, err := solver.FindContext(ctx, args[0], args[1])
			out := cmd.OutOrStdout()
			if ladder.IsNoResult(err) {
				fmt.Fprintf(out, "no ladder: %v\n", err)
				return err
			}
			if err != nil {
				return err
			}
			for i, w := range path {
				fmt.Fprintf(out, "%2d  %s\n", i, w)
			}
			fmt.Fprintf(out, "steps: %d\n", path.Len())
			return nil
		},
	}
	cmd.Flags().DurationVar(&ro.cfg.Timeout, "timeout", ro.cfg.Timeout, "per-query time limit (0 = none)")
	return cmd
}
