package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/ladder"
)

// batchResult is one JSON line of batch output.
type batchResult struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Ladder []string `json:"ladder,omitempty"`
	Length int      `json:"length"`
	Error  string   `json:"error,omitempty"`
}

// query is one parsed "START END" line.
type query struct {
	from, to string
}

func newBatchCommand(ro *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve every \"START END\" line of FILE (or - for stdin) concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			queries, err := readQueries(in)
			if err != nil {
				return err
			}
			solver, err := ro.newSolver()
			if err != nil {
				return err
			}
			results, err := solveAll(cmd.Context(), solver, queries, ro.cfg.Workers, ro.cfg.Timeout)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, r := range results {
				if err := enc.Encode(r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&ro.cfg.Workers, "workers", "w", ro.cfg.Workers, "concurrent queries")
	cmd.Flags().DurationVar(&ro.cfg.Timeout, "timeout", ro.cfg.Timeout, "per-query time limit (0 = none)")
	return cmd
}

// readQueries parses one pair per line; blank and '#' lines are skipped.
func readQueries(r io.Reader) ([]query, error) {
	var out []query
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("batch: line %d: want \"START END\", got %q", n, line)
		}
		out = append(out, query{from: fields[0], to: fields[1]})
	}
	return out, sc.Err()
}

// solveAll runs queries on at most workers goroutines and returns results
// in input order. NoResult and per-query timeouts are reported in the
// result; only cancellation of ctx aborts the batch.
func solveAll(ctx context.Context, solver *ladder.Solver, queries []query, workers int, timeout time.Duration) ([]batchResult, error) {
	results := make([]batchResult, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			qctx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				qctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			path, err := solver.FindContext(qctx, q.from, q.to)
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}

			r := batchResult{From: q.from, To: q.to, Ladder: path, Length: path.Len()}
			if err != nil {
				r.Error = err.Error()
				log.WithError(err).WithFields(log.Fields{"from": q.from, "to": q.to}).Debug("batch query without ladder")
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
