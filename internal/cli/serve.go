package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/server"
)

func newServeCommand(ro *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ladder queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			solver, err := ro.newSolver()
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              ro.cfg.Listen,
				Handler:           server.New(solver, log.StandardLogger(), ro.cfg.Timeout).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return runServer(cmd.Context(), srv)
		},
	}
	cmd.Flags().StringVarP(&ro.cfg.Listen, "listen", "l", ro.cfg.Listen, "listen address")
	cmd.Flags().DurationVar(&ro.cfg.Timeout, "timeout", ro.cfg.Timeout, "per-query time limit (0 = none)")
	return cmd
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
