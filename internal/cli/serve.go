package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/grfixtures/grgen/internal/api"
)

// shutdownTimeout bounds graceful shutdown on SIGINT.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command, exposing fixture generation over
// HTTP for CI pipelines that want fresh graphs without a local binary.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve fixture generation over HTTP",
		Long: `Serve fixture generation over HTTP.

Endpoints:
  GET /healthz
  GET /api/v1/graph?preset=small
  GET /api/v1/graph?nodes=1000&edges_per_node=5&max_weight=100&seed=7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: api.NewServer(c.Logger).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
