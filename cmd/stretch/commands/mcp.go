package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/stretch/pkg/mcp"
	"github.com/Sumatoshi-tech/stretch/pkg/version"
)

const (
	mcpCommandName  = "mcp"
	metricsAddrFlag = "metrics-addr"
	metricsPath     = "/metrics"

	metricsReadHeaderTimeout = 5 * time.Second
)

func newMCPCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   mcpCommandName,
		Short: "Serve the operations as MCP tools over stdio",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The server exposes three tools that AI agents can discover and invoke:
  - stretch_line: walk a digital line between two points
  - stretch_resample: resample a numeric series to a target length
  - stretch_partition: split N elements into K near-equal ranges

Logs are written to stderr as JSON. With --metrics-addr a Prometheus
endpoint is served at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			addr, err := cmd.Flags().GetString(metricsAddrFlag)
			if err != nil {
				return fmt.Errorf("read %s: %w", metricsAddrFlag, err)
			}

			if addr != "" && a.obs.MetricsHandler != nil {
				stopMetrics := a.serveMetrics(ctx, addr)
				defer stopMetrics()
			}

			srv := mcp.NewServer(mcp.ServerDeps{
				Version: version.Version,
				Logger:  a.logger,
				Metrics: a.metrics,
				Tracer:  a.obs.Tracer,
			})

			a.logger.InfoContext(ctx, "mcp server starting", "tools", srv.ListToolNames())

			return srv.Run(ctx)
		},
	}

	cmd.Flags().String(metricsAddrFlag, "", "serve Prometheus metrics on this address (e.g. :9464)")

	return cmd
}

// serveMetrics starts the Prometheus endpoint in the background and returns
// a function that stops it.
func (a *app) serveMetrics(ctx context.Context, addr string) func() {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, a.obs.MetricsHandler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.ErrorContext(ctx, "metrics server failed", "addr", addr, "error", err)
		}
	}()

	a.logger.InfoContext(ctx, "metrics server listening", "addr", addr, "path", metricsPath)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsReadHeaderTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			a.logger.WarnContext(ctx, "metrics server shutdown failed", "error", err)
		}
	}
}
