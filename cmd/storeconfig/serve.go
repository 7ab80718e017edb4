package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/angeloszaimis/storeconfig/internal/backend"
	"github.com/angeloszaimis/storeconfig/internal/graphql"
	"github.com/angeloszaimis/storeconfig/internal/handler"
	"github.com/angeloszaimis/storeconfig/internal/healthcheck"
	"github.com/angeloszaimis/storeconfig/internal/httpserver"
	"github.com/angeloszaimis/storeconfig/internal/metrics"
)

const metricsBufferSize = 1000

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve store metadata over HTTP",
		Long: `serve exposes the store config, stores, media URL and schema queries as
JSON endpoints, probes the backend every health_check.interval and reports
query metrics on /metrics. Each request queries the backend afresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			listener, err := net.Listen("tcp", a.cfg.Server.Address)
			if err != nil {
				return err
			}

			return a.serve(ctx, listener)
		},
	}
}

// serve runs the HTTP service on listener until ctx is cancelled.
func (a *app) serve(ctx context.Context, listener net.Listener) error {
	endpoint, err := backend.New(a.cfg.Backend.URL)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector(metricsBufferSize, a.log)
	collector.Start(ctx)

	client := graphql.NewClient(endpoint,
		graphql.WithStoreViewCode(a.cfg.Backend.StoreViewCode),
		graphql.WithObserver(collector),
		graphql.WithLogger(a.log),
	)

	probe := healthcheck.ProbeFunc(func(ctx context.Context) error {
		_, err := client.StoreConfig(ctx)
		return err
	})
	go healthcheck.HealthCheck(ctx, endpoint, probe, a.cfg.HealthCheckInterval(), collector, a.log)

	h := handler.NewStoreConfigHandler(a.log, client, endpoint, a.cfg.Backend.StoreViewCode)
	mux := setupRouter(h, collector, endpoint.BackendURL())

	srv, err := httpserver.New(a.cfg.Server.Address, mux, a.log)
	if err != nil {
		listener.Close()
		return err
	}

	a.log.Info("Serving store metadata",
		slog.String("backend", endpoint.BackendURL()),
		slog.String("store", a.cfg.Backend.StoreViewCode))

	return srv.Run(ctx, listener)
}
