// Mockbackend serves a canned GraphQL endpoint for running storeconfig
// locally.
//
// Usage:
//
//	go run ./cmd/mockbackend --port 8081
//	storeconfig store-config --backend-url http://localhost:8081/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/angeloszaimis/storeconfig/internal/httpserver"
	"github.com/angeloszaimis/storeconfig/internal/mockbackend"
	"github.com/angeloszaimis/storeconfig/pkg/logger"
)

func main() {
	var (
		port     int
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "mockbackend",
		Short:        "Serve canned storeConfig, availableStores and __schema answers on /graphql",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(logLevel, false, "dev")

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			addr := fmt.Sprintf(":%d", port)
			srv, err := httpserver.New(addr, mockbackend.New(log).Mux(), log)
			if err != nil {
				return err
			}

			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}

			log.Info("Mock backend ready", slog.String("graphql", fmt.Sprintf("http://localhost:%d/graphql", port)))
			return srv.Run(ctx, listener)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8081, "Port to listen on")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
