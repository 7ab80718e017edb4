package healthcheck

import (
	"context"
	"log/slog"
	"time"

	"github.com/angeloszaimis/storeconfig/internal/backend"
)

// Prober runs one check against the backend. graphql.Client.StoreConfig
// satisfies it through ProbeFunc.
type Prober interface {
	Probe(ctx context.Context) error
}

type ProbeFunc func(ctx context.Context) error

func (f ProbeFunc) Probe(ctx context.Context) error {
	return f(ctx)
}

// Notifier is told when the endpoint's health flips.
type Notifier interface {
	HealthChanged(healthy bool)
}

// HealthCheck probes the endpoint immediately and then on every tick until
// ctx is cancelled. Each probe gets its own timeout of one interval.
func HealthCheck(
	ctx context.Context,
	endpoint *backend.Endpoint,
	prober Prober,
	interval time.Duration,
	notifier Notifier,
	logger *slog.Logger,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check(ctx, endpoint, prober, interval, notifier, logger)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Health check stopped",
				slog.String("backend", endpoint.BackendURL()))
			return

		case <-ticker.C:
			check(ctx, endpoint, prober, interval, notifier, logger)
		}
	}
}

func check(
	ctx context.Context,
	endpoint *backend.Endpoint,
	prober Prober,
	timeout time.Duration,
	notifier Notifier,
	logger *slog.Logger,
) {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := prober.Probe(probeCtx)
	endpoint.RecordResponse(time.Since(start))

	if ctx.Err() != nil {
		return
	}

	if !endpoint.SetHealthy(err) {
		return
	}

	if notifier != nil {
		notifier.HealthChanged(err == nil)
	}

	if err == nil {
		logger.Info("Backend is reachable",
			slog.String("backend", endpoint.BackendURL()))
	} else {
		logger.Warn("Backend is unreachable",
			slog.String("backend", endpoint.BackendURL()),
			slog.String("error", err.Error()))
	}
}
