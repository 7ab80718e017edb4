package main

import (
	"net/http"

	"github.com/angeloszaimis/storeconfig/internal/handler"
	"github.com/angeloszaimis/storeconfig/internal/metrics"
)

func setupRouter(h *handler.StoreConfigHandler, metricsCollector *metrics.Collector, backendURL string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /store-config", h.StoreConfig)
	mux.HandleFunc("GET /stores", h.Stores)
	mux.HandleFunc("GET /media-url", h.MediaURL)
	mux.HandleFunc("GET /schema/types", h.SchemaTypes)
	mux.HandleFunc("GET /schema/union-types", h.UnionTypes)
	mux.HandleFunc("GET /schema/possible-types", h.PossibleTypes)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /metrics", metricsCollector.Handler(backendURL))

	return mux
}
