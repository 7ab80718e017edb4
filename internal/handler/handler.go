package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/angeloszaimis/storeconfig/internal/backend"
	"github.com/angeloszaimis/storeconfig/internal/graphql"
)

// Fetcher is the part of graphql.Client the handler serves.
type Fetcher interface {
	StoreConfig(ctx context.Context) (*graphql.StoreConfig, error)
	MediaURL(ctx context.Context) (string, error)
	AvailableStores(ctx context.Context) (graphql.StoreList, error)
	SchemaTypes(ctx context.Context) (*graphql.SchemaData, error)
	UnionAndInterfaceTypes(ctx context.Context) (*graphql.SchemaData, error)
	PossibleTypes(ctx context.Context) (map[string][]string, error)
}

// StoreConfigHandler serves backend metadata as JSON. Every request goes to
// the backend; nothing is cached.
type StoreConfigHandler struct {
	logger        *slog.Logger
	fetcher       Fetcher
	endpoint      *backend.Endpoint
	storeViewCode string
}

type StoresResponse struct {
	Current  string            `json:"current"`
	Multiple bool              `json:"multiple"`
	Stores   graphql.StoreList `json:"stores"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewStoreConfigHandler(logger *slog.Logger, fetcher Fetcher, endpoint *backend.Endpoint, storeViewCode string) *StoreConfigHandler {
	return &StoreConfigHandler{
		logger:        logger,
		fetcher:       fetcher,
		endpoint:      endpoint,
		storeViewCode: storeViewCode,
	}
}

func (h *StoreConfigHandler) StoreConfig(w http.ResponseWriter, r *http.Request) {
	h.logRequest(r)

	cfg, err := h.fetcher.StoreConfig(r.Context())
	h.respond(w, r, cfg, cfg == nil, err)
}

func (h *StoreConfigHandler) MediaURL(w http.ResponseWriter, r *http.Request) {
	h.logRequest(r)

	mediaURL, err := h.fetcher.MediaURL(r.Context())
	h.respond(w, r, map[string]string{"secure_base_media_url": mediaURL}, mediaURL == "", err)
}

func (h *StoreConfigHandler) Stores(w http.ResponseWriter, r *http.Request) {
	h.logRequest(r)

	stores, err := h.fetcher.AvailableStores(r.Context())
	resp := StoresResponse{
		Current:  h.storeViewCode,
		Multiple: stores.HasMultiple(),
		Stores:   stores,
	}
	h.respond(w, r, resp, stores == nil, err)
}

func (h *StoreConfigHandler) SchemaTypes(w http.ResponseWriter, r *http.Request) {
	h.logRequest(r)

	data, err := h.fetcher.SchemaTypes(r.Context())
	h.respond(w, r, data, data == nil || data.Schema == nil, err)
}

func (h *StoreConfigHandler) UnionTypes(w http.ResponseWriter, r *http.Request) {
	h.logRequest(r)

	data, err := h.fetcher.UnionAndInterfaceTypes(r.Context())
	h.respond(w, r, data, data == nil || data.Schema == nil, err)
}

func (h *StoreConfigHandler) PossibleTypes(w http.ResponseWriter, r *http.Request) {
	h.logRequest(r)

	possible, err := h.fetcher.PossibleTypes(r.Context())
	h.respond(w, r, possible, possible == nil, err)
}

// Health reports the state recorded by the health checker.
func (h *StoreConfigHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.endpoint.Status()

	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, status)
}

func (h *StoreConfigHandler) respond(w http.ResponseWriter, r *http.Request, body any, missing bool, err error) {
	if err != nil {
		h.logger.Warn("Backend query failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	if missing {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not present in backend response"})
		return
	}

	writeJSON(w, http.StatusOK, body)
}

func (h *StoreConfigHandler) logRequest(r *http.Request) {
	h.logger.Info("Received request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("user_agent", r.UserAgent()))
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
