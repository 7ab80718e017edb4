package mockbackend

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	headerStore     = "Store"
	headerRequestID = "X-Request-Id"
)

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type responseError struct {
	Message    string            `json:"message"`
	Extensions map[string]string `json:"extensions,omitempty"`
}

type response struct {
	Data   any             `json:"data,omitempty"`
	Errors []responseError `json:"errors,omitempty"`
}

// Handler serves POST /graphql.
type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Handler{logger: logger}
}

// Mux routes /graphql to h and answers /health.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/graphql", h)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return mux
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.New().String()
	w.Header().Set(headerRequestID, requestID)

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.write(w, r, http.StatusBadRequest, response{
			Errors: []responseError{{Message: "Unable to parse the request body"}},
		})
		return
	}

	storeCode := r.Header.Get(headerStore)
	if storeCode == "" {
		storeCode = "default"
	}

	h.logger.Info("GraphQL request",
		slog.String("request_id", requestID),
		slog.String("store", storeCode),
		slog.String("from", r.RemoteAddr))

	h.write(w, r, http.StatusOK, h.answer(req.Query, storeCode, mediaBaseURL(r)))
}

func (h *Handler) answer(query, storeCode, mediaURL string) response {
	switch {
	case strings.Contains(query, "__schema"):
		return response{Data: map[string]any{
			"__schema": map[string]any{"types": schemaTypes},
		}}

	case strings.Contains(query, "availableStores"):
		list := make([]store, len(stores))
		for i, s := range stores {
			s.SecureBaseMediaURL = mediaURL
			list[i] = s
		}
		return response{Data: map[string]any{"availableStores": list}}

	case strings.Contains(query, "storeConfig"):
		for _, s := range stores {
			if s.StoreCode == storeCode {
				s.SecureBaseMediaURL = mediaURL
				return response{Data: map[string]any{"storeConfig": s}}
			}
		}
		return response{Errors: []responseError{{
			Message:    "Requested store is not found",
			Extensions: map[string]string{"category": "graphql-no-such-entity"},
		}}}

	default:
		return response{Errors: []responseError{{
			Message:    "Cannot query field on type \"Query\".",
			Extensions: map[string]string{"category": "graphql"},
		}}}
	}
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, code int, body response) {
	w.Header().Set("Content-Type", "application/json")

	var out io.Writer = w
	if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		defer gz.Close()
		out = gz
	}

	w.WriteHeader(code)
	if err := json.NewEncoder(out).Encode(body); err != nil {
		h.logger.Warn("Failed to write response", slog.String("error", err.Error()))
	}
}

func mediaBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + r.Host + "/media/"
}
