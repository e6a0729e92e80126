// Package server exposes the valuation engine as a JSON HTTP API.
//
// The engine itself is pure and synchronous; the server is a thin
// transport that decodes a scenario, runs one recompute, and caches the
// serialized result by input fingerprint.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/ogerard/immoval/internal/acquisition"
	"github.com/ogerard/immoval/internal/amortization"
	"github.com/ogerard/immoval/internal/config"
	"github.com/ogerard/immoval/internal/viager"
)

const maxBodyBytes = 1 << 20

type handler struct {
	logger  *zap.Logger
	cache   Cache
	version string
}

// NewHandler constructs the HTTP handler serving the calculator API.
func NewHandler(logger *zap.Logger, cache Cache, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewMemoryCache()
	}
	if version == "" {
		version = "dev"
	}

	h := &handler{logger: logger, cache: cache, version: version}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/viager", h.handleViager)
	mux.HandleFunc("/api/schedule", h.handleSchedule)
	mux.HandleFunc("/api/rental", h.handleRental)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealth)
	return mux
}

func (h *handler) handleViager(w http.ResponseWriter, r *http.Request) {
	h.compute(w, r, "viager", func(body []byte) (any, error) {
		var in config.ViagerInput
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, fmt.Errorf("invalid viager scenario: %w", err)
		}
		return viager.Value(in.ToDomain()), nil
	})
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	h.compute(w, r, "schedule", func(body []byte) (any, error) {
		var in config.LoanInput
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, fmt.Errorf("invalid loan parameters: %w", err)
		}
		return amortization.Schedule(in.ToDomain(), in.Basis()), nil
	})
}

func (h *handler) handleRental(w http.ResponseWriter, r *http.Request) {
	h.compute(w, r, "rental", func(body []byte) (any, error) {
		var in config.RentalInput
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, fmt.Errorf("invalid rental input: %w", err)
		}
		return acquisition.Evaluate(in.ToDomain()), nil
	})
}

// compute runs one cached recompute: fingerprint the raw body, serve the
// cached serialization if present, otherwise evaluate and store.
func (h *handler) compute(w http.ResponseWriter, r *http.Request, op string, fn func([]byte) (any, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	key := fmt.Sprintf("immoval:%s:%x", op, xxhash.Sum64(body))
	if cached, ok := h.cache.Get(r.Context(), key); ok {
		h.logger.Debug("cache hit", zap.String("op", op), zap.String("key", key))
		writeJSONRaw(w, []byte(cached))
		return
	}

	result, err := fn(body)
	if err != nil {
		h.logger.Warn("bad request", zap.String("op", op), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		h.logger.Error("failed to marshal result", zap.String("op", op), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.cache.Set(r.Context(), key, string(data)); err != nil {
		// Cache failures degrade to recompute-every-time.
		h.logger.Warn("cache set failed", zap.String("op", op), zap.Error(err))
	}

	writeJSONRaw(w, data)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"version": h.version})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSONRaw(w, data)
}

func writeJSONRaw(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
