// Package http exposes the optional diagnostics endpoint: health, replay
// progress and Prometheus metrics for long-running replays.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/semtexzv/tproc/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	Replay *usecase.ReplayUseCase
	RunID  string
	// Gatherer backs the /metrics endpoint. Defaults to the global
	// Prometheus gatherer.
	Gatherer prometheus.Gatherer
}

// NewRouter creates the diagnostics router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/stats", func(w http.ResponseWriter, _ *http.Request) {
		resp := struct {
			RunID string `json:"run_id"`
			usecase.Stats
		}{
			RunID: cfg.RunID,
			Stats: cfg.Replay.Stats(),
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	return r
}
