package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gigly/copilot/internal/config"
	"github.com/gigly/copilot/internal/engine"
	"github.com/gigly/copilot/internal/events"
	"github.com/gigly/copilot/internal/journey"
	"github.com/gigly/copilot/internal/tracker"
)

func NewRouter(e *engine.Engine, t *tracker.Tracker, j *journey.State, ev events.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	offers := NewOffersHandler(e)
	jh := NewJourneyHandler(j, ev)
	status := NewStatusHandler(t, j, cfg)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/offers", offers.Consider)
		r.Put("/journey", jh.Set)
		r.Get("/status", status.Status)
		r.Get("/status/ar", status.AR)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
