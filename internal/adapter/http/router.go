package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/stockval/internal/adapter/http/handler"
	"github.com/iho/stockval/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ReportHandler *handler.ReportHandler
	LedgerHandler *handler.LedgerHandler
	ItemHandler   *handler.ItemHandler
	HealthHandler *handler.HealthHandler
	Logger        zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/reports", func(r chi.Router) {
			r.Get("/stock", cfg.ReportHandler.Stock)
			r.Get("/balance", cfg.ReportHandler.Balance)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", cfg.ItemHandler.List)
			r.Get("/{code}", cfg.ItemHandler.Get)
			r.Get("/{code}/ledger", cfg.LedgerHandler.ItemLedger)
		})

		r.Get("/item-parameters", cfg.ItemHandler.SearchParameters)
	})

	return r
}
