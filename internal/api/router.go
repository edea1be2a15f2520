package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/rebirth/internal/api/handler"
	apimiddleware "github.com/mcoot/rebirth/internal/api/middleware"
	"github.com/mcoot/rebirth/internal/metrics"
	"github.com/mcoot/rebirth/internal/middleware"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Identities handler.IdentityProvider
	// Schedule reports the next reset on the health endpoint (optional)
	Schedule handler.ResetSchedule
	// MetricsHandler serves /metrics (optional, defaults to promhttp.Handler())
	MetricsHandler http.Handler
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	identityHandler := handler.NewIdentityHandler(cfg.Identities)
	healthHandler := handler.NewHealthHandler(cfg.Schedule)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.Metrics(metrics.HTTPRequestDuration))

	api.HandleFunc("/identities/{user_key}", identityHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Handle("/metrics", metricsHandler).Methods(http.MethodGet)

	return r
}
