package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"webhook-guard/internal/handlers"
	"webhook-guard/internal/metrics"
	"webhook-guard/internal/middleware"
)

// SetupRoutes configures all HTTP routes for the application
func SetupRoutes(router *mux.Router, h *handlers.Handlers, guard *middleware.SignatureMiddleware, m *metrics.Metrics) {
	// Add logging middleware to all routes
	router.Use(middleware.LoggingMiddleware)

	// Webhook intake. Signature verification wraps this route only; it must
	// sit ahead of anything that consumes the request body.
	router.Handle("/webhook", guard.Middleware(http.HandlerFunc(h.ReceiveWebhook))).Methods("POST")

	// Health check (no verification required)
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// Prometheus metrics (optional)
	if m != nil {
		router.Handle("/metrics", m.Handler()).Methods("GET")
	}
}
