// Package metrics exposes Prometheus instrumentation for webhook
// verification outcomes.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the webhook guard
type Metrics struct {
	deliveriesTotal     *prometheus.CounterVec
	verificationSeconds prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates a metrics instance backed by a private registry, so
// only guard metrics appear on the metrics endpoint
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		deliveriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_guard_deliveries_total",
				Help: "Webhook deliveries by verification outcome; reason is empty for accepted deliveries",
			},
			[]string{"outcome", "reason"},
		),

		verificationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "webhook_guard_verification_seconds",
				Help:    "Time spent computing and comparing request signatures",
				Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
			},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.deliveriesTotal,
		m.verificationSeconds,
	)

	return m
}

// RecordAccepted counts a delivery that passed signature verification
func (m *Metrics) RecordAccepted() {
	m.deliveriesTotal.WithLabelValues("accepted", "").Inc()
}

// RecordRejected counts a delivery refused with the given reason
func (m *Metrics) RecordRejected(reason string) {
	m.deliveriesTotal.WithLabelValues("rejected", reason).Inc()
}

// ObserveVerification records how long a signature check took
func (m *Metrics) ObserveVerification(d time.Duration) {
	m.verificationSeconds.Observe(d.Seconds())
}

// Handler returns the Prometheus metrics HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
