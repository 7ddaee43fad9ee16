package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/budgetledger/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	EntriesAdded       *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec

	// Store metrics
	StoreOperations *prometheus.CounterVec
	StoreDuration   *prometheus.HistogramVec

	// HTTP metrics
	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	RateLimitHits        prometheus.Counter
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EntriesAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_entries_added_total",
				Help: "Total number of ledger entries added",
			},
			[]string{"type"},
		),
		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_validation_failures_total",
				Help: "Total number of rejected entries",
			},
			[]string{"reason"},
		),

		StoreOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_store_operations_total",
				Help: "Total ledger store operations",
			},
			[]string{"operation", "status"},
		),
		StoreDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budget_store_duration_seconds",
				Help:    "Ledger store operation duration",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budget_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "budget_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		RateLimitHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_rate_limit_hits_total",
				Help: "Total requests rejected by the rate limiter",
			},
		),
	}
}

// EntryAdded counts a persisted entry.
func (m *Metrics) EntryAdded(entryType domain.EntryType) {
	m.EntriesAdded.WithLabelValues(string(entryType)).Inc()
}

// ValidationFailed counts a rejected entry.
func (m *Metrics) ValidationFailed(reason string) {
	m.ValidationFailures.WithLabelValues(reason).Inc()
}

// ObserveStoreOperation records a store load or save.
func (m *Metrics) ObserveStoreOperation(op, status string, duration time.Duration) {
	m.StoreOperations.WithLabelValues(op, status).Inc()
	m.StoreDuration.WithLabelValues(op).Observe(duration.Seconds())
}
