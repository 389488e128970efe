package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the dispatch service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	FlightValidationsTotal *prometheus.CounterVec
	ArrivalEstimatesTotal  *prometheus.CounterVec
}

// NewMetricsRegistry initializes and registers all metrics with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh
// prometheus.NewRegistry() in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dispatch_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dispatch_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed, by method",
			},
			[]string{"method"},
		),

		// Database Metrics
		DBQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dispatch_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		FlightValidationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_flight_validations_total",
				Help: "Flight validations by operation (create, update) and outcome",
			},
			[]string{"operation", "outcome"},
		),
		ArrivalEstimatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatch_arrival_estimates_total",
				Help: "Arrival time estimates by outcome (computed, unavailable)",
			},
			[]string{"outcome"},
		),
	}
}

// The helpers below are safe on a nil registry so that components can be
// built without metrics in tests.

func (m *MetricsRegistry) ObserveQuery(queryType string, started time.Time) {
	if m == nil {
		return
	}
	m.DBQueriesTotal.WithLabelValues(queryType).Inc()
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(started).Seconds())
}

func (m *MetricsRegistry) CacheHit(pattern string) {
	if m == nil {
		return
	}
	m.CacheHitsTotal.WithLabelValues(pattern).Inc()
}

func (m *MetricsRegistry) CacheMiss(pattern string) {
	if m == nil {
		return
	}
	m.CacheMissesTotal.WithLabelValues(pattern).Inc()
}

func (m *MetricsRegistry) FlightValidation(operation, outcome string) {
	if m == nil {
		return
	}
	m.FlightValidationsTotal.WithLabelValues(operation, outcome).Inc()
}

func (m *MetricsRegistry) ArrivalEstimate(outcome string) {
	if m == nil {
		return
	}
	m.ArrivalEstimatesTotal.WithLabelValues(outcome).Inc()
}
