package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the dashboard's Prometheus collectors.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Insight metrics
	insightsServed  *prometheus.CounterVec
	insightDuration *prometheus.HistogramVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Store health
	dbConnected prometheus.Gauge
}

// NewManager creates a metrics manager. Without WithRegistry a fresh registry
// is used so default Go collectors are not exported.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "ride",
		subsystem:        "insights",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.insightsServed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "served_total",
			Help:      "Total number of insight panels served by insight and outcome",
		},
		[]string{"insight", "status"},
	)

	m.insightDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "query_duration_seconds",
			Help:      "Time spent executing the query behind an insight",
			Buckets:   m.histogramBuckets,
		},
		[]string{"insight"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.dbConnected = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "database_connected",
		Help:      "1 when the trip store connection is usable, 0 when the dashboard runs without it",
	})
}

// ObserveInsight records one served insight panel.
func (m *Manager) ObserveInsight(insight, status string, duration time.Duration) {
	if !m.enabled {
		return
	}
	m.insightsServed.WithLabelValues(insight, status).Inc()
	m.insightDuration.WithLabelValues(insight).Observe(duration.Seconds())
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}
	code := strconv.Itoa(statusCode)
	m.httpRequests.WithLabelValues(endpoint, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, code).Observe(duration.Seconds())
}

// SetDatabaseConnected publishes the store connection state.
func (m *Manager) SetDatabaseConnected(connected bool) {
	if !m.enabled {
		return
	}
	if connected {
		m.dbConnected.Set(1)
		return
	}
	m.dbConnected.Set(0)
}

// Registry returns the registry backing this manager.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
