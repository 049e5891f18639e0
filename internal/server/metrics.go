package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	LayoutPassesTotal  *prometheus.CounterVec
	LayoutDuration     *prometheus.HistogramVec
	LayoutEntities     prometheus.Histogram
	ConnectionsDropped prometheus.Counter
	ConnectorsRouted   prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthwheel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthwheel_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	m.LayoutPassesTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthwheel_layout_passes_total",
			Help: "Total number of layout passes",
		},
		[]string{"variant", "status"},
	)

	m.LayoutDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthwheel_layout_duration_seconds",
			Help:    "Layout pass duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		},
		[]string{"variant"},
	)

	m.LayoutEntities = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "healthwheel_layout_entities",
			Help:    "Number of entities per layout pass",
			Buckets: []float64{1, 5, 10, 15, 25, 50},
		},
	)

	m.ConnectionsDropped = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "healthwheel_connections_dropped_total",
			Help: "Connections skipped because an endpoint was not placed",
		},
	)

	m.ConnectorsRouted = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "healthwheel_connectors_routed",
			Help:    "Number of connectors drawn per layout pass",
			Buckets: []float64{0, 5, 10, 25, 50, 100},
		},
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records an HTTP request with its duration.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordLayout records one layout pass.
func (m *Metrics) RecordLayout(variant, status string, duration time.Duration, entities, connectors, dropped int) {
	m.LayoutPassesTotal.WithLabelValues(variant, status).Inc()
	m.LayoutDuration.WithLabelValues(variant).Observe(duration.Seconds())
	m.LayoutEntities.Observe(float64(entities))
	m.ConnectorsRouted.Observe(float64(connectors))
	if dropped > 0 {
		m.ConnectionsDropped.Add(float64(dropped))
	}
}
