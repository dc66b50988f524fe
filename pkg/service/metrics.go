package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service
type Metrics struct {
	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Codec metrics
	codecOperationsTotal *prometheus.CounterVec
	codecSymbolsTotal    *prometheus.CounterVec
	codecErrorsTotal     *prometheus.CounterVec

	// Table metrics
	tableReloadsTotal *prometheus.CounterVec
	tableSize         prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics instance with all service metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "versicle_http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"route", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "versicle_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),

		codecOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "versicle_codec_operations_total",
				Help: "Total number of codec operations by direction and outcome",
			},
			[]string{"direction", "outcome"},
		),

		codecSymbolsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "versicle_codec_symbols_total",
				Help: "Total number of symbols translated by direction",
			},
			[]string{"direction"},
		),

		codecErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "versicle_codec_errors_total",
				Help: "Total number of codec failures by direction and error kind",
			},
			[]string{"direction", "kind"},
		),

		tableReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "versicle_table_reloads_total",
				Help: "Total number of table reload attempts by status",
			},
			[]string{"status"},
		),

		tableSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "versicle_table_symbols",
				Help: "Number of symbols in the active table",
			},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.codecOperationsTotal,
		m.codecSymbolsTotal,
		m.codecErrorsTotal,
		m.tableReloadsTotal,
		m.tableSize,
	)

	return m
}

// RecordHTTPRequest records an HTTP request with its status and duration
func (m *Metrics) RecordHTTPRequest(route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordCodecOperation records a successful codec operation and its symbol count
func (m *Metrics) RecordCodecOperation(direction string, symbols int) {
	m.codecOperationsTotal.WithLabelValues(direction, "success").Inc()
	m.codecSymbolsTotal.WithLabelValues(direction).Add(float64(symbols))
}

// RecordCodecError records a failed codec operation by error kind
func (m *Metrics) RecordCodecError(direction, kind string) {
	m.codecOperationsTotal.WithLabelValues(direction, "error").Inc()
	m.codecErrorsTotal.WithLabelValues(direction, kind).Inc()
}

// RecordTableReload records a table reload attempt
func (m *Metrics) RecordTableReload(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.tableReloadsTotal.WithLabelValues(status).Inc()
}

// SetTableSize records the active table's alphabet size
func (m *Metrics) SetTableSize(n int) {
	m.tableSize.Set(float64(n))
}

// Handler returns an HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
