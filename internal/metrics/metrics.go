// Package metrics provides Prometheus metrics collection for the print service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// LabelsRenderedTotal counts label sheet slots by kind (filled, empty, placeholder).
	LabelsRenderedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labels_rendered_total",
			Help: "Total number of label slots rendered",
		},
		[]string{"slot"},
	)

	// PagesRenderedTotal counts emitted pages by print action.
	PagesRenderedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pages_rendered_total",
			Help: "Total number of pages rendered",
		},
		[]string{"action"},
	)

	// RenderDuration tracks document build and render time.
	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "render_duration_seconds",
			Help:    "Document render duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"action", "format"},
	)

	// UpstreamLookupFailuresTotal counts per-order lookup failures by reason.
	UpstreamLookupFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_lookup_failures_total",
			Help: "Total number of per-order lookup failures",
		},
		[]string{"reason"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CircuitBreakerState exposes each breaker's state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CacheSize tracks current barcode cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks barcode cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordRender records the duration of one document render.
func RecordRender(action, format string, duration time.Duration) {
	RenderDuration.WithLabelValues(action, format).Observe(duration.Seconds())
}

// RecordPages adds n pages to the per-action page counter.
func RecordPages(action string, n int) {
	PagesRenderedTotal.WithLabelValues(action).Add(float64(n))
}

// RecordSlot counts one rendered slot of the given kind.
func RecordSlot(kind string) {
	LabelsRenderedTotal.WithLabelValues(kind).Inc()
}

// RecordUpstreamFailure counts one per-order lookup failure.
func RecordUpstreamFailure(reason string) {
	UpstreamLookupFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState records the state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
