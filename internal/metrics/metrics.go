// Package metrics provides Prometheus metrics collection for the bundle service.
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

	// TogglesTotal tracks product toggle requests by outcome.
	TogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bundle_toggles_total",
			Help: "Total number of product toggle requests",
		},
		[]string{"outcome"},
	)

	// CheckoutsTotal tracks checkout confirmations by status.
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bundle_checkouts_total",
			Help: "Total number of checkout confirmations",
		},
		[]string{"status"},
	)

	// ConfirmedBundleSize tracks the number of distinct products in confirmed bundles.
	ConfirmedBundleSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bundle_confirmed_size",
			Help:    "Number of distinct products in a confirmed bundle",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10, 15},
		},
	)

	// ActiveSessions tracks the number of live bundle sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bundle_active_sessions",
			Help: "Current number of live bundle sessions",
		},
	)

	// SessionOperationsTotal tracks session store operations.
	SessionOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_operations_total",
			Help: "Total number of session store operations",
		},
		[]string{"operation", "result"},
	)
)

// Toggle outcomes recorded by RecordToggle.
const (
	ToggleOutcomeApplied   = "applied"
	ToggleOutcomeScheduled = "scheduled"
	ToggleOutcomeBusy      = "busy"
	ToggleOutcomeGated     = "gated"
	ToggleOutcomeUnknown   = "unknown_product"
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

// RecordToggle records the outcome of a toggle request.
func RecordToggle(outcome string) {
	TogglesTotal.WithLabelValues(outcome).Inc()
}

// RecordCheckout records a checkout confirmation attempt. The bundle size is
// observed only for confirmed checkouts.
func RecordCheckout(status string, size int) {
	CheckoutsTotal.WithLabelValues(status).Inc()
	if status == "confirmed" {
		ConfirmedBundleSize.Observe(float64(size))
	}
}

// SetActiveSessions updates the live session gauge.
func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}

// RecordSessionOperation records metrics for a session store operation.
func RecordSessionOperation(operation, result string) {
	SessionOperationsTotal.WithLabelValues(operation, result).Inc()
}
