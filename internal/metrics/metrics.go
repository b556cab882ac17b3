// Package metrics provides Prometheus metrics collection for the habitat service.
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

	// AnalysesTotal tracks total feasibility analyses by outcome.
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "habitat_analyses_total",
			Help: "Total number of enclosure feasibility analyses",
		},
		[]string{"status"},
	)

	// AnalysisDuration tracks feasibility analysis duration.
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "habitat_analysis_duration_seconds",
			Help:    "Enclosure feasibility analysis duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	// ViablePlacements tracks how many enclosures qualify per successful analysis.
	ViablePlacements = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "habitat_viable_placements",
			Help:    "Number of viable enclosures per successful analysis",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
	)

	// RosterSource tracks where the roster snapshot came from per analysis.
	RosterSource = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "habitat_roster_source_total",
			Help: "Roster snapshot source used per analysis",
		},
		[]string{"source"},
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

// RecordAnalysis records metrics for a feasibility analysis.
func RecordAnalysis(duration time.Duration, status string) {
	AnalysisDuration.Observe(duration.Seconds())
	AnalysesTotal.WithLabelValues(status).Inc()
}

// RecordPlacements records how many enclosures qualified.
func RecordPlacements(count int) {
	ViablePlacements.Observe(float64(count))
}

// RecordRosterSource records where the roster snapshot came from
// ("cache", "database" or "default").
func RecordRosterSource(source string) {
	RosterSource.WithLabelValues(source).Inc()
}
