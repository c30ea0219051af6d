package observer

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsEnabled = true // Flag to control metric collection

	// Labels for HTTP request metrics
	httpRequestLabels = []string{"method", "route", "status"}
	// Labels for DB operation metrics
	dbOperationLabels = []string{"operation", "entity", "status"}

	// HTTP request counter
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_api_http_requests_total",
			Help: "Total number of HTTP requests handled, labeled by route and status.",
		},
		httpRequestLabels,
	)

	// HTTP request duration histogram
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carrier_api_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		httpRequestLabels,
	)

	// DB operation duration histogram
	DbOperationDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carrier_api_db_operation_duration_seconds",
			Help:    "Histogram of database operation durations, labeled by operation and entity.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		dbOperationLabels,
	)

	// FMCSA lookup counter, labeled by the resulting verification status
	FMCSALookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_api_fmcsa_lookups_total",
			Help: "Total number of FMCSA eligibility lookups, labeled by resulting status.",
		},
		[]string{"status"},
	)

	// Call outcome counter, labeled by classification
	CallOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_api_call_outcomes_total",
			Help: "Total number of call outcomes recorded, labeled by classification.",
		},
		[]string{"classification"},
	)
)

// InitMetrics enables or disables metric collection globally.
func InitMetrics(enabled bool) {
	metricsEnabled = enabled
}

// ObserveHTTPRequest records one handled HTTP request.
func ObserveHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	if !metricsEnabled {
		return
	}
	status := strconv.Itoa(statusCode)
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveDbOperationDuration records the duration of a database operation.
func ObserveDbOperationDuration(operation, entity string, duration time.Duration, err error) {
	if !metricsEnabled {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	DbOperationDurationSeconds.WithLabelValues(operation, entity, status).Observe(duration.Seconds())
}

// IncFMCSALookup counts one eligibility lookup by resulting status.
func IncFMCSALookup(status string) {
	if !metricsEnabled {
		return
	}
	FMCSALookupsTotal.WithLabelValues(status).Inc()
}

// IncCallOutcome counts one recorded call outcome by classification.
func IncCallOutcome(classification string) {
	if !metricsEnabled {
		return
	}
	CallOutcomesTotal.WithLabelValues(classification).Inc()
}
