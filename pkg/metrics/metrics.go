package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// Todo Store Metrics
	TodoOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_operations_total",
			Help: "Total number of todo store operations by kind",
		},
		[]string{"operation", "status"}, // add/list/get/update/delete, success/failed
	)

	// Per-user store provisioning metrics
	UserStoreOpensTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_store_opens_total",
			Help: "Total number of per-user store open/provision operations",
		},
	)

	UserStoreOpenFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_store_open_failures_total",
			Help: "Total number of failed per-user store open operations",
		},
	)

	// Authentication Metrics
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"}, // success, failed
	)

	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total number of user registrations",
		},
	)

	// Rate Limiting Metrics
	RateLimitExceeded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_exceeded_total",
			Help: "Total number of rate limit violations",
		},
		[]string{"endpoint"},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by code",
		},
		[]string{"code", "status"},
	)
)

// RecordError increments the error counter for the given code/status pair
func RecordError(code, status string) {
	ErrorsTotal.WithLabelValues(code, status).Inc()
}

// RecordTodoOperation tracks a todo store operation outcome
func RecordTodoOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	TodoOperationsTotal.WithLabelValues(operation, status).Inc()
}
