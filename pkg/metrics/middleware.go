package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HTTPMetricsMiddleware tracks HTTP request metrics
func HTTPMetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		HTTPRequestsInFlight.Inc()
		defer HTTPRequestsInFlight.Dec()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		method := c.Method()
		path := sanitizePath(c.Path())

		HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration)
		HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()

		return err
	}
}

// sanitizePath removes dynamic segments to avoid high cardinality
// Example: /todos/0c7b3a... -> /todos/:todoId
func sanitizePath(path string) string {
	if strings.HasPrefix(path, "/todos/") && len(path) > len("/todos/") {
		return "/todos/:todoId"
	}

	switch path {
	case "/register", "/login", "/todos", "/metrics", "/api/v1/status":
		return path
	default:
		return "/other"
	}
}
