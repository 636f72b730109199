package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/Waleedanwar01/project-insurance-1/internal/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// PrometheusMetrics records request counts and latency per route template.
// Scrapes of /metrics are not counted.
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == "/metrics" {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		duration := time.Since(start).Seconds()

		status := c.Response().Status
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
		}

		route := c.Path()
		if route == "" || errors.Is(err, echo.ErrNotFound) {
			route = unmatchedRoute
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			route,
			strconv.Itoa(status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			route,
		).Observe(duration)

		return err
	}
}
