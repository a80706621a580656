package middleware

import (
	"time"

	"carpool/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request count and latency per matched route.
type MetricsMiddleware struct {
	registry *metrics.Registry
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(registry *metrics.Registry) *MetricsMiddleware {
	return &MetricsMiddleware{registry: registry}
}

// Handle observes the request after the handler and error handler have run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let echo render the error now so the recorded status is the final one.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.registry.ObserveHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
