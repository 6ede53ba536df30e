package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"calorie-service/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and durations per method, route
// and status
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		duration := time.Since(start).Seconds()
		method := c.Request().Method
		path := c.Path()

		// A returned error is only committed to the response later by the
		// error handler, so the status must come from the error itself
		status := c.Response().Status
		if err != nil {
			status = http.StatusInternalServerError
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			}
		}
		label := strconv.Itoa(status)

		prometheus.HttpRequestsTotal.WithLabelValues(method, path, label).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, path, label).Observe(duration)

		return err
	}
}
