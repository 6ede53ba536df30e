package middleware

import (
	"calorie-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags each request with an id for log correlation. An id
// supplied by the caller is kept, so client retries correlate across
// attempts; otherwise a fresh one is generated.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Response().Header().Set("X-Request-ID", requestID)
		c.Set("request_id", requestID)

		// Every handler downstream logs through this request-scoped logger
		log := logger.GetLogger().With(zap.String("request_id", requestID))
		c.Set("logger", log)

		return next(c)
	}
}
