package oauth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"calorie-service/pkg/logger"
	"calorie-service/prometheus"
)

// AuthMiddleware creates an echo middleware that validates access tokens
// against the OAuth service's introspection endpoint.
func AuthMiddleware(client *Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				prometheus.AuthErrorsCounter.Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authorization header is required"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				prometheus.AuthErrorsCounter.Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authorization header format must be Bearer {token}"})
			}

			validation, err := client.ValidateToken(parts[1])
			if err != nil {
				log.Error("Token introspection failed", zap.Error(err))
				prometheus.AuthErrorsCounter.Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token validation failed"})
			}

			if !validation.Active {
				prometheus.AuthErrorsCounter.Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token is not active"})
			}

			prometheus.AuthSuccessCounter.Inc()

			c.Set("user_id", validation.UserID)
			c.Set("email", validation.Email)
			c.Set("scope", validation.Scope)

			reqLogger := log.With(
				zap.String("user_id", validation.UserID),
				zap.String("email", validation.Email),
			)
			c.Set("logger", reqLogger)

			return next(c)
		}
	}
}
