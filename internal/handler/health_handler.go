package handler

import (
	"net/http"
	"time"

	"calorie-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Health check requested")

	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}

	// Quick consistency probe over the store-backed services
	if c.QueryParam("check") == "store" {
		response["products"] = len(products.List(false))
		response["recipes"] = len(recipes.List(false))
		response["deleted_products"] = products.DeletedCount()
		response["deleted_recipes"] = recipes.DeletedCount()
	}

	return c.JSON(http.StatusOK, response)
}

// Hello returns a simple welcome message
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to Calorie Service API",
		"version": "1.0.0",
	})
}
