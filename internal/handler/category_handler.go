package handler

import (
	"net/http"

	"calorie-service/internal/model"

	"github.com/labstack/echo/v4"
)

// ListCategories returns the fixed set of product categories
func ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Categories)
}
