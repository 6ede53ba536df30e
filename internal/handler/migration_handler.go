package handler

import (
	"net/http"

	"calorie-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetMigrationReport returns the pending report of the last data repair.
// The report stays available until the client acknowledges it with a DELETE.
func GetMigrationReport(c echo.Context) error {
	report, ok := products.MigrationReport()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "No pending migration report",
		})
	}
	return c.JSON(http.StatusOK, report)
}

// ClearMigrationReport acknowledges and drops the pending migration report
func ClearMigrationReport(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Clearing migration report")
	products.ClearMigrationReport()
	return c.NoContent(http.StatusNoContent)
}
