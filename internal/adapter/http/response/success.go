package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status"`
	Airports int    `json:"airports"`
}

// Health writes a health check response with the size of the loaded airport table.
func Health(c echo.Context, airports int) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "ok",
		Airports: airports,
	})
}
