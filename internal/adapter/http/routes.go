package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all planner API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *StayHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware on the API group.
// The health check stays outside the group and its middleware.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *StayHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	stays := api.Group("/stays")
	stays.POST("/summary", h.SummarizeStay)

	airports := api.Group("/airports")
	airports.GET("", h.SearchAirports)
	airports.GET("/:code", h.GetAirport)
}
