// Package http provides the HTTP handler layer for the layover planner API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/rest-planner/layover-daylight/internal/adapter/http/response"
	"github.com/rest-planner/layover-daylight/internal/domain"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/logger"
	"github.com/rest-planner/layover-daylight/internal/usecase"
)

// StayHandler handles HTTP requests for stay and airport endpoints.
type StayHandler struct {
	useCase usecase.StayPlannerUseCase
}

// NewStayHandler creates a new StayHandler with the given use case.
func NewStayHandler(uc usecase.StayPlannerUseCase) *StayHandler {
	return &StayHandler{
		useCase: uc,
	}
}

// SummarizeStay handles POST /api/v1/stays/summary
//
// @Summary Summarize daylight and darkness during a layover
// @Description Splits a stay at an airport into local calendar days and reports the hours of daylight and night in each
// @Tags stays
// @Accept json
// @Produce json
// @Param request body StaySummaryRequest true "Airport and UTC arrival/departure"
// @Success 200 {object} SwaggerStaySummary
// @Failure 400 {object} SwaggerErrorResponse "Validation error or arrival not before departure"
// @Failure 404 {object} SwaggerErrorResponse "Airport not found"
// @Failure 422 {object} SwaggerErrorResponse "No time zone for the airport location"
// @Failure 502 {object} SwaggerErrorResponse "Solar calculation failed"
// @Failure 504 {object} SwaggerErrorResponse "Gateway timeout"
// @Router /stays/summary [post]
func (h *StayHandler) SummarizeStay(c echo.Context) error {
	var req StaySummaryRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	report, err := h.useCase.Summarize(c.Request().Context(), ToDomainStayRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToStaySummaryDTO(report))
}

// SearchAirports handles GET /api/v1/airports
//
// @Summary Search airports
// @Description Finds airports by IATA code, municipality or name; exact code matches rank first
// @Tags airports
// @Produce json
// @Param q query string true "Search text (at least 2 characters)"
// @Param limit query int false "Maximum results"
// @Success 200 {object} SwaggerAirportList
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Router /airports [get]
func (h *StayHandler) SearchAirports(c echo.Context) error {
	var req SearchAirportsRequest

	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return response.ValidationError(c, map[string]string{"limit": "limit must be an integer"})
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	airports, err := h.useCase.SearchAirports(c.Request().Context(), req.Query, req.Limit)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToAirportListDTO(req.Query, airports))
}

// GetAirport handles GET /api/v1/airports/{code}
//
// @Summary Get an airport
// @Tags airports
// @Produce json
// @Param code path string true "IATA code"
// @Success 200 {object} SwaggerAirport
// @Failure 400 {object} SwaggerErrorResponse "Invalid code"
// @Failure 404 {object} SwaggerErrorResponse "Airport not found"
// @Router /airports/{code} [get]
func (h *StayHandler) GetAirport(c echo.Context) error {
	airport, err := h.useCase.GetAirport(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToAirportDTO(airport))
}

// Health handles GET /health
func (h *StayHandler) Health(c echo.Context) error {
	return response.Health(c, h.useCase.AirportCount())
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *StayHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
// Context errors are checked first because a DayError may wrap them.
func (h *StayHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case domain.IsInvalidInterval(err):
		return response.InvalidInterval(c)

	case domain.IsSolarFailure(err):
		var dayErr *domain.DayError
		date := ""
		if errors.As(err, &dayErr) {
			date = dayErr.Date.String()
		}
		logger.FromContext(c.Request().Context(), nil).Error().Err(err).Msg("Solar calculation failed")
		return response.SolarUnavailable(c, date)

	case domain.IsAirportNotFound(err):
		return response.NotFound(c, response.MsgAirportNotFound)

	case domain.IsUnresolvableZone(err):
		return response.UnresolvableZone(c)

	case domain.IsInvalidRequest(err):
		var fieldErr *domain.ValidationError
		if errors.As(err, &fieldErr) {
			return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
		}
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	logger.FromContext(c.Request().Context(), nil).Error().Err(err).Msg("Unhandled error")
	return response.InternalServerError(c)
}
