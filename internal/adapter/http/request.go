// Package http provides the HTTP handler layer for the layover planner API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"strings"
	"time"

	"github.com/rest-planner/layover-daylight/internal/domain"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/timeutil"
)

// StaySummaryRequest represents the request body for a stay summary.
type StaySummaryRequest struct {
	// AirportCode is the IATA code of the layover airport (e.g., "IST")
	AirportCode string `json:"airportCode" example:"IST"`

	// Arrival is the UTC arrival time, "YYYY-MM-DD HH:MM" or RFC3339
	Arrival string `json:"arrival" example:"2025-04-16 10:00"`

	// Departure is the UTC departure time, "YYYY-MM-DD HH:MM" or RFC3339
	Departure string `json:"departure" example:"2025-04-17 03:00"`

	arrivalUTC   time.Time
	departureUTC time.Time
}

// SearchAirportsRequest holds the query parameters of an airport search.
type SearchAirportsRequest struct {
	// Query is matched against IATA code, municipality and name
	Query string `query:"q"`

	// Limit caps the number of results; 0 uses the server default
	Limit int `query:"limit"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request and parses its timestamps.
// Interval ordering is left to the use case so it maps to its own error code.
func (r *StaySummaryRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateAirportCode(errs)
	r.arrivalUTC = parseInstant(errs, "arrival", r.Arrival)
	r.departureUTC = parseInstant(errs, "departure", r.Departure)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *StaySummaryRequest) validateAirportCode(errs *ValidationErrors) {
	r.AirportCode = domain.NormalizeAirportCode(r.AirportCode)
	if r.AirportCode == "" {
		errs.Add("airportCode", "airportCode is required")
		return
	}
	if !domain.IsValidAirportCode(r.AirportCode) {
		errs.Add("airportCode", "airportCode must be a valid 3-letter IATA code")
	}
}

func parseInstant(errs *ValidationErrors, field, value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}
	}
	t, err := timeutil.ParseUTC(value)
	if err != nil {
		errs.Add(field, field+" must be in YYYY-MM-DD HH:MM or RFC3339 format")
		return time.Time{}
	}
	return t
}

// Validate checks the search parameters.
func (r *SearchAirportsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Query = strings.TrimSpace(r.Query)
	if r.Query == "" {
		errs.Add("q", "q is required")
	}
	if r.Limit < 0 {
		errs.Add("limit", "limit must not be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
