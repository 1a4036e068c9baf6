// Package http provides swagger type definitions for API documentation.
// These types mirror the response DTOs with examples so swag can render them.
package http

// SwaggerStaySummary represents the stay summary response for swagger documentation.
// @Description Daylight and night hours of a layover, split by local calendar day
type SwaggerStaySummary struct {
	// Airport is the layover airport
	Airport SwaggerAirport `json:"airport"`

	// Timezone is the IANA zone the stay was split in
	Timezone string `json:"timezone" example:"Europe/Istanbul"`

	// Arrival is the start of the stay
	Arrival SwaggerStayPoint `json:"arrival"`

	// Departure is the end of the stay
	Departure SwaggerStayPoint `json:"departure"`

	// Duration is the stay length
	Duration SwaggerDuration `json:"duration"`

	// DaylightHours is the total daylight, rounded to two decimals
	DaylightHours float64 `json:"daylight_hours" example:"5"`

	// NightHours is the total darkness, rounded to two decimals
	NightHours float64 `json:"night_hours" example:"12"`

	// TotalHours is the stay length in hours
	TotalHours float64 `json:"total_hours" example:"17"`

	// ArrivalCondition is the light at arrival
	ArrivalCondition SwaggerArrivalCondition `json:"arrival_condition"`

	// Days lists each local date touched by the stay, in order
	Days []SwaggerDay `json:"days"`

	// Metadata describes how the summary was produced
	Metadata SwaggerMetadata `json:"metadata"`
}

// SwaggerStayPoint is one end of a stay.
type SwaggerStayPoint struct {
	UTC       string `json:"utc" example:"2025-04-16T10:00:00Z"`
	Local     string `json:"local" example:"2025-04-16T13:00:00+03:00"`
	Timestamp int64  `json:"timestamp" example:"1744797600"`
}

// SwaggerDuration represents the stay length.
type SwaggerDuration struct {
	TotalMinutes int    `json:"total_minutes" example:"1020"`
	Formatted    string `json:"formatted" example:"17h"`
}

// SwaggerArrivalCondition describes the light on arrival.
type SwaggerArrivalCondition struct {
	Condition string `json:"condition" example:"daylight" enums:"daylight,night"`
	Sunrise   string `json:"sunrise,omitempty" example:"2025-04-16T06:27:00+03:00"`
	Sunset    string `json:"sunset,omitempty" example:"2025-04-16T19:44:00+03:00"`
}

// SwaggerDay is the contribution of one local date.
type SwaggerDay struct {
	Date             string  `json:"date" example:"2025-04-16"`
	Sunrise          string  `json:"sunrise" example:"06:27"`
	Sunset           string  `json:"sunset" example:"19:44"`
	DaylightHours    float64 `json:"daylight_hours" example:"6.73"`
	NightHours       float64 `json:"night_hours" example:"4.27"`
	SolarDataMissing bool    `json:"solar_data_missing" example:"false"`
}

// SwaggerMetadata describes how the summary was produced.
type SwaggerMetadata struct {
	SolarEngine          string `json:"solar_engine" example:"sunrise"`
	ZoneSource           string `json:"zone_source" example:"coordinates" enums:"dataset,coordinates"`
	GeneratedAt          string `json:"generated_at" example:"2025-04-01T09:00:00Z"`
	CalculationTimeMs    int64  `json:"calculation_time_ms" example:"2"`
	DaysWithoutSolarData int    `json:"days_without_solar_data" example:"0"`
}

// SwaggerAirport represents an airport.
// @Description Airport reference data
type SwaggerAirport struct {
	Code         string  `json:"code" example:"IST"`
	Ident        string  `json:"ident,omitempty" example:"LTFM"`
	Name         string  `json:"name" example:"Istanbul Airport"`
	Municipality string  `json:"municipality,omitempty" example:"Istanbul"`
	Country      string  `json:"country" example:"TR"`
	Label        string  `json:"label" example:"Istanbul, TR (IST)"`
	Latitude     float64 `json:"latitude" example:"41.2753"`
	Longitude    float64 `json:"longitude" example:"28.7519"`
	Timezone     string  `json:"timezone,omitempty" example:"Europe/Istanbul"`
}

// SwaggerAirportList wraps airport search results.
type SwaggerAirportList struct {
	Query    string           `json:"query" example:"ist"`
	Total    int              `json:"total" example:"2"`
	Airports []SwaggerAirport `json:"airports"`
}

// SwaggerErrorResponse represents an error response for swagger documentation.
// @Description Error envelope
type SwaggerErrorResponse struct {
	Success bool               `json:"success" example:"false"`
	Error   SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail contains structured error information.
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error" enums:"invalid_request,validation_error,invalid_interval,not_found,unresolvable_zone,solar_unavailable,timeout,internal_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
