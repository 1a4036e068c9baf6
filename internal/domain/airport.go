package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Coordinates is an immutable point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Validate checks that the coordinates are on the globe.
func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return WrapInvalidRequest("latitude must be between -90 and 90, got %v", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return WrapInvalidRequest("longitude must be between -180 and 180, got %v", c.Longitude)
	}
	return nil
}

// Airport is one row of the airport reference table.
type Airport struct {
	// Code is the IATA airport code (e.g., "JFK")
	Code string `json:"code" yaml:"code"`

	// Ident is the ICAO or local identifier (e.g., "KJFK")
	Ident string `json:"ident,omitempty" yaml:"ident,omitempty"`

	// Name is the full airport name
	Name string `json:"name" yaml:"name"`

	// Municipality is the city the airport serves
	Municipality string `json:"municipality,omitempty" yaml:"municipality,omitempty"`

	// Country is the ISO 3166-1 alpha-2 country code
	Country string `json:"country" yaml:"country"`

	// Coordinates is the airport reference point
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`

	// Timezone is an optional IANA zone that overrides coordinate-based resolution
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// Label returns "Municipality, Country (CODE)", falling back to the name.
func (a Airport) Label() string {
	place := a.Municipality
	if place == "" {
		place = a.Name
	}
	if place == "" {
		place = "Unknown"
	}
	return fmt.Sprintf("%s, %s (%s)", place, a.Country, a.Code)
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// NormalizeAirportCode upper-cases and trims a code.
func NormalizeAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidAirportCode reports whether code is a 3-letter IATA code.
func IsValidAirportCode(code string) bool {
	return airportCodeRegex.MatchString(code)
}

// StayRequest is the input of a stay calculation: an airport and UTC instants.
type StayRequest struct {
	AirportCode  string
	ArrivalUTC   time.Time
	DepartureUTC time.Time
}

// Validate checks the request and normalizes the airport code.
func (r *StayRequest) Validate() error {
	r.AirportCode = NormalizeAirportCode(r.AirportCode)
	if r.AirportCode == "" {
		return fmt.Errorf("%w: airportCode is required", ErrInvalidRequest)
	}
	if !IsValidAirportCode(r.AirportCode) {
		return fmt.Errorf("%w: airportCode must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, r.AirportCode)
	}
	if r.ArrivalUTC.IsZero() {
		return fmt.Errorf("%w: arrival is required", ErrInvalidRequest)
	}
	if r.DepartureUTC.IsZero() {
		return fmt.Errorf("%w: departure is required", ErrInvalidRequest)
	}
	if !r.ArrivalUTC.Before(r.DepartureUTC) {
		return ErrInvalidInterval
	}
	return nil
}

// ArrivalCondition describes the light at the moment of arrival.
type ArrivalCondition struct {
	// Daylight is true when arrival falls between that day's sunrise and sunset
	Daylight bool

	// Window is the daylight window of the arrival date
	Window DaylightWindow
}

// StayReport is the full result handed to presentation layers.
type StayReport struct {
	Airport          Airport
	Timezone         string
	ArrivalLocal     time.Time
	DepartureLocal   time.Time
	Summary          StaySummary
	Duration         DurationInfo
	ArrivalCondition ArrivalCondition
	Metadata         ReportMetadata
}

// ReportMetadata describes how a report was produced.
type ReportMetadata struct {
	SolarEngine       string
	ZoneSource        string
	GeneratedAt       time.Time
	CalculationTimeMs int64
}

// Zone sources reported in ReportMetadata.
const (
	ZoneSourceDataset     = "dataset"
	ZoneSourceCoordinates = "coordinates"
)

// DurationInfo is a stay length in whole minutes plus a display string.
type DurationInfo struct {
	TotalMinutes int
	Formatted    string
}

// NewDurationInfo creates a DurationInfo from a duration, truncated to minutes.
func NewDurationInfo(d time.Duration) DurationInfo {
	totalMinutes := int(d / time.Minute)
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		formatted = fmt.Sprintf("%dh", hours)
	default:
		formatted = fmt.Sprintf("%dm", mins)
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}
