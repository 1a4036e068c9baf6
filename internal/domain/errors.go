package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the planner. Wrap them with %w and test with errors.Is.
var (
	// ErrInvalidRequest indicates malformed or incomplete input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidInterval indicates arrival is not strictly before departure.
	ErrInvalidInterval = errors.New("invalid stay interval: arrival must be before departure")

	// ErrUnresolvableZone indicates no time zone could be found for a location.
	ErrUnresolvableZone = errors.New("unresolvable time zone")

	// ErrAirportNotFound indicates the airport directory has no matching record.
	ErrAirportNotFound = errors.New("airport not found")

	// ErrMissingSolarData marks a day with no sunrise or sunset event.
	// It is never returned from Summarize; the day is counted as night and flagged.
	ErrMissingSolarData = errors.New("missing solar data")

	// ErrInvalidDaylightWindow indicates a window whose sunrise is not before its sunset.
	ErrInvalidDaylightWindow = errors.New("invalid daylight window: sunrise must be before sunset")

	// ErrSolarDataUnavailable indicates the solar calculator failed.
	ErrSolarDataUnavailable = errors.New("solar data unavailable")
)

// DayError reports a failure while fetching the daylight window for one date.
type DayError struct {
	Date Date
	Err  error
}

// NewDayError wraps err with the date it occurred on.
func NewDayError(date Date, err error) *DayError {
	return &DayError{Date: date, Err: err}
}

func (e *DayError) Error() string {
	return fmt.Sprintf("daylight window for %s: %v", e.Date, e.Err)
}

func (e *DayError) Unwrap() error {
	return e.Err
}

// ZoneError reports coordinates for which no zone could be resolved.
type ZoneError struct {
	Latitude  float64
	Longitude float64
	Err       error
}

// NewZoneError creates a ZoneError. A nil err means the resolver simply found nothing.
func NewZoneError(lat, lon float64, err error) *ZoneError {
	return &ZoneError{Latitude: lat, Longitude: lon, Err: err}
}

func (e *ZoneError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at (%.4f, %.4f): %v", ErrUnresolvableZone, e.Latitude, e.Longitude, e.Err)
	}
	return fmt.Sprintf("%s at (%.4f, %.4f)", ErrUnresolvableZone, e.Latitude, e.Longitude)
}

// Is makes every ZoneError match ErrUnresolvableZone.
func (e *ZoneError) Is(target error) bool {
	return target == ErrUnresolvableZone
}

func (e *ZoneError) Unwrap() error {
	return e.Err
}

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Is makes every ValidationError match ErrInvalidRequest.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// WrapInvalidRequest formats a message and wraps it with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is (or wraps) ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsInvalidInterval reports whether err is (or wraps) ErrInvalidInterval.
func IsInvalidInterval(err error) bool {
	return errors.Is(err, ErrInvalidInterval)
}

// IsUnresolvableZone reports whether err is (or wraps) ErrUnresolvableZone.
func IsUnresolvableZone(err error) bool {
	return errors.Is(err, ErrUnresolvableZone)
}

// IsAirportNotFound reports whether err is (or wraps) ErrAirportNotFound.
func IsAirportNotFound(err error) bool {
	return errors.Is(err, ErrAirportNotFound)
}

// IsSolarFailure reports whether err came from the daylight window supplier.
func IsSolarFailure(err error) bool {
	var dayErr *DayError
	return errors.As(err, &dayErr) ||
		errors.Is(err, ErrSolarDataUnavailable) ||
		errors.Is(err, ErrInvalidDaylightWindow)
}
