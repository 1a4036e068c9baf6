// Package solar provides domain.SolarCalculator implementations.
package solar

import (
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/rest-planner/layover-daylight/internal/domain"
)

// EngineSunrise is the name reported by SunriseCalculator.
const EngineSunrise = "sunrise"

// computeFunc matches sunrise.SunriseSunset.
type computeFunc func(latitude, longitude float64, year int, month time.Month, day int) (time.Time, time.Time)

// SunriseCalculator computes daylight windows with github.com/nathan-osman/go-sunrise.
// It holds no mutable state and is safe for concurrent use.
type SunriseCalculator struct {
	compute computeFunc
}

// NewSunriseCalculator creates a calculator backed by go-sunrise.
func NewSunriseCalculator() *SunriseCalculator {
	return &SunriseCalculator{compute: sunrise.SunriseSunset}
}

// Name returns EngineSunrise.
func (c *SunriseCalculator) Name() string {
	return EngineSunrise
}

// DaylightWindow returns sunrise and sunset for the local date in loc.
// Polar day and polar night yield a window with both events absent.
func (c *SunriseCalculator) DaylightWindow(date domain.Date, coords domain.Coordinates, loc *time.Location) (domain.DaylightWindow, error) {
	if loc == nil {
		return domain.DaylightWindow{}, domain.WrapInvalidRequest("location is required")
	}
	if err := coords.Validate(); err != nil {
		return domain.DaylightWindow{}, err
	}

	window := c.windowFor(date, coords, loc)

	// The engine works on UTC days. Far from the zone's meridian the events can land on
	// the neighbouring local date, so query the adjacent UTC day once.
	if shift := dayShift(window, date, loc); shift != 0 {
		window = c.windowFor(date.AddDays(shift), coords, loc)
	}

	if err := window.Validate(); err != nil {
		return domain.DaylightWindow{}, err
	}
	return window, nil
}

func (c *SunriseCalculator) windowFor(d domain.Date, coords domain.Coordinates, loc *time.Location) domain.DaylightWindow {
	rise, set := c.compute(coords.Latitude, coords.Longitude, d.Year(), d.Month(), d.Day())
	return domain.DaylightWindow{Sunrise: rise, Sunset: set}.In(loc)
}

// dayShift returns the number of days to move the query so the window's first event
// falls on want in loc.
func dayShift(w domain.DaylightWindow, want domain.Date, loc *time.Location) int {
	ref := w.Sunrise
	if ref.IsZero() {
		ref = w.Sunset
	}
	if ref.IsZero() {
		return 0
	}
	got := domain.DateOf(ref.In(loc))
	switch {
	case got.After(want):
		return -1
	case got.Before(want):
		return 1
	default:
		return 0
	}
}

var _ domain.SolarCalculator = (*SunriseCalculator)(nil)
