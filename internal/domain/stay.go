package domain

import (
	"fmt"
	"time"
)

// StayInterval is the span between arrival and departure in one local zone.
// The zero value is invalid; use NewStayInterval or StayFromUTC.
type StayInterval struct {
	arrival   time.Time
	departure time.Time
}

// NewStayInterval builds a StayInterval from two local timestamps.
// Both must be in the same location and arrival must be strictly before departure.
func NewStayInterval(arrival, departure time.Time) (StayInterval, error) {
	if arrival.IsZero() || departure.IsZero() {
		return StayInterval{}, fmt.Errorf("%w: arrival and departure are required", ErrInvalidInterval)
	}
	if arrival.Location().String() != departure.Location().String() {
		return StayInterval{}, fmt.Errorf("%w: arrival in %s but departure in %s",
			ErrInvalidInterval, arrival.Location(), departure.Location())
	}
	if !arrival.Before(departure) {
		return StayInterval{}, fmt.Errorf("%w: arrival %s, departure %s",
			ErrInvalidInterval, arrival.Format(time.RFC3339), departure.Format(time.RFC3339))
	}
	return StayInterval{arrival: arrival, departure: departure}, nil
}

// StayFromUTC converts UTC arrival and departure instants into loc and builds the stay.
func StayFromUTC(arrivalUTC, departureUTC time.Time, loc *time.Location) (StayInterval, error) {
	if loc == nil {
		return StayInterval{}, fmt.Errorf("%w: location is required", ErrInvalidInterval)
	}
	return NewStayInterval(arrivalUTC.In(loc), departureUTC.In(loc))
}

// Arrival returns the local arrival timestamp.
func (s StayInterval) Arrival() time.Time { return s.arrival }

// Departure returns the local departure timestamp.
func (s StayInterval) Departure() time.Time { return s.departure }

// Location returns the zone both timestamps are expressed in.
func (s StayInterval) Location() *time.Location { return s.arrival.Location() }

// Duration returns departure minus arrival.
func (s StayInterval) Duration() time.Duration { return s.departure.Sub(s.arrival) }

// Valid reports whether the interval satisfies its invariants.
func (s StayInterval) Valid() bool {
	return !s.arrival.IsZero() && s.arrival.Before(s.departure)
}

// Dates returns every local calendar date the stay touches, ascending.
func (s StayInterval) Dates() []Date {
	return DateRange(DateOf(s.arrival), DateOf(s.departure))
}

// DaylightWindow holds the sunrise and sunset for one date.
// A zero time means the event does not occur that day.
type DaylightWindow struct {
	Sunrise time.Time
	Sunset  time.Time
}

// NewDaylightWindow builds a window, rejecting sunrise >= sunset when both are present.
func NewDaylightWindow(sunrise, sunset time.Time) (DaylightWindow, error) {
	w := DaylightWindow{Sunrise: sunrise, Sunset: sunset}
	if err := w.Validate(); err != nil {
		return DaylightWindow{}, err
	}
	return w, nil
}

// HasSunrise reports whether a sunrise occurs.
func (w DaylightWindow) HasSunrise() bool { return !w.Sunrise.IsZero() }

// HasSunset reports whether a sunset occurs.
func (w DaylightWindow) HasSunset() bool { return !w.Sunset.IsZero() }

// Complete reports whether both events are present.
func (w DaylightWindow) Complete() bool { return w.HasSunrise() && w.HasSunset() }

// Validate checks the ordering invariant.
func (w DaylightWindow) Validate() error {
	if w.Complete() && !w.Sunrise.Before(w.Sunset) {
		return fmt.Errorf("%w: sunrise %s, sunset %s", ErrInvalidDaylightWindow,
			w.Sunrise.Format(time.RFC3339), w.Sunset.Format(time.RFC3339))
	}
	return nil
}

// Contains reports whether t falls within [sunrise, sunset].
func (w DaylightWindow) Contains(t time.Time) bool {
	if !w.Complete() {
		return false
	}
	return !t.Before(w.Sunrise) && !t.After(w.Sunset)
}

// In returns the window with both events converted to loc.
func (w DaylightWindow) In(loc *time.Location) DaylightWindow {
	out := w
	if w.HasSunrise() {
		out.Sunrise = w.Sunrise.In(loc)
	}
	if w.HasSunset() {
		out.Sunset = w.Sunset.In(loc)
	}
	return out
}

// DayContribution is the daylight/night split for one date of a stay.
type DayContribution struct {
	Date     Date
	Daylight time.Duration
	Night    time.Duration
	Window   DaylightWindow

	// SolarDataMissing is set when the window lacked a sunrise or sunset
	// and the whole segment was counted as night.
	SolarDataMissing bool
}

// DaylightHours returns Daylight in hours.
func (c DayContribution) DaylightHours() float64 { return c.Daylight.Hours() }

// NightHours returns Night in hours.
func (c DayContribution) NightHours() float64 { return c.Night.Hours() }

// Total returns the part of the stay that fell on this date.
func (c DayContribution) Total() time.Duration { return c.Daylight + c.Night }

// StaySummary aggregates the day contributions of a stay.
type StaySummary struct {
	TotalDaylight time.Duration
	TotalNight    time.Duration
	Duration      time.Duration
	Days          []DayContribution
}

// TotalDaylightHours returns TotalDaylight in hours.
func (s StaySummary) TotalDaylightHours() float64 { return s.TotalDaylight.Hours() }

// TotalNightHours returns TotalNight in hours.
func (s StaySummary) TotalNightHours() float64 { return s.TotalNight.Hours() }

// DurationHours returns Duration in hours.
func (s StaySummary) DurationHours() float64 { return s.Duration.Hours() }

// DaysWithoutSolarData counts the days flagged SolarDataMissing.
func (s StaySummary) DaysWithoutSolarData() int {
	n := 0
	for _, d := range s.Days {
		if d.SolarDataMissing {
			n++
		}
	}
	return n
}
