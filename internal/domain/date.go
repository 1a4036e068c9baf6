// Package domain contains the core entities and rules for the layover daylight planner.
// Everything here is pure: no I/O, no clocks, no global state.
package domain

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// DateLayout is the text form of a Date (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Date is a calendar date with no time of day and no zone.
type Date struct {
	cd datetime.CalendarDate
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{cd: datetime.NewCalendarDate(y, datetime.Month(m), d)}
}

// NewDate builds a normalized Date, so NewDate(2025, 1, 32) is 2025-02-01.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromCalendarDate wraps a datetime.CalendarDate.
func FromCalendarDate(cd datetime.CalendarDate) Date {
	return NewDate(cd.Year(), time.Month(cd.Month()), cd.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// CalendarDate returns the underlying datetime.CalendarDate.
func (d Date) CalendarDate() datetime.CalendarDate { return d.cd }

// Year returns the year.
func (d Date) Year() int { return d.cd.Year() }

// Month returns the month.
func (d Date) Month() time.Month { return time.Month(d.cd.Month()) }

// Day returns the day of the month.
func (d Date) Day() int { return d.cd.Day() }

// At returns the wall clock hour:minute on d in loc.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return d.cd.Time(datetime.NewTimeOfDay(hour, minute, 0), loc)
}

// Start returns the first instant of the date in loc. Where a DST change
// skips local midnight this is the end of the gap, not 00:00.
func (d Date) Start(loc *time.Location) time.Time {
	t := d.At(0, 0, loc)
	if DateOf(t).Before(d) {
		if _, end := t.ZoneBounds(); !end.IsZero() {
			t = end
		}
	}
	return t
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year(), d.Month(), d.Day()+n)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year() != other.Year() {
		return d.Year() < other.Year()
	}
	if d.Month() != other.Month() {
		return d.Month() < other.Month()
	}
	return d.Day() < other.Day()
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange returns every date from first to last inclusive, ascending.
// It returns nil when last is before first.
func DateRange(first, last Date) []Date {
	if last.Before(first) {
		return nil
	}
	var dates []Date
	for d := first; !d.After(last); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}
