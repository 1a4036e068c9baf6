// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// locationCache stores loaded zones by IANA name.
var locationCache sync.Map

// Input layouts accepted for UTC instants.
const (
	// MinuteLayout is the compact form used by the planner UI (e.g., "2025-04-16 08:30").
	MinuteLayout = "2006-01-02 15:04"

	// SecondLayout is MinuteLayout with seconds.
	SecondLayout = "2006-01-02 15:04:05"
)

// utcLayouts are tried in order by ParseUTC.
var utcLayouts = []string{
	MinuteLayout,
	SecondLayout,
	"2006-01-02T15:04",
	time.RFC3339,
	time.RFC3339Nano,
}

// GetLocation returns a cached timezone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// IsValidZone reports whether name is a loadable IANA zone.
func IsValidZone(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	_, err := GetLocation(name)
	return err == nil
}

// ParseUTC parses a UTC instant in one of the accepted layouts.
// Values carrying an explicit offset are converted to UTC.
func ParseUTC(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	for _, layout := range utcLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q must be YYYY-MM-DD HH:MM (UTC) or RFC3339", value)
}

// FormatClock formats a time as HH:MM, or "-" for the zero time.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("15:04")
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
