// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rest-planner/layover-daylight/internal/domain"
)

// LoadTestData loads a file from the airport adapter's testdata directory.
func LoadTestData(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	path := filepath.Join(projectRoot, "internal", "adapter", "airport", "testdata", filename)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// MustUTC parses a "YYYY-MM-DD HH:MM" wall clock as a UTC instant.
func MustUTC(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
	if err != nil {
		t.Fatalf("Failed to parse UTC time %s: %v", value, err)
	}
	return parsed
}

// MustLocation loads an IANA zone or fails the test.
func MustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("Failed to load location %s: %v", name, err)
	}
	return loc
}

// MustParseDate parses a date string in YYYY-MM-DD format.
func MustParseDate(t *testing.T, value string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(value)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", value, err)
	}
	return d
}

// Window builds a daylight window on date from HH:MM clock strings in loc.
// An empty string leaves the event unset.
func Window(t *testing.T, date domain.Date, loc *time.Location, sunrise, sunset string) domain.DaylightWindow {
	t.Helper()
	return domain.DaylightWindow{
		Sunrise: clockOn(t, date, loc, sunrise),
		Sunset:  clockOn(t, date, loc, sunset),
	}
}

func clockOn(t *testing.T, date domain.Date, loc *time.Location, clock string) time.Time {
	t.Helper()
	if clock == "" {
		return time.Time{}
	}
	c, err := time.Parse("15:04", clock)
	if err != nil {
		t.Fatalf("Failed to parse clock %s: %v", clock, err)
	}
	return date.At(c.Hour(), c.Minute(), loc)
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
