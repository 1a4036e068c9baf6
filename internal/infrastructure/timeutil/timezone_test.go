package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		wantErr bool
	}{
		{name: "utc", zone: "UTC"},
		{name: "istanbul", zone: "Europe/Istanbul"},
		{name: "half hour offset", zone: "Asia/Kolkata"},
		{name: "invalid", zone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ClearLocationCache()

			loc, err := GetLocation(tt.zone)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, loc)
				assert.Contains(t, err.Error(), "failed to load timezone")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.zone, loc.String())
		})
	}
}

func TestGetLocation_Caching(t *testing.T) {
	ClearLocationCache()

	loc1, err := GetLocation("Asia/Tokyo")
	require.NoError(t, err)

	loc2, err := GetLocation("Asia/Tokyo")
	require.NoError(t, err)

	assert.Same(t, loc1, loc2)
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	ClearLocationCache()

	var wg sync.WaitGroup
	zones := []string{"UTC", "Europe/Istanbul", "Asia/Tokyo", "America/New_York", "Europe/London"}

	for i := 0; i < 100; i++ {
		for _, tz := range zones {
			wg.Add(1)
			go func(zone string) {
				defer wg.Done()
				loc, err := GetLocation(zone)
				assert.NoError(t, err)
				assert.NotNil(t, loc)
			}(tz)
		}
	}

	wg.Wait()
}

func TestIsValidZone(t *testing.T) {
	assert.True(t, IsValidZone("Europe/Istanbul"))
	assert.False(t, IsValidZone(""))
	assert.False(t, IsValidZone("   "))
	assert.False(t, IsValidZone("Mars/Olympus_Mons"))
}

func TestParseUTC(t *testing.T) {
	want := time.Date(2025, 4, 16, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "minute layout", input: "2025-04-16 08:30", want: want},
		{name: "surrounding spaces", input: "  2025-04-16 08:30 ", want: want},
		{name: "second layout", input: "2025-04-16 08:30:00", want: want},
		{name: "datetime-local layout", input: "2025-04-16T08:30", want: want},
		{name: "rfc3339 zulu", input: "2025-04-16T08:30:00Z", want: want},
		{name: "rfc3339 offset converted", input: "2025-04-16T11:30:00+03:00", want: want},
		{name: "empty", input: "", wantErr: true},
		{name: "date only", input: "2025-04-16", wantErr: true},
		{name: "garbage", input: "tomorrow morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUTC(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "06:07", FormatClock(time.Date(2025, 1, 1, 6, 7, 59, 0, time.UTC)))
	assert.Equal(t, "-", FormatClock(time.Time{}))
}

func TestClearLocationCache(t *testing.T) {
	first, err := GetLocation("UTC")
	require.NoError(t, err)

	ClearLocationCache()

	second, err := GetLocation("UTC")
	require.NoError(t, err)
	third, err := GetLocation("UTC")
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Same(t, second, third)
}
