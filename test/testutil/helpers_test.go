package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rest-planner/layover-daylight/internal/domain"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "UTC",
			value: "2025-04-15T10:00:00Z",
			want:  time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "with offset",
			value: "2025-04-15T13:00:00+03:00",
			want:  time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(t, tt.value)
			assert.True(t, tt.want.Equal(result))
		})
	}
}

func TestMustUTC(t *testing.T) {
	result := MustUTC(t, "2025-04-15 22:30")

	assert.Equal(t, time.UTC, result.Location())
	assert.Equal(t, time.Date(2025, 4, 15, 22, 30, 0, 0, time.UTC), result)
}

func TestMustLocation(t *testing.T) {
	loc := MustLocation(t, "Europe/Istanbul")
	assert.Equal(t, "Europe/Istanbul", loc.String())
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  domain.Date
	}{
		{name: "valid date", value: "2025-12-15", want: domain.NewDate(2025, time.December, 15)},
		{name: "january date", value: "2025-01-01", want: domain.NewDate(2025, time.January, 1)},
		{name: "leap year date", value: "2024-02-29", want: domain.NewDate(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseDate(t, tt.value))
		})
	}
}

func TestWindow(t *testing.T) {
	loc := MustLocation(t, "Europe/Istanbul")
	date := domain.NewDate(2025, time.April, 15)

	t.Run("both events", func(t *testing.T) {
		w := Window(t, date, loc, "06:30", "19:45")

		require.True(t, w.Complete())
		assert.Equal(t, time.Date(2025, 4, 15, 6, 30, 0, 0, loc), w.Sunrise)
		assert.Equal(t, time.Date(2025, 4, 15, 19, 45, 0, 0, loc), w.Sunset)
	})

	t.Run("missing sunset", func(t *testing.T) {
		w := Window(t, date, loc, "06:30", "")

		assert.True(t, w.HasSunrise())
		assert.False(t, w.HasSunset())
	})
}

func TestPtr(t *testing.T) {
	t.Run("int value", func(t *testing.T) {
		p := Ptr(42)
		require.NotNil(t, p)
		assert.Equal(t, 42, *p)
	})

	t.Run("string value", func(t *testing.T) {
		p := Ptr("IST")
		require.NotNil(t, p)
		assert.Equal(t, "IST", *p)
	})
}

func TestLoadTestData(t *testing.T) {
	data := LoadTestData(t, "airports.csv")
	assert.NotEmpty(t, data)
	assert.Contains(t, string(data), "iata_code")
}
