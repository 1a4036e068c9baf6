package timezone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rest-planner/layover-daylight/internal/domain"
)

type stubFinder map[[2]float64]string

func (s stubFinder) GetTimezoneName(lng, lat float64) string {
	return s[[2]float64{lng, lat}]
}

func TestResolver_ZoneFor_Stubbed(t *testing.T) {
	resolver := &Resolver{finder: stubFinder{
		{28.7519, 41.2753}: "Europe/Istanbul",
		{10, 10}:           "Mars/Olympus_Mons",
	}}

	tests := []struct {
		name        string
		coords      domain.Coordinates
		want        string
		wantZoneErr bool
		wantInvalid bool
	}{
		{name: "found", coords: domain.Coordinates{Latitude: 41.2753, Longitude: 28.7519}, want: "Europe/Istanbul"},
		{name: "no polygon", coords: domain.Coordinates{Latitude: 0, Longitude: -160}, wantZoneErr: true},
		{name: "unloadable zone", coords: domain.Coordinates{Latitude: 10, Longitude: 10}, wantZoneErr: true},
		{name: "latitude out of range", coords: domain.Coordinates{Latitude: -91, Longitude: 0}, wantInvalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.ZoneFor(context.Background(), tt.coords)

			switch {
			case tt.wantZoneErr:
				assert.True(t, domain.IsUnresolvableZone(err))
			case tt.wantInvalid:
				assert.True(t, domain.IsInvalidRequest(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolver_ZoneFor_CancelledContext(t *testing.T) {
	resolver := &Resolver{finder: stubFinder{}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.ZoneFor(ctx, domain.Coordinates{Latitude: 1, Longitude: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolver_ZoneFor_Polygons(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the tzf polygon set")
	}

	resolver, err := NewResolver()
	require.NoError(t, err)

	tests := []struct {
		name   string
		coords domain.Coordinates
		want   string
	}{
		{name: "IST", coords: domain.Coordinates{Latitude: 41.2753, Longitude: 28.7519}, want: "Europe/Istanbul"},
		{name: "JFK", coords: domain.Coordinates{Latitude: 40.6398, Longitude: -73.7789}, want: "America/New_York"},
		{name: "NRT", coords: domain.Coordinates{Latitude: 35.7647, Longitude: 140.3864}, want: "Asia/Tokyo"},
		{name: "SYD", coords: domain.Coordinates{Latitude: -33.9461, Longitude: 151.1772}, want: "Australia/Sydney"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.ZoneFor(context.Background(), tt.coords)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
