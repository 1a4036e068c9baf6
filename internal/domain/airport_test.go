package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDurationInfo(t *testing.T) {
	tests := []struct {
		name          string
		duration      time.Duration
		wantMinutes   int
		wantFormatted string
	}{
		{name: "hours and minutes", duration: 150 * time.Minute, wantMinutes: 150, wantFormatted: "2h 30m"},
		{name: "only hours", duration: 2 * time.Hour, wantMinutes: 120, wantFormatted: "2h"},
		{name: "only minutes", duration: 45 * time.Minute, wantMinutes: 45, wantFormatted: "45m"},
		{name: "zero", duration: 0, wantMinutes: 0, wantFormatted: "0m"},
		{name: "seconds are truncated", duration: 65*time.Minute + 59*time.Second, wantMinutes: 65, wantFormatted: "1h 5m"},
		{name: "multi-day layover", duration: 36 * time.Hour, wantMinutes: 2160, wantFormatted: "36h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewDurationInfo(tt.duration)
			assert.Equal(t, tt.wantMinutes, result.TotalMinutes)
			assert.Equal(t, tt.wantFormatted, result.Formatted)
		})
	}
}

func TestAirportCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
		valid bool
	}{
		{input: "ist", want: "IST", valid: true},
		{input: "  jfk ", want: "JFK", valid: true},
		{input: "LHR", want: "LHR", valid: true},
		{input: "LH", want: "LH", valid: false},
		{input: "EGLL", want: "EGLL", valid: false},
		{input: "L1R", want: "L1R", valid: false},
		{input: "", want: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeAirportCode(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, IsValidAirportCode(got))
		})
	}
}

func TestAirport_Label(t *testing.T) {
	tests := []struct {
		name    string
		airport Airport
		want    string
	}{
		{
			name:    "municipality",
			airport: Airport{Code: "IST", Name: "Istanbul Airport", Municipality: "Istanbul", Country: "TR"},
			want:    "Istanbul, TR (IST)",
		},
		{
			name:    "falls back to name",
			airport: Airport{Code: "XYZ", Name: "Remote Strip", Country: "AU"},
			want:    "Remote Strip, AU (XYZ)",
		},
		{
			name:    "unknown",
			airport: Airport{Code: "QQQ", Country: "US"},
			want:    "Unknown, US (QQQ)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.airport.Label())
		})
	}
}

func TestCoordinates_Validate(t *testing.T) {
	assert.NoError(t, Coordinates{Latitude: 41.2753, Longitude: 28.7519}.Validate())
	assert.NoError(t, Coordinates{Latitude: -90, Longitude: 180}.Validate())
	assert.True(t, IsInvalidRequest(Coordinates{Latitude: 91}.Validate()))
	assert.True(t, IsInvalidRequest(Coordinates{Longitude: -180.5}.Validate()))
}

func TestStayRequest_Validate(t *testing.T) {
	arr := time.Date(2025, time.April, 16, 8, 0, 0, 0, time.UTC)
	dep := arr.Add(10 * time.Hour)

	tests := []struct {
		name         string
		req          StayRequest
		wantInvalid  bool
		wantInterval bool
	}{
		{name: "valid", req: StayRequest{AirportCode: "ist", ArrivalUTC: arr, DepartureUTC: dep}},
		{name: "missing code", req: StayRequest{ArrivalUTC: arr, DepartureUTC: dep}, wantInvalid: true},
		{name: "bad code", req: StayRequest{AirportCode: "IS1", ArrivalUTC: arr, DepartureUTC: dep}, wantInvalid: true},
		{name: "missing arrival", req: StayRequest{AirportCode: "IST", DepartureUTC: dep}, wantInvalid: true},
		{name: "missing departure", req: StayRequest{AirportCode: "IST", ArrivalUTC: arr}, wantInvalid: true},
		{name: "equal instants", req: StayRequest{AirportCode: "IST", ArrivalUTC: arr, DepartureUTC: arr}, wantInterval: true},
		{name: "departure first", req: StayRequest{AirportCode: "IST", ArrivalUTC: dep, DepartureUTC: arr}, wantInterval: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := req.Validate()

			switch {
			case tt.wantInvalid:
				assert.True(t, IsInvalidRequest(err))
			case tt.wantInterval:
				assert.True(t, IsInvalidInterval(err))
			default:
				assert.NoError(t, err)
				assert.Equal(t, "IST", req.AirportCode)
			}
		})
	}
}
