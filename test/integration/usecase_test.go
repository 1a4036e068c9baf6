package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rest-planner/layover-daylight/internal/domain"
	"github.com/rest-planner/layover-daylight/internal/usecase"
	"github.com/rest-planner/layover-daylight/test/mock"
	"github.com/rest-planner/layover-daylight/test/testutil"
)

func stay(t *testing.T, code, arrival, departure string) domain.StayRequest {
	t.Helper()
	return domain.StayRequest{
		AirportCode:  code,
		ArrivalUTC:   testutil.MustUTC(t, arrival),
		DepartureUTC: testutil.MustUTC(t, departure),
	}
}

// TestStayPlanner_MultiDay tests a stay spanning several local dates.
func TestStayPlanner_MultiDay(t *testing.T) {
	// Arrange
	sun := mock.NewSolar("fixed")
	uc := CreateUseCase(t, sun, mock.NewZones("Europe/Istanbul"))

	// 2025-04-14 21:00 local to 2025-04-16 09:00 local
	req := stay(t, "IST", "2025-04-14 18:00", "2025-04-16 06:00")

	// Act
	report, err := uc.Summarize(context.Background(), req)

	// Assert
	require.NoError(t, err)
	require.Len(t, report.Summary.Days, 3)

	assert.Equal(t, 3*time.Hour, report.Summary.Days[0].Night)
	assert.Equal(t, time.Duration(0), report.Summary.Days[0].Daylight)
	assert.Equal(t, 12*time.Hour, report.Summary.Days[1].Daylight)
	assert.Equal(t, 12*time.Hour, report.Summary.Days[1].Night)
	assert.Equal(t, 3*time.Hour, report.Summary.Days[2].Daylight)
	assert.Equal(t, 6*time.Hour, report.Summary.Days[2].Night)

	assert.Equal(t, 15*time.Hour, report.Summary.TotalDaylight)
	assert.Equal(t, 21*time.Hour, report.Summary.TotalNight)
	assert.Equal(t, 36*time.Hour, report.Summary.Duration)
	assert.False(t, report.ArrivalCondition.Daylight)
	assert.Equal(t, 3, sun.CallCount())
}

// TestStayPlanner_WithinOneDay tests the single-date cases around the window.
func TestStayPlanner_WithinOneDay(t *testing.T) {
	tests := []struct {
		name         string
		arrival      string
		departure    string
		wantDaylight time.Duration
		wantNight    time.Duration
	}{
		{
			name:         "entirely before sunrise",
			arrival:      "2025-04-16 00:00",
			departure:    "2025-04-16 02:00",
			wantDaylight: 0,
			wantNight:    2 * time.Hour,
		},
		{
			name:         "entirely in daylight",
			arrival:      "2025-04-16 05:00",
			departure:    "2025-04-16 12:30",
			wantDaylight: 7*time.Hour + 30*time.Minute,
			wantNight:    0,
		},
		{
			name:         "straddles sunset",
			arrival:      "2025-04-16 13:00",
			departure:    "2025-04-16 17:00",
			wantDaylight: 2 * time.Hour,
			wantNight:    2 * time.Hour,
		},
		{
			name:         "covers the whole window",
			arrival:      "2025-04-16 01:00",
			departure:    "2025-04-16 20:00",
			wantDaylight: 12 * time.Hour,
			wantNight:    7 * time.Hour,
		},
	}

	uc := CreateUseCase(t, mock.NewSolar("fixed"), mock.NewZones("Europe/Istanbul"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := uc.Summarize(context.Background(), stay(t, "IST", tt.arrival, tt.departure))

			require.NoError(t, err)
			require.Len(t, report.Summary.Days, 1)
			assert.Equal(t, tt.wantDaylight, report.Summary.TotalDaylight)
			assert.Equal(t, tt.wantNight, report.Summary.TotalNight)
		})
	}
}

// TestStayPlanner_DaylightSavingTransition tests a stay across a spring-forward night.
func TestStayPlanner_DaylightSavingTransition(t *testing.T) {
	uc := CreateUseCase(t, mock.NewSolar("fixed"), mock.NewZones("UTC"))

	// TOS resolves to Europe/Oslo from the table; clocks jump 02:00 -> 03:00 on 2025-03-30
	report, err := uc.Summarize(context.Background(), stay(t, "TOS", "2025-03-29 21:00", "2025-03-30 21:00"))

	require.NoError(t, err)
	require.Len(t, report.Summary.Days, 2)
	assert.Equal(t, 24*time.Hour, report.Summary.Duration)
	assert.Equal(t, 22*time.Hour, report.Summary.Days[1].Total())
	assert.Equal(t, 12*time.Hour, report.Summary.Days[1].Daylight)
	assert.Equal(t, report.Summary.Duration, report.Summary.TotalDaylight+report.Summary.TotalNight)
}

// TestStayPlanner_SolarFailureAbortsSummary tests that no partial report is returned.
func TestStayPlanner_SolarFailureAbortsSummary(t *testing.T) {
	failing := domain.NewDate(2025, time.April, 15)
	sun := mock.NewSolar("fixed").WithError(failing, errors.New("ephemeris unavailable"))
	uc := CreateUseCase(t, sun, mock.NewZones("Europe/Istanbul"))

	report, err := uc.Summarize(context.Background(), stay(t, "IST", "2025-04-14 18:00", "2025-04-16 06:00"))

	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, domain.IsSolarFailure(err))

	var dayErr *domain.DayError
	require.ErrorAs(t, err, &dayErr)
	assert.Equal(t, failing, dayErr.Date)
	assert.Equal(t, 2, sun.CallCount(), "dates after the failure are not queried")
}

// TestStayPlanner_Timeout tests that the calculation timeout is enforced.
func TestStayPlanner_Timeout(t *testing.T) {
	sun := mock.NewSolar("slow").WithDelay(40 * time.Millisecond)
	uc := CreateUseCaseWithConfig(t, sun, mock.NewZones("Europe/Istanbul"), &usecase.Config{
		CalculationTimeout: 20 * time.Millisecond,
	})

	start := time.Now()
	_, err := uc.Summarize(context.Background(), stay(t, "IST", "2025-04-14 18:00", "2025-04-16 06:00"))
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 200*time.Millisecond)
	assert.Equal(t, 1, sun.CallCount())
}

// TestStayPlanner_ContextCancellation tests that an already cancelled context stops the use case.
func TestStayPlanner_ContextCancellation(t *testing.T) {
	sun := mock.NewSolar("fixed")
	uc := CreateUseCase(t, sun, mock.NewZones("Europe/Istanbul"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Summarize(ctx, stay(t, "IST", "2025-04-16 10:00", "2025-04-17 03:00"))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, sun.CallCount())
}

// TestStayPlanner_ZoneResolverUnused tests that a dataset zone skips coordinate lookup.
func TestStayPlanner_ZoneResolverUnused(t *testing.T) {
	zones := mock.NewZones("").WithError(errors.New("resolver must not be called"))
	uc := CreateUseCase(t, mock.NewSolar("fixed"), zones)

	report, err := uc.Summarize(context.Background(), stay(t, "TOS", "2025-06-21 10:00", "2025-06-21 12:00"))

	require.NoError(t, err)
	assert.Equal(t, "Europe/Oslo", report.Timezone)
	assert.Equal(t, domain.ZoneSourceDataset, report.Metadata.ZoneSource)
}

// TestStayPlanner_RealEngines_Istanbul checks the astronomical window against known values.
func TestStayPlanner_RealEngines_Istanbul(t *testing.T) {
	uc := CreateRealUseCase(t)

	report, err := uc.Summarize(context.Background(), stay(t, "IST", "2025-06-21 00:00", "2025-06-21 20:59"))
	require.NoError(t, err)
	require.Len(t, report.Summary.Days, 1)

	loc := testutil.MustLocation(t, "Europe/Istanbul")
	window := report.Summary.Days[0].Window
	require.True(t, window.Complete())

	// Solstice sunrise near 05:32 and sunset near 20:40 local
	assert.WithinDuration(t, time.Date(2025, 6, 21, 5, 32, 0, 0, loc), window.Sunrise, 10*time.Minute)
	assert.WithinDuration(t, time.Date(2025, 6, 21, 20, 40, 0, 0, loc), window.Sunset, 10*time.Minute)
	assert.InDelta(t, 15.1, report.Summary.TotalDaylightHours(), 0.3)
}

// TestStayPlanner_RealEngines_MidnightSun tests continuous daylight counts as missing data.
func TestStayPlanner_RealEngines_MidnightSun(t *testing.T) {
	uc := CreateRealUseCase(t)

	report, err := uc.Summarize(context.Background(), stay(t, "TOS", "2025-06-21 00:00", "2025-06-21 12:00"))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.DaysWithoutSolarData())
	assert.Equal(t, time.Duration(0), report.Summary.TotalDaylight)
	assert.Equal(t, 12*time.Hour, report.Summary.TotalNight)
}

// TestStayPlanner_SearchEmbeddedTable tests search against the embedded dataset.
func TestStayPlanner_SearchEmbeddedTable(t *testing.T) {
	uc := CreateRealUseCase(t)

	airports, err := uc.SearchAirports(context.Background(), "ist", 0)
	require.NoError(t, err)
	require.NotEmpty(t, airports)
	assert.Equal(t, "IST", airports[0].Code, "exact code match ranks first")

	assert.Greater(t, uc.AirportCount(), 30)
}
