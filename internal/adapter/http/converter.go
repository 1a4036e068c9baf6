package http

import (
	"math"
	"time"

	"github.com/rest-planner/layover-daylight/internal/domain"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/timeutil"
)

// ToDomainStayRequest converts a validated request to the use case input.
func ToDomainStayRequest(req *StaySummaryRequest) domain.StayRequest {
	return domain.StayRequest{
		AirportCode:  req.AirportCode,
		ArrivalUTC:   req.arrivalUTC,
		DepartureUTC: req.departureUTC,
	}
}

// roundHours converts d to hours rounded to two decimals.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// formatInstant renders t in its own zone with offset, or "" when zero.
func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// lightCondition names the light at an instant.
func lightCondition(daylight bool) string {
	if daylight {
		return ConditionDaylight
	}
	return ConditionNight
}

// ToAirportDTO converts a domain Airport.
func ToAirportDTO(a *domain.Airport) AirportDTO {
	return AirportDTO{
		Code:         a.Code,
		Ident:        a.Ident,
		Name:         a.Name,
		Municipality: a.Municipality,
		Country:      a.Country,
		Label:        a.Label(),
		Latitude:     a.Coordinates.Latitude,
		Longitude:    a.Coordinates.Longitude,
		Timezone:     a.Timezone,
	}
}

// ToAirportListDTO converts search results.
func ToAirportListDTO(query string, airports []domain.Airport) *AirportListDTO {
	dto := &AirportListDTO{
		Query:    query,
		Total:    len(airports),
		Airports: make([]AirportDTO, len(airports)),
	}
	for i := range airports {
		dto.Airports[i] = ToAirportDTO(&airports[i])
	}
	return dto
}

// ToDayDTO converts one day of a summary.
func ToDayDTO(day domain.DayContribution) DayDTO {
	return DayDTO{
		Date:             day.Date.String(),
		Sunrise:          timeutil.FormatClock(day.Window.Sunrise),
		Sunset:           timeutil.FormatClock(day.Window.Sunset),
		DaylightHours:    roundHours(day.Daylight),
		NightHours:       roundHours(day.Night),
		SolarDataMissing: day.SolarDataMissing,
	}
}

// ToStaySummaryDTO converts a domain StayReport to the API response.
func ToStaySummaryDTO(report *domain.StayReport) *StaySummaryDTO {
	if report == nil {
		return nil
	}

	summary := report.Summary
	dto := &StaySummaryDTO{
		Airport:  ToAirportDTO(&report.Airport),
		Timezone: report.Timezone,
		Arrival: StayPointDTO{
			UTC:       formatInstant(report.ArrivalLocal.UTC()),
			Local:     formatInstant(report.ArrivalLocal),
			Timestamp: report.ArrivalLocal.Unix(),
		},
		Departure: StayPointDTO{
			UTC:       formatInstant(report.DepartureLocal.UTC()),
			Local:     formatInstant(report.DepartureLocal),
			Timestamp: report.DepartureLocal.Unix(),
		},
		Duration: DurationDTO{
			TotalMinutes: report.Duration.TotalMinutes,
			Formatted:    report.Duration.Formatted,
		},
		DaylightHours: roundHours(summary.TotalDaylight),
		NightHours:    roundHours(summary.TotalNight),
		TotalHours:    roundHours(summary.Duration),
		ArrivalCondition: ArrivalConditionDTO{
			Condition: lightCondition(report.ArrivalCondition.Daylight),
			Sunrise:   formatInstant(report.ArrivalCondition.Window.Sunrise),
			Sunset:    formatInstant(report.ArrivalCondition.Window.Sunset),
		},
		Days: make([]DayDTO, len(summary.Days)),
		Metadata: MetadataDTO{
			SolarEngine:          report.Metadata.SolarEngine,
			ZoneSource:           report.Metadata.ZoneSource,
			GeneratedAt:          formatInstant(report.Metadata.GeneratedAt),
			CalculationTimeMs:    report.Metadata.CalculationTimeMs,
			DaysWithoutSolarData: summary.DaysWithoutSolarData(),
		},
	}

	for i, day := range summary.Days {
		dto.Days[i] = ToDayDTO(day)
	}

	return dto
}
