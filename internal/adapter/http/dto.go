package http

// Light conditions reported for the arrival instant.
const (
	ConditionDaylight = "daylight"
	ConditionNight    = "night"
)

// StaySummaryDTO is the data transfer object for stay summaries.
type StaySummaryDTO struct {
	Airport          AirportDTO          `json:"airport"`
	Timezone         string              `json:"timezone"`
	Arrival          StayPointDTO        `json:"arrival"`
	Departure        StayPointDTO        `json:"departure"`
	Duration         DurationDTO         `json:"duration"`
	DaylightHours    float64             `json:"daylight_hours"`
	NightHours       float64             `json:"night_hours"`
	TotalHours       float64             `json:"total_hours"`
	ArrivalCondition ArrivalConditionDTO `json:"arrival_condition"`
	Days             []DayDTO            `json:"days"`
	Metadata         MetadataDTO         `json:"metadata"`
}

// StayPointDTO is one end of a stay.
type StayPointDTO struct {
	UTC       string `json:"utc"`
	Local     string `json:"local"`
	Timestamp int64  `json:"timestamp"`
}

// DurationDTO represents the stay length.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

// ArrivalConditionDTO describes the light on arrival.
type ArrivalConditionDTO struct {
	Condition string `json:"condition"`
	Sunrise   string `json:"sunrise,omitempty"`
	Sunset    string `json:"sunset,omitempty"`
}

// DayDTO is the contribution of one local calendar date.
// Sunrise and sunset are local HH:MM, or "-" when the sun does not rise or set.
type DayDTO struct {
	Date             string  `json:"date"`
	Sunrise          string  `json:"sunrise"`
	Sunset           string  `json:"sunset"`
	DaylightHours    float64 `json:"daylight_hours"`
	NightHours       float64 `json:"night_hours"`
	SolarDataMissing bool    `json:"solar_data_missing"`
}

// MetadataDTO describes how the summary was produced.
type MetadataDTO struct {
	SolarEngine          string `json:"solar_engine"`
	ZoneSource           string `json:"zone_source"`
	GeneratedAt          string `json:"generated_at"`
	CalculationTimeMs    int64  `json:"calculation_time_ms"`
	DaysWithoutSolarData int    `json:"days_without_solar_data"`
}

// AirportDTO is the data transfer object for airports.
type AirportDTO struct {
	Code         string  `json:"code"`
	Ident        string  `json:"ident,omitempty"`
	Name         string  `json:"name"`
	Municipality string  `json:"municipality,omitempty"`
	Country      string  `json:"country"`
	Label        string  `json:"label"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Timezone     string  `json:"timezone,omitempty"`
}

// AirportListDTO wraps airport search results.
type AirportListDTO struct {
	Query    string       `json:"query"`
	Total    int          `json:"total"`
	Airports []AirportDTO `json:"airports"`
}
