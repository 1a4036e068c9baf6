// Package usecase contains the application logic of the layover planner.
// It turns an airport code and UTC arrival/departure instants into a daylight report.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rest-planner/layover-daylight/internal/domain"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/logger"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/timeutil"
)

// Default configuration values.
const (
	DefaultCalculationTimeout = 5 * time.Second
	DefaultSearchLimit        = 10
	DefaultMaxSearchLimit     = 50
)

// StayPlannerUseCase defines the operations exposed to transport adapters.
type StayPlannerUseCase interface {
	// Summarize computes the daylight/night split of a stay at an airport.
	Summarize(ctx context.Context, req domain.StayRequest) (*domain.StayReport, error)

	// SearchAirports returns airports matching query, best matches first.
	SearchAirports(ctx context.Context, query string, limit int) ([]domain.Airport, error)

	// GetAirport returns one airport by IATA code.
	GetAirport(ctx context.Context, code string) (*domain.Airport, error)

	// AirportCount returns the number of airports available for lookup.
	AirportCount() int
}

// Config contains configuration options for the use case.
type Config struct {
	CalculationTimeout time.Duration
	DefaultSearchLimit int
	MaxSearchLimit     int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CalculationTimeout: DefaultCalculationTimeout,
		DefaultSearchLimit: DefaultSearchLimit,
		MaxSearchLimit:     DefaultMaxSearchLimit,
	}
}

// Dependencies are the ports the planner orchestrates.
type Dependencies struct {
	Airports domain.AirportDirectory
	Zones    domain.ZoneResolver
	Solar    domain.SolarCalculator

	// Clock defaults to the system clock
	Clock timeutil.Clock

	// Logger defaults to a no-op logger; a request logger in ctx takes precedence
	Logger *logger.Logger
}

type stayPlanner struct {
	airports domain.AirportDirectory
	zones    domain.ZoneResolver
	solar    domain.SolarCalculator
	clock    timeutil.Clock
	log      *logger.Logger
	cfg      Config
}

// NewStayPlanner creates a StayPlannerUseCase. If config is nil, defaults are used.
func NewStayPlanner(deps Dependencies, config *Config) StayPlannerUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.CalculationTimeout > 0 {
			cfg.CalculationTimeout = config.CalculationTimeout
		}
		if config.DefaultSearchLimit > 0 {
			cfg.DefaultSearchLimit = config.DefaultSearchLimit
		}
		if config.MaxSearchLimit > 0 {
			cfg.MaxSearchLimit = config.MaxSearchLimit
		}
	}
	if cfg.DefaultSearchLimit > cfg.MaxSearchLimit {
		cfg.DefaultSearchLimit = cfg.MaxSearchLimit
	}

	clock := deps.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &stayPlanner{
		airports: deps.Airports,
		zones:    deps.Zones,
		solar:    deps.Solar,
		clock:    clock,
		log:      log,
		cfg:      cfg,
	}
}

// Summarize implements StayPlannerUseCase.Summarize.
func (uc *stayPlanner) Summarize(ctx context.Context, req domain.StayRequest) (*domain.StayReport, error) {
	start := uc.clock.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.CalculationTimeout)
	defer cancel()

	log := logger.FromContext(ctx, uc.log).WithAirport(req.AirportCode)

	airport, err := uc.airports.Lookup(ctx, req.AirportCode)
	if err != nil {
		return nil, err
	}

	zoneName, zoneSource, err := uc.resolveZone(ctx, airport, log)
	if err != nil {
		return nil, err
	}
	loc, err := timeutil.GetLocation(zoneName)
	if err != nil {
		return nil, domain.NewZoneError(airport.Coordinates.Latitude, airport.Coordinates.Longitude, err)
	}

	stay, err := domain.StayFromUTC(req.ArrivalUTC, req.DepartureUTC, loc)
	if err != nil {
		return nil, err
	}

	summary, err := domain.Summarize(stay, uc.windowSource(ctx, airport.Coordinates, loc))
	if err != nil {
		log.Error().Err(err).Str("timezone", zoneName).Msg("Stay summary failed")
		return nil, err
	}

	for _, day := range summary.Days {
		if day.SolarDataMissing {
			log.Warn().
				Err(domain.ErrMissingSolarData).
				Str("date", day.Date.String()).
				Str("timezone", zoneName).
				Msg("No sunrise or sunset, day counted as night")
		}
	}

	report := &domain.StayReport{
		Airport:          airport,
		Timezone:         zoneName,
		ArrivalLocal:     stay.Arrival(),
		DepartureLocal:   stay.Departure(),
		Summary:          summary,
		Duration:         domain.NewDurationInfo(summary.Duration),
		ArrivalCondition: arrivalCondition(stay, summary),
		Metadata: domain.ReportMetadata{
			SolarEngine:       uc.solar.Name(),
			ZoneSource:        zoneSource,
			GeneratedAt:       uc.clock.Now().UTC(),
			CalculationTimeMs: timeutil.Since(uc.clock, start).Milliseconds(),
		},
	}

	log.Info().
		Str("timezone", zoneName).
		Int("days", len(summary.Days)).
		Float64("daylight_hours", summary.TotalDaylightHours()).
		Float64("night_hours", summary.TotalNightHours()).
		Bool("arrival_daylight", report.ArrivalCondition.Daylight).
		Msg("Stay summarized")

	return report, nil
}

// resolveZone prefers the dataset's zone and falls back to coordinates.
func (uc *stayPlanner) resolveZone(ctx context.Context, airport domain.Airport, log *logger.Logger) (string, string, error) {
	if airport.Timezone != "" {
		if timeutil.IsValidZone(airport.Timezone) {
			return airport.Timezone, domain.ZoneSourceDataset, nil
		}
		log.Warn().Str("timezone", airport.Timezone).Msg("Dataset zone is not loadable, resolving from coordinates")
	}

	zone, err := uc.zones.ZoneFor(ctx, airport.Coordinates)
	if err != nil {
		return "", "", err
	}
	return zone, domain.ZoneSourceCoordinates, nil
}

// windowSource adapts the solar port to the accumulator, honouring ctx between dates.
func (uc *stayPlanner) windowSource(ctx context.Context, coords domain.Coordinates, loc *time.Location) domain.WindowSource {
	return domain.WindowSourceFunc(func(date domain.Date) (domain.DaylightWindow, error) {
		if err := ctx.Err(); err != nil {
			return domain.DaylightWindow{}, err
		}
		window, err := uc.solar.DaylightWindow(date, coords, loc)
		if err != nil {
			return domain.DaylightWindow{}, fmt.Errorf("%w (%s): %w", domain.ErrSolarDataUnavailable, uc.solar.Name(), err)
		}
		return window.In(loc), nil
	})
}

// arrivalCondition reports whether the stay starts in daylight.
// The first day of the summary is always the arrival date.
func arrivalCondition(stay domain.StayInterval, summary domain.StaySummary) domain.ArrivalCondition {
	if len(summary.Days) == 0 {
		return domain.ArrivalCondition{}
	}
	window := summary.Days[0].Window
	return domain.ArrivalCondition{
		Daylight: window.Contains(stay.Arrival()),
		Window:   window,
	}
}

// SearchAirports implements StayPlannerUseCase.SearchAirports.
func (uc *stayPlanner) SearchAirports(ctx context.Context, query string, limit int) ([]domain.Airport, error) {
	switch {
	case limit < 0:
		return nil, domain.NewValidationError("limit", "must not be negative")
	case limit == 0:
		limit = uc.cfg.DefaultSearchLimit
	case limit > uc.cfg.MaxSearchLimit:
		limit = uc.cfg.MaxSearchLimit
	}

	airports, err := uc.airports.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if airports == nil {
		airports = []domain.Airport{}
	}
	return airports, nil
}

// GetAirport implements StayPlannerUseCase.GetAirport.
func (uc *stayPlanner) GetAirport(ctx context.Context, code string) (*domain.Airport, error) {
	airport, err := uc.airports.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	return &airport, nil
}

// AirportCount implements StayPlannerUseCase.AirportCount.
func (uc *stayPlanner) AirportCount() int {
	return uc.airports.Len()
}
