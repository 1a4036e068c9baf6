package domain

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

import (
	"context"
	"time"
)

// AirportDirectory is a read-only lookup over the airport reference table.
type AirportDirectory interface {
	// Lookup returns the airport with the given IATA code or ErrAirportNotFound.
	Lookup(ctx context.Context, code string) (Airport, error)

	// Search returns airports whose code, municipality or name contains query.
	Search(ctx context.Context, query string, limit int) ([]Airport, error)

	// Len returns the number of airports in the table.
	Len() int
}

// ZoneResolver maps coordinates to an IANA zone name.
type ZoneResolver interface {
	// ZoneFor returns the zone name or an error matching ErrUnresolvableZone.
	ZoneFor(ctx context.Context, coords Coordinates) (string, error)
}

// SolarCalculator computes sunrise and sunset for a date at a location.
type SolarCalculator interface {
	// Name identifies the calculation engine.
	Name() string

	// DaylightWindow returns the events for date, expressed in loc.
	// Events that do not occur are left as zero times.
	DaylightWindow(date Date, coords Coordinates, loc *time.Location) (DaylightWindow, error)
}
