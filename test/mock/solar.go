// Package mock provides test doubles for the planner's ports.
// These doubles are meant for integration testing where a fixed sun,
// injected failures or slow calculations are needed.
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/rest-planner/layover-daylight/internal/domain"
)

// Solar is a configurable implementation of domain.SolarCalculator.
// Every date gets the same local sunrise and sunset unless overridden.
type Solar struct {
	name      string
	sunrise   time.Duration
	sunset    time.Duration
	missing   map[domain.Date]bool
	failOn    map[domain.Date]error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewSolar creates a Solar with sunrise at 06:00 and sunset at 18:00 local time.
func NewSolar(name string) *Solar {
	return &Solar{
		name:    name,
		sunrise: 6 * time.Hour,
		sunset:  18 * time.Hour,
		missing: make(map[domain.Date]bool),
		failOn:  make(map[domain.Date]error),
	}
}

// WithWindow sets the local sunrise and sunset as offsets from midnight.
func (s *Solar) WithWindow(sunrise, sunset time.Duration) *Solar {
	s.sunrise = sunrise
	s.sunset = sunset
	return s
}

// WithoutEvents makes date report neither sunrise nor sunset.
func (s *Solar) WithoutEvents(date domain.Date) *Solar {
	s.missing[date] = true
	return s
}

// WithError makes date fail with err.
func (s *Solar) WithError(date domain.Date, err error) *Solar {
	s.failOn[date] = err
	return s
}

// WithDelay makes every calculation take at least d.
func (s *Solar) WithDelay(d time.Duration) *Solar {
	s.delay = d
	return s
}

// Name returns the engine name.
func (s *Solar) Name() string {
	return s.name
}

// DaylightWindow implements domain.SolarCalculator.
func (s *Solar) DaylightWindow(date domain.Date, _ domain.Coordinates, loc *time.Location) (domain.DaylightWindow, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	if err, ok := s.failOn[date]; ok {
		return domain.DaylightWindow{}, err
	}
	if s.missing[date] {
		return domain.DaylightWindow{}, nil
	}

	return domain.DaylightWindow{
		Sunrise: at(date, loc, s.sunrise),
		Sunset:  at(date, loc, s.sunset),
	}, nil
}

func at(date domain.Date, loc *time.Location, offset time.Duration) time.Time {
	h := int(offset / time.Hour)
	m := int((offset % time.Hour) / time.Minute)
	return date.At(h, m, loc)
}

// CallCount returns the number of DaylightWindow calls.
func (s *Solar) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset resets the call count to zero.
func (s *Solar) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

var _ domain.SolarCalculator = (*Solar)(nil)

// Zones is a domain.ZoneResolver returning one fixed zone.
type Zones struct {
	zone string
	err  error
}

// NewZones creates a resolver that always answers zone.
func NewZones(zone string) *Zones {
	return &Zones{zone: zone}
}

// WithError makes every resolution fail with err.
func (z *Zones) WithError(err error) *Zones {
	z.err = err
	return z
}

// ZoneFor implements domain.ZoneResolver.
func (z *Zones) ZoneFor(_ context.Context, _ domain.Coordinates) (string, error) {
	if z.err != nil {
		return "", z.err
	}
	return z.zone, nil
}

var _ domain.ZoneResolver = (*Zones)(nil)

// SampleAirports returns a small airport table for tests.
func SampleAirports() []domain.Airport {
	return []domain.Airport{
		{
			Code:         "IST",
			Ident:        "LTFM",
			Name:         "Istanbul Airport",
			Municipality: "Istanbul",
			Country:      "TR",
			Coordinates:  domain.Coordinates{Latitude: 41.2753, Longitude: 28.7519},
		},
		{
			Code:         "SAW",
			Ident:        "LTFJ",
			Name:         "Sabiha Gokcen International Airport",
			Municipality: "Istanbul",
			Country:      "TR",
			Coordinates:  domain.Coordinates{Latitude: 40.8986, Longitude: 29.3092},
		},
		{
			Code:         "TOS",
			Ident:        "ENTC",
			Name:         "Tromso Airport",
			Municipality: "Tromso",
			Country:      "NO",
			Coordinates:  domain.Coordinates{Latitude: 69.6833, Longitude: 18.9189},
			Timezone:     "Europe/Oslo",
		},
	}
}
