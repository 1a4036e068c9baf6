// Package timezone resolves IANA zone names from coordinates.
package timezone

import (
	"context"
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"github.com/rest-planner/layover-daylight/internal/domain"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/timeutil"
)

// finder is the subset of tzf.F used by the resolver.
type finder interface {
	GetTimezoneName(lng float64, lat float64) string
}

// Resolver maps coordinates to zones with github.com/ringsaturn/tzf.
// The underlying finder is read-only and safe for concurrent use.
type Resolver struct {
	finder finder
}

var (
	defaultFinder     tzf.F
	defaultFinderErr  error
	defaultFinderOnce sync.Once
)

// NewResolver builds a resolver over tzf's default (lite) polygon set.
// The polygon data is decoded once per process.
func NewResolver() (*Resolver, error) {
	defaultFinderOnce.Do(func() {
		defaultFinder, defaultFinderErr = tzf.NewDefaultFinder()
	})
	if defaultFinderErr != nil {
		return nil, fmt.Errorf("failed to load time zone polygons: %w", defaultFinderErr)
	}
	return &Resolver{finder: defaultFinder}, nil
}

// ZoneFor returns the IANA zone containing coords.
func (r *Resolver) ZoneFor(ctx context.Context, coords domain.Coordinates) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := coords.Validate(); err != nil {
		return "", err
	}

	name := r.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", domain.NewZoneError(coords.Latitude, coords.Longitude, nil)
	}
	if _, err := timeutil.GetLocation(name); err != nil {
		return "", domain.NewZoneError(coords.Latitude, coords.Longitude, err)
	}
	return name, nil
}

var _ domain.ZoneResolver = (*Resolver)(nil)
