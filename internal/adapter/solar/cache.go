package solar

import (
	"sync"
	"time"

	"github.com/rest-planner/layover-daylight/internal/domain"
)

// DefaultCacheSize bounds the number of memoized windows.
const DefaultCacheSize = 4096

type cacheKey struct {
	date   domain.Date
	coords domain.Coordinates
	zone   string
}

// CachedCalculator memoizes another SolarCalculator by (date, coordinates, zone).
// Errors are not cached. When the cache is full it is reset.
type CachedCalculator struct {
	next    domain.SolarCalculator
	maxSize int

	mu      sync.RWMutex
	entries map[cacheKey]domain.DaylightWindow
}

// NewCachedCalculator wraps next. A non-positive maxSize uses DefaultCacheSize.
func NewCachedCalculator(next domain.SolarCalculator, maxSize int) *CachedCalculator {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &CachedCalculator{
		next:    next,
		maxSize: maxSize,
		entries: make(map[cacheKey]domain.DaylightWindow),
	}
}

// Name returns the wrapped engine's name.
func (c *CachedCalculator) Name() string {
	return c.next.Name()
}

// DaylightWindow returns a memoized window or delegates to the wrapped calculator.
func (c *CachedCalculator) DaylightWindow(date domain.Date, coords domain.Coordinates, loc *time.Location) (domain.DaylightWindow, error) {
	if loc == nil {
		return c.next.DaylightWindow(date, coords, loc)
	}
	key := cacheKey{date: date, coords: coords, zone: loc.String()}

	c.mu.RLock()
	window, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return window.In(loc), nil
	}

	window, err := c.next.DaylightWindow(date, coords, loc)
	if err != nil {
		return domain.DaylightWindow{}, err
	}

	c.mu.Lock()
	if len(c.entries) >= c.maxSize {
		c.entries = make(map[cacheKey]domain.DaylightWindow, c.maxSize)
	}
	c.entries[key] = window
	c.mu.Unlock()

	return window, nil
}

// Len returns the number of memoized windows.
func (c *CachedCalculator) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ domain.SolarCalculator = (*CachedCalculator)(nil)
