// Package airport provides the in-memory airport directory and its loaders.
package airport

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rest-planner/layover-daylight/internal/domain"
)

// MinQueryLength is the shortest accepted search query.
const MinQueryLength = 2

// Directory is an immutable airport table indexed by IATA code.
// It is built once and safe for concurrent reads.
type Directory struct {
	byCode     map[string]domain.Airport
	ordered    []domain.Airport
	duplicates int
}

// NewDirectory indexes airports by normalized code. The first row for a code wins.
func NewDirectory(airports []domain.Airport) (*Directory, error) {
	d := &Directory{
		byCode:  make(map[string]domain.Airport, len(airports)),
		ordered: make([]domain.Airport, 0, len(airports)),
	}

	for i, a := range airports {
		a.Code = domain.NormalizeAirportCode(a.Code)
		if !domain.IsValidAirportCode(a.Code) {
			return nil, fmt.Errorf("airport %d: invalid IATA code %q", i+1, a.Code)
		}
		if err := a.Coordinates.Validate(); err != nil {
			return nil, fmt.Errorf("airport %s: %w", a.Code, err)
		}
		if _, exists := d.byCode[a.Code]; exists {
			d.duplicates++
			continue
		}
		d.byCode[a.Code] = a
		d.ordered = append(d.ordered, a)
	}

	sort.Slice(d.ordered, func(i, j int) bool {
		return d.ordered[i].Code < d.ordered[j].Code
	})

	return d, nil
}

// Lookup returns the airport for code (case-insensitive).
func (d *Directory) Lookup(ctx context.Context, code string) (domain.Airport, error) {
	if err := ctx.Err(); err != nil {
		return domain.Airport{}, err
	}

	code = domain.NormalizeAirportCode(code)
	if !domain.IsValidAirportCode(code) {
		return domain.Airport{}, domain.NewValidationError("code", fmt.Sprintf("must be a 3-letter IATA code, got %q", code))
	}

	a, ok := d.byCode[code]
	if !ok {
		return domain.Airport{}, fmt.Errorf("%w: %s", domain.ErrAirportNotFound, code)
	}
	return a, nil
}

// match ranks, best first.
const (
	rankCode = iota
	rankCodePrefix
	rankMunicipalityPrefix
	rankNamePrefix
	rankContains
	rankName
	noMatch
)

// Search returns airports whose code, municipality or name contains query,
// case-insensitively. Exact code matches come first, then prefixes, then substrings;
// ties are ordered by code. A non-positive limit returns every match.
func (d *Directory) Search(ctx context.Context, query string, limit int) ([]domain.Airport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < MinQueryLength {
		return nil, domain.NewValidationError("q", fmt.Sprintf("must be at least %d characters", MinQueryLength))
	}

	type hit struct {
		rank    int
		airport domain.Airport
	}
	var hits []hit
	for _, a := range d.ordered {
		if r := rankOf(a, q); r != noMatch {
			hits = append(hits, hit{rank: r, airport: a})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].rank < hits[j].rank
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]domain.Airport, len(hits))
	for i, h := range hits {
		out[i] = h.airport
	}
	return out, nil
}

func rankOf(a domain.Airport, q string) int {
	code := strings.ToLower(a.Code)
	municipality := strings.ToLower(a.Municipality)
	name := strings.ToLower(a.Name)

	switch {
	case code == q:
		return rankCode
	case strings.HasPrefix(code, q):
		return rankCodePrefix
	case municipality != "" && strings.HasPrefix(municipality, q):
		return rankMunicipalityPrefix
	case strings.HasPrefix(name, q):
		return rankNamePrefix
	case strings.Contains(code, q) || strings.Contains(municipality, q):
		return rankContains
	case strings.Contains(name, q):
		return rankName
	default:
		return noMatch
	}
}

// Len returns the number of airports in the directory.
func (d *Directory) Len() int {
	return len(d.ordered)
}

// Duplicates returns how many rows were dropped because their code was already indexed.
func (d *Directory) Duplicates() int {
	return d.duplicates
}

var _ domain.AirportDirectory = (*Directory)(nil)
