package airport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rest-planner/layover-daylight/internal/domain"
)

// OurAirports column names. Only the code, name and a coordinate source are required.
const (
	colIATA         = "iata_code"
	colIdent        = "ident"
	colName         = "name"
	colMunicipality = "municipality"
	colCountry      = "iso_country"
	colLatitude     = "latitude_deg"
	colLongitude    = "longitude_deg"
	colCoordinates  = "coordinates"
	colTimezone     = "timezone"
)

// ParseCSV reads an OurAirports-style CSV export. Rows without an IATA code are
// skipped; malformed coordinates fail the whole load with the row number.
func ParseCSV(r io.Reader) ([]domain.Airport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("airport CSV is empty")
		}
		return nil, fmt.Errorf("failed to read airport CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{colIATA, colName} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("airport CSV is missing column %q", required)
		}
	}
	_, hasLat := cols[colLatitude]
	_, hasLon := cols[colLongitude]
	_, hasPair := cols[colCoordinates]
	if !(hasLat && hasLon) && !hasPair {
		return nil, fmt.Errorf("airport CSV needs %q and %q or %q columns", colLatitude, colLongitude, colCoordinates)
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var airports []domain.Airport
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("airport CSV row %d: %w", row, err)
		}

		code := domain.NormalizeAirportCode(field(record, colIATA))
		if code == "" {
			continue
		}

		coords, err := parseRowCoordinates(
			field(record, colLatitude), field(record, colLongitude), field(record, colCoordinates))
		if err != nil {
			return nil, fmt.Errorf("airport CSV row %d (%s): %w", row, code, err)
		}

		airports = append(airports, domain.Airport{
			Code:         code,
			Ident:        field(record, colIdent),
			Name:         field(record, colName),
			Municipality: field(record, colMunicipality),
			Country:      strings.ToUpper(field(record, colCountry)),
			Coordinates:  coords,
			Timezone:     field(record, colTimezone),
		})
	}

	if len(airports) == 0 {
		return nil, fmt.Errorf("airport CSV has no rows with an IATA code")
	}
	return airports, nil
}

// parseRowCoordinates prefers latitude_deg/longitude_deg and falls back to "lat, lon".
func parseRowCoordinates(lat, lon, pair string) (domain.Coordinates, error) {
	if lat == "" && lon == "" && pair != "" {
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return domain.Coordinates{}, fmt.Errorf("malformed coordinates %q", pair)
		}
		lat, lon = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("malformed latitude %q", lat)
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("malformed longitude %q", lon)
	}

	coords := domain.Coordinates{Latitude: latitude, Longitude: longitude}
	if err := coords.Validate(); err != nil {
		return domain.Coordinates{}, err
	}
	return coords, nil
}
