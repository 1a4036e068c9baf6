package airport

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rest-planner/layover-daylight/internal/domain"
)

//go:embed data/airports.yaml
var embeddedAirports []byte

// yamlDataset is the document shape of a YAML airport table.
type yamlDataset struct {
	Airports []domain.Airport `yaml:"airports"`
}

// ParseYAML decodes a YAML airport table. Unknown keys are rejected.
func ParseYAML(r io.Reader) ([]domain.Airport, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds yamlDataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("airport dataset is empty")
		}
		return nil, fmt.Errorf("failed to decode airport YAML: %w", err)
	}
	if len(ds.Airports) == 0 {
		return nil, fmt.Errorf("airport dataset has no airports")
	}
	return ds.Airports, nil
}

// Embedded returns the built-in airport table.
func Embedded() ([]domain.Airport, error) {
	return ParseYAML(bytes.NewReader(embeddedAirports))
}
