// Package catalog loads the static feature database and answers exact
// point lookups against it.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/inovacc/routeguided/internal/model"
)

// ErrDataLoad indicates the feature database could not be read or parsed
var ErrDataLoad = errors.New("feature database load failed")

// Catalog is an immutable, in-memory list of named features. It is
// read-only after Load, so lookups are safe under arbitrary concurrency.
type Catalog struct {
	features []model.Feature
}

// Load reads a JSON feature database from path. The file must contain an
// array of {"location": {"latitude", "longitude"}, "name"} records.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}

	var features []model.Feature
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}

	return &Catalog{features: features}, nil
}

// New builds a catalog directly from a feature list. Intended for tests
// and callers that already hold parsed records.
func New(features []model.Feature) *Catalog {
	return &Catalog{features: features}
}

// Lookup returns the name of the first feature whose location exactly
// equals p, or an empty string when no feature matches. Matching is exact
// integer equality; with duplicate coordinates the first listed entry wins.
func (c *Catalog) Lookup(p model.Point) string {
	for _, f := range c.features {
		if f.Location == p {
			return f.Name
		}
	}

	return ""
}

// Features returns the loaded feature list in database order. Callers
// must not mutate the returned slice.
func (c *Catalog) Features() []model.Feature {
	return c.features
}

// Len returns the number of loaded features.
func (c *Catalog) Len() int {
	return len(c.features)
}
