package geo

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when a country is not in the reference table.
var ErrNotFound = errors.New("country not found")

// Country is one row of the worldly_countries reference table: ISO codes,
// display name, and the representative centroid the globe places hexes at.
type Country struct {
	Alpha2 string  `json:"iso_alpha_2"`
	Alpha3 string  `json:"iso_alpha_3"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// Repository defines the contract for the country reference store.
type Repository interface {
	ListCountries(ctx context.Context) ([]Country, error)
}

// Index resolves the country identity of an item no matter which of the
// three identity fields its source happened to populate. The historical
// schema relied on each source "happening" to fill a particular column
// (alpha-2 from music, alpha-3 from books and films); the index makes the
// resolution explicit so mixed-key rows land in one bucket.
type Index struct {
	byAlpha2 map[string]Country
	byAlpha3 map[string]Country
	byName   map[string]Country
}

// NewIndex builds lookup maps over the reference countries. Codes are
// matched case-insensitively, names by exact (case-insensitive) string.
func NewIndex(countries []Country) *Index {
	ix := &Index{
		byAlpha2: make(map[string]Country, len(countries)),
		byAlpha3: make(map[string]Country, len(countries)),
		byName:   make(map[string]Country, len(countries)),
	}
	for _, c := range countries {
		if c.Alpha2 != "" {
			ix.byAlpha2[strings.ToUpper(c.Alpha2)] = c
		}
		if c.Alpha3 != "" {
			ix.byAlpha3[strings.ToUpper(c.Alpha3)] = c
		}
		if c.Name != "" {
			ix.byName[strings.ToLower(c.Name)] = c
		}
	}
	return ix
}

// Resolve maps the identity fields of one item to a reference country,
// preferring alpha-2, then alpha-3, then the exact name.
func (ix *Index) Resolve(alpha2, alpha3, name string) (Country, bool) {
	if alpha2 != "" {
		if c, ok := ix.byAlpha2[strings.ToUpper(alpha2)]; ok {
			return c, true
		}
	}
	if alpha3 != "" {
		if c, ok := ix.byAlpha3[strings.ToUpper(alpha3)]; ok {
			return c, true
		}
	}
	if name != "" {
		if c, ok := ix.byName[strings.ToLower(name)]; ok {
			return c, true
		}
	}
	return Country{}, false
}
