package geo

import (
	"sort"
	"strings"

	"worldly/internal/item"
)

// Weight selects how items are reduced into a per-country value.
type Weight string

const (
	// WeightCount counts items per country.
	WeightCount Weight = "count"
	// WeightRating sums each item's rating; items without a rating
	// contribute nothing. Ratings are domain-scaled, so mixing kinds
	// under this mode is the caller's decision.
	WeightRating Weight = "rating"
)

// ParseWeight maps a query-string value to a Weight, defaulting to count.
func ParseWeight(s string) Weight {
	if Weight(s) == WeightRating {
		return WeightRating
	}
	return WeightCount
}

// Point is one country's aggregate: a stable code (or raw name when the
// country is absent from the reference table) and a weight.
type Point struct {
	CountryCode string  `json:"country_code"`
	CountryName string  `json:"country_name,omitempty"`
	Value       float64 `json:"value"`
}

// Aggregate groups items by resolved country identity and reduces each
// group with the chosen weight. Items the index knows are keyed by their
// canonical alpha-2 code, so a row carrying only "France" and a row
// carrying FR merge into one bucket. Items unknown to the index still
// bucket under whichever identity field they carry; items carrying none
// are dropped, and the drop count is returned so callers can watch it.
func Aggregate(ix *Index, items []item.Item, w Weight) ([]Point, int) {
	type bucket struct {
		code  string
		name  string
		value float64
	}
	buckets := make(map[string]*bucket)
	order := make([]string, 0)
	dropped := 0

	for _, it := range items {
		var key, code, name string
		if c, ok := ix.Resolve(it.ISOAlpha2, it.ISOAlpha3, it.CountryName); ok {
			key, code, name = c.Alpha2, c.Alpha2, c.Name
		} else if it.ISOAlpha2 != "" {
			code = strings.ToUpper(it.ISOAlpha2)
			key, name = code, it.CountryName
		} else if it.ISOAlpha3 != "" {
			code = strings.ToUpper(it.ISOAlpha3)
			key, name = code, it.CountryName
		} else if it.CountryName != "" {
			key, code, name = strings.ToLower(it.CountryName), it.CountryName, it.CountryName
		} else {
			dropped++
			continue
		}

		b, ok := buckets[key]
		if !ok {
			b = &bucket{code: code, name: name}
			buckets[key] = b
			order = append(order, key)
		}
		switch w {
		case WeightRating:
			if it.Rating != nil {
				b.value += *it.Rating
			}
		default:
			b.value++
		}
	}

	points := make([]Point, 0, len(buckets))
	for _, key := range order {
		b := buckets[key]
		points = append(points, Point{CountryCode: b.code, CountryName: b.name, Value: b.value})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].CountryCode < points[j].CountryCode
	})
	return points, dropped
}
