package geo

// HexPoint is the globe's hex-bin input shape:
// [{"lat": <float>, "lng": <float>, "value": <number>}, ...]
type HexPoint struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Value float64 `json:"value"`
}

// HexPoints projects aggregate points onto country centroids. Points whose
// code has no centroid in the reference table are skipped; geographic
// placement is strictly the reference table's business.
func (ix *Index) HexPoints(points []Point) []HexPoint {
	hexes := make([]HexPoint, 0, len(points))
	for _, p := range points {
		c, ok := ix.Resolve(p.CountryCode, p.CountryCode, p.CountryName)
		if !ok {
			continue
		}
		hexes = append(hexes, HexPoint{Lat: c.Lat, Lng: c.Lng, Value: p.Value})
	}
	return hexes
}
