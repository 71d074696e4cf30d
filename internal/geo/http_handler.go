package geo

import (
	"net/http"

	"worldly/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Countries handles GET /api/countries
func (h *HTTPHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.Countries(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, countries, map[string]any{"total": len(countries)})
}

// CountryCounts handles GET /api/country_counts
func (h *HTTPHandler) CountryCounts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	finishedOnly := query.Get("finished_only") == "true"
	weight := ParseWeight(query.Get("weight"))

	points, err := h.service.CountryCounts(r.Context(), finishedOnly, weight)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, points, map[string]any{
		"total":         len(points),
		"weight":        string(weight),
		"finished_only": finishedOnly,
	})
}

// HexedPolygons handles GET /api/world_hexed_polygons
//
// The globe client expects a bare array, not the JSON envelope.
func (h *HTTPHandler) HexedPolygons(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	finishedOnly := query.Get("finished_only") == "true"
	weight := ParseWeight(query.Get("weight"))

	hexes, err := h.service.HexPoints(r.Context(), finishedOnly, weight)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONRaw(w, hexes)
}
