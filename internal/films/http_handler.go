package films

import (
	"net/http"
	"strconv"

	"worldly/internal/httpx"
)

type HTTPHandler struct {
	repo Repository
}

func NewHTTPHandler(repo Repository) *HTTPHandler {
	return &HTTPHandler{repo: repo}
}

// List handles GET /api/films
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var watched *bool
	if v := query.Get("watched"); v != "" {
		b := v == "true"
		watched = &b
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 50
	}

	films, total, err := h.repo.List(r.Context(), watched, pageSize, (page-1)*pageSize)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, films, map[string]any{
		"page":      page,
		"page_size": pageSize,
		"total":     total,
	})
}
