package item

import (
	"net/http"

	"worldly/internal/httpx"
)

type HTTPHandler struct {
	view *View
}

func NewHTTPHandler(view *View) *HTTPHandler {
	return &HTTPHandler{view: view}
}

// List handles GET /api/items
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	finishedOnly := query.Get("finished_only") == "true"

	items, err := h.view.Unify(r.Context(), finishedOnly)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	if kind := Kind(query.Get("kind")); kind != "" {
		filtered := items[:0:0]
		for _, it := range items {
			if it.Kind == kind {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	httpx.JSONSuccess(w, items, map[string]any{
		"total":         len(items),
		"finished_only": finishedOnly,
	})
}
