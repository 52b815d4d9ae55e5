package handlers

import (
	"net/http"
	"strings"

	"github.com/exoatlas/exoatlas/internal/server/cache"
	"github.com/exoatlas/exoatlas/internal/server/response"
)

// HandleCompare handles GET /api/v1/compare?a={name}&b={name}. It looks up
// both planets and returns their profiles with a habitability verdict.
func (h *Handlers) HandleCompare(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	nameA := strings.TrimSpace(query.Get("a"))
	nameB := strings.TrimSpace(query.Get("b"))

	if nameA == "" || nameB == "" {
		response.BadRequest(w, "Two planet names are required",
			"Provide both planets as query parameters, e.g. /compare?a=Kepler-442 b&b=TRAPPIST-1 e")
		return
	}

	// Check cache
	cacheKey := cache.Key("compare", nameA, nameB)
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	comparison, err := h.atlas.Compare(r.Context(), nameA, nameB)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	// Cache result
	h.cache.Set(cacheKey, comparison)

	response.OK(w, comparison)
}
