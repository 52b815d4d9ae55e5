package handlers

import (
	"net/http"

	"github.com/exoatlas/exoatlas"
	"github.com/exoatlas/exoatlas/internal/server/cache"
	"github.com/exoatlas/exoatlas/internal/server/response"
)

// HandleGetPlanet handles GET /api/v1/planets/{name}. It returns the merged
// planet profile with its habitability assessment. Passing ?summary=true
// additionally requests an AI-generated narrative when a summarizer is
// configured.
func (h *Handlers) HandleGetPlanet(w http.ResponseWriter, r *http.Request, name string) {
	includeSummary := wantsSummary(r)

	// Check cache
	cacheKey := cache.Key("planet", name)
	if includeSummary {
		cacheKey = cache.Key("planet", name, "summary")
	}
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	var opts []exoatlas.LookupOption
	if includeSummary {
		opts = append(opts, exoatlas.WithSummary())
	}

	profile, err := h.atlas.Lookup(r.Context(), name, opts...)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	// Cache result
	h.cache.Set(cacheKey, profile)

	response.OK(w, profile)
}

// HandleHabitability handles GET /api/v1/planets/{name}/habitability.
// It returns only the habitability assessment for the planet.
func (h *Handlers) HandleHabitability(w http.ResponseWriter, r *http.Request, name string) {
	// Check cache
	cacheKey := cache.Key("habitability", name)
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	result, err := h.atlas.Habitability(r.Context(), name)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	// Cache result
	h.cache.Set(cacheKey, result)

	response.OK(w, result)
}

// wantsSummary reports whether the request asked for a narrative summary.
func wantsSummary(r *http.Request) bool {
	switch r.URL.Query().Get("summary") {
	case "true", "1", "yes":
		return true
	}
	return false
}
