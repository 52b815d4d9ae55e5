package handlers

import (
	"net/http"

	"github.com/exoatlas/exoatlas/internal/server/response"
)

// HandleSources handles GET /api/v1/sources. It lists the configured
// catalog sources in merge priority order.
func (h *Handlers) HandleSources(w http.ResponseWriter, _ *http.Request) {
	sources := h.atlas.Sources()

	response.OK(w, map[string]any{
		"sources": sources,
		"count":   len(sources),
	})
}
