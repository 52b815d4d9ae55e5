package handlers

import (
	"net/http"

	"github.com/exoatlas/exoatlas/internal/server/response"
)

// HandleHealth handles GET /api/v1/health. It is the liveness probe and
// never touches the upstream catalogs.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "exoatlas-api",
		"version": "v1",
	})
}

// HandleReady handles GET /api/v1/ready. The server is ready when the
// atlas has at least one catalog source configured.
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	sources := h.atlas.Sources()
	if len(sources) == 0 {
		response.ServiceUnavailable(w, "No catalog sources configured")
		return
	}

	response.OK(w, map[string]any{
		"status":  "ready",
		"sources": len(sources),
		"cache": map[string]any{
			"items": h.cache.ItemCount(),
		},
	})
}
