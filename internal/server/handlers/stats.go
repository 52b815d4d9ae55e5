package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/exoatlas/exoatlas/internal/server/response"
)

// HandleStats handles GET /api/v1/stats. It reports server runtime and
// cache statistics.
func (h *Handlers) HandleStats(w http.ResponseWriter, _ *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	uptime := time.Since(h.startTime)

	response.OK(w, map[string]any{
		"runtime": map[string]any{
			"uptime_seconds": int64(uptime.Seconds()),
			"goroutines":     runtime.NumGoroutine(),
			"memory_mb":      memStats.Alloc / 1024 / 1024,
			"memory_sys_mb":  memStats.Sys / 1024 / 1024,
		},
		"sources": map[string]any{
			"configured": h.atlas.Sources(),
			"total":      len(h.atlas.Sources()),
		},
		"cache": h.cache.GetStats(),
	})
}
