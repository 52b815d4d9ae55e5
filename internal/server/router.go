package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/exoatlas/exoatlas/internal/server/handlers"
	"github.com/exoatlas/exoatlas/internal/server/middleware"
	"github.com/exoatlas/exoatlas/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	// Create handlers instance
	h := handlers.New(s.atlas, s.cache, s.logger)

	// Register routes
	s.registerRoutes(mux, h)

	// Apply middleware chain
	handler := s.applyMiddleware(mux)

	return handler
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Public health endpoints (no auth required)
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/ready", h.HandleReady)

	// Planet endpoints. Planet designations contain spaces
	// ("Kepler-442 b"), which arrive percent-encoded and decode to a
	// single path segment.
	mux.HandleFunc(prefix+"/planets", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		response.BadRequest(w, "Planet name is required",
			"Request a planet as GET "+prefix+"/planets/{name}")
	})

	mux.HandleFunc(prefix+"/planets/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}

		path := r.URL.Path[len(prefix+"/planets/"):]
		parts := splitPath(path)

		if len(parts) == 0 {
			response.BadRequest(w, "Planet name is required",
				"Request a planet as GET "+prefix+"/planets/{name}")
			return
		}

		name := parts[0]

		if len(parts) == 1 {
			// GET /planets/{name}
			h.HandleGetPlanet(w, r, name)
			return
		}
		if len(parts) == 2 && parts[1] == "habitability" {
			// GET /planets/{name}/habitability
			h.HandleHabitability(w, r, name)
			return
		}

		response.NotFound(w, "Resource not found", "")
	})

	// Comparison endpoint
	mux.HandleFunc(prefix+"/compare", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		h.HandleCompare(w, r)
	})

	// Source listing endpoint
	mux.HandleFunc(prefix+"/sources", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		h.HandleSources(w, r)
	})

	// Stats endpoint
	mux.HandleFunc(prefix+"/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		h.HandleStats(w, r)
	})

	// OpenAPI specification endpoints
	mux.HandleFunc(prefix+"/openapi.json", h.HandleOpenAPIJSON)
	mux.HandleFunc(prefix+"/openapi.yaml", h.HandleOpenAPIYAML)

	// Metrics endpoint (optional)
	if s.config.MetricsEnabled {
		mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = fmt.Fprintf(w, "# ExoAtlas API Metrics\n")
			_, _ = fmt.Fprintf(w, "# TYPE exoatlas_api_info gauge\n")
			_, _ = fmt.Fprintf(w, "exoatlas_api_info{version=\"v1\"} 1\n")
		})
	}
}

// applyMiddleware wraps handler with middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	// Rate limiting (if enabled)
	if cfg.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, s.logger)
		handler = middleware.RateLimit(rateLimiter)(handler)
	}

	// Authentication (if enabled)
	if cfg.AuthEnabled {
		authConfig := middleware.DefaultAuthConfig()
		authConfig.Enabled = true
		authConfig.HeaderName = cfg.AuthHeader
		handler = middleware.Auth(authConfig, s.logger)(handler)
	}

	// CORS (if enabled)
	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Logging and recovery (always enabled)
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// splitPath splits a URL path into parts, removing empty strings.
func splitPath(path string) []string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
