// Package server provides the HTTP server for the ExoAtlas API.
//
// The server wraps an exoatlas.Atlas behind a small REST surface:
//
//   - Server: core server struct with lifecycle management
//   - Config: server configuration with sensible defaults
//   - Router: route registration and middleware chain
//   - Handlers: HTTP request handlers organized by domain
//
// Usage:
//
//	cfg := server.DefaultConfig()
//	cfg.Port = 8080
//
//	srv, err := server.New(atlas, cfg, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	http.ListenAndServe(":8080", srv.Handler())
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/exoatlas/exoatlas"
	"github.com/exoatlas/exoatlas/internal/server/cache"
	"github.com/exoatlas/exoatlas/pkg/constants"
	"github.com/exoatlas/exoatlas/pkg/errors"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	atlas     exoatlas.Atlas
	cache     *cache.Cache
	logger    *zerolog.Logger
	config    Config
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(atlas exoatlas.Atlas, cfg Config, logger *zerolog.Logger) (*Server, error) {
	if atlas == nil {
		return nil, errors.NewValidationError("atlas", nil, "atlas client is required")
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	// Set defaults
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = constants.CacheTTL
	}

	logger.Debug().
		Int("sources", len(atlas.Sources())).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Creating new server instance")

	return &Server{
		atlas:     atlas,
		cache:     cache.New(cfg.CacheTTL, cfg.CacheTTL*2),
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}, nil
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Shutdown releases server resources. The HTTP listener itself is owned
// by the caller and shut down separately.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Info().
		Int("cached_items", s.cache.ItemCount()).
		Msg("Shutting down API server")

	s.cache.Clear()
	return nil
}

// Cache returns the server's cache instance.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}
