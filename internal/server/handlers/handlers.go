// Package handlers provides HTTP request handlers for the ExoAtlas API.
package handlers

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/exoatlas/exoatlas"
	"github.com/exoatlas/exoatlas/internal/server/cache"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	atlas     exoatlas.Atlas
	cache     *cache.Cache
	logger    *zerolog.Logger
	startTime time.Time
}

// New creates a new Handlers instance.
func New(atlas exoatlas.Atlas, cache *cache.Cache, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		atlas:     atlas,
		cache:     cache,
		logger:    logger,
		startTime: time.Now(),
	}
}
