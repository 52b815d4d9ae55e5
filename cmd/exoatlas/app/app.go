// Package app provides the application context and dependency management
// for the exoatlas CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/exoatlas/exoatlas"
	"github.com/exoatlas/exoatlas/internal/summarize"
	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// App represents the exoatlas application with all its dependencies.
// It provides a centralized place for configuration, logging, and
// the atlas instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Atlas instance (lazy-initialized, singleton)
	mu    sync.RWMutex
	atlas exoatlas.Atlas
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Atlas returns the atlas instance. Without options it returns the
// default instance, creating it lazily on first use; this is
// thread-safe and ensures only one default instance is created.
// With options it creates a new instance each call (no caching).
func (a *App) Atlas(opts ...exoatlas.Option) (exoatlas.Atlas, error) {
	if len(opts) > 0 {
		atlas, err := exoatlas.New(opts...)
		if err != nil {
			return nil, errors.NewConfigError("atlas", "failed to create atlas with custom options", err)
		}
		return atlas, nil
	}

	a.mu.RLock()
	if a.atlas != nil {
		atlas := a.atlas
		a.mu.RUnlock()
		return atlas, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.atlas != nil {
		return a.atlas, nil
	}

	// Create atlas instance with options from config
	configOpts, err := a.buildAtlasOptions()
	if err != nil {
		return nil, err
	}
	atlas, err := exoatlas.New(configOpts...)
	if err != nil {
		return nil, errors.NewConfigError("atlas", "failed to create atlas", err)
	}

	a.atlas = atlas
	return atlas, nil
}

// Shutdown performs graceful shutdown of the application.
// The atlas holds no background tasks; shutdown only logs the event
// so callers have a uniform lifecycle to drive.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	atlas := a.atlas
	a.mu.RUnlock()

	if atlas != nil {
		a.logger.Debug().Msg("Shutting down atlas")
	}

	return nil
}

// buildAtlasOptions constructs atlas options from the app configuration.
func (a *App) buildAtlasOptions() ([]exoatlas.Option, error) {
	opts := []exoatlas.Option{exoatlas.WithLogger(a.logger)}

	// Add catalog priority if configured
	if len(a.config.SourcePriority) > 0 {
		priority := make([]planets.SourceID, 0, len(a.config.SourcePriority))
		for _, raw := range a.config.SourcePriority {
			id, ok := planets.ParseSourceID(raw)
			if !ok {
				return nil, errors.NewValidationError("priority", raw,
					"unknown catalog (use nasa, simbad, or exoplanet_eu)")
			}
			priority = append(priority, id)
		}
		opts = append(opts, exoatlas.WithPriority(priority))
	}

	// Add timeouts if configured
	if a.config.HTTPTimeout > 0 {
		opts = append(opts, exoatlas.WithHTTPTimeout(a.config.HTTPTimeout))
	}
	if a.config.LookupTimeout > 0 {
		opts = append(opts, exoatlas.WithTimeout(a.config.LookupTimeout))
	}

	// Add summary backend if configured
	summarizer, err := a.buildSummarizer()
	if err != nil {
		return nil, err
	}
	if summarizer != nil {
		opts = append(opts, exoatlas.WithSummarizer(summarizer))
	}

	return opts, nil
}

// buildSummarizer constructs the configured summary backend, or nil when
// summaries are disabled.
func (a *App) buildSummarizer() (summarize.Summarizer, error) {
	switch strings.ToLower(a.config.SummaryBackend) {
	case "", "none":
		return nil, nil
	case "ollama":
		var opts []summarize.OllamaOption
		if a.config.OllamaURL != "" {
			opts = append(opts, summarize.WithOllamaURL(a.config.OllamaURL))
		}
		if a.config.OllamaModel != "" {
			opts = append(opts, summarize.WithOllamaModel(a.config.OllamaModel))
		}
		return summarize.NewOllama(opts...), nil
	case "gemini":
		var opts []summarize.GeminiOption
		if a.config.GeminiModel != "" {
			opts = append(opts, summarize.WithGeminiModel(a.config.GeminiModel))
		}
		return summarize.NewGemini(a.config.GeminiAPIKey, opts...)
	default:
		return nil, errors.NewValidationError("summary_backend", a.config.SummaryBackend,
			"must be one of: ollama, gemini, none")
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithAtlas sets a custom atlas instance (useful for testing).
func WithAtlas(atlas exoatlas.Atlas) Option {
	return func(a *App) error {
		a.atlas = atlas
		return nil
	}
}
