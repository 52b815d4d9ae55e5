package exoatlas

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/exoatlas/exoatlas/internal/sources"
	"github.com/exoatlas/exoatlas/internal/summarize"
	"github.com/exoatlas/exoatlas/pkg/constants"
	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/logging"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Option is a function that configures an Atlas instance.
type Option func(*config) error

// config collects Atlas construction settings.
type config struct {
	clients       []sources.Client
	priority      []planets.SourceID
	summarizer    summarize.Summarizer
	lookupTimeout time.Duration
	httpTimeout   time.Duration
	logger        *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		lookupTimeout: constants.LookupTimeout,
		httpTimeout:   constants.DefaultHTTPTimeout,
		logger:        logging.Default(),
	}
}

func newConfig(opts ...Option) (*config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithPriority sets the source priority order used to reconcile
// conflicting fields. Earlier sources win.
func WithPriority(priority []planets.SourceID) Option {
	return func(c *config) error {
		if len(priority) == 0 {
			return errors.NewValidationError("priority", priority, "priority must not be empty")
		}
		c.priority = priority
		return nil
	}
}

// WithClients replaces the standard catalog clients, for injecting
// fakes in tests or adding custom catalogs.
func WithClients(clients ...sources.Client) Option {
	return func(c *config) error {
		if len(clients) == 0 {
			return errors.NewValidationError("clients", nil, "at least one client is required")
		}
		c.clients = clients
		return nil
	}
}

// WithTimeout bounds a full lookup across all sources.
func WithTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return errors.NewValidationError("timeout", d, "timeout must be positive")
		}
		c.lookupTimeout = d
		return nil
	}
}

// WithHTTPTimeout bounds each individual catalog request.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return errors.NewValidationError("http_timeout", d, "timeout must be positive")
		}
		c.httpTimeout = d
		return nil
	}
}

// WithLogger sets the logger used by lookups.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithSummarizer enables LLM colonization briefs on lookups that
// request them.
func WithSummarizer(s summarize.Summarizer) Option {
	return func(c *config) error {
		c.summarizer = s
		return nil
	}
}

// LookupOption configures a single lookup.
type LookupOption func(*lookupOptions)

type lookupOptions struct {
	summary bool
}

// WithSummary requests an LLM colonization brief alongside the
// profile. Ignored unless the Atlas was built with a summarizer; a
// summarizer failure degrades to a profile without a summary.
func WithSummary() LookupOption {
	return func(o *lookupOptions) { o.summary = true }
}
