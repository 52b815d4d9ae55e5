// Package constants provides shared constants used throughout the exoatlas codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to catalog APIs
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// SourceFetchTimeout is the timeout for fetching a record from a single source
	SourceFetchTimeout = 45 * time.Second

	// LookupTimeout is the timeout for a full multi-source lookup
	LookupTimeout = 2 * time.Minute

	// SummaryTimeout is the timeout for generating an LLM summary
	SummaryTimeout = 90 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// RetryBackoff is the base backoff duration for retries
	RetryBackoff = 1 * time.Second

	// MaxRetryBackoff is the maximum backoff duration for retries
	MaxRetryBackoff = 30 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like API keys (rw-------)
	SecureFilePermissions = 0600
)

// Limit constants define various limits and capacities
const (
	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries = 3

	// MaxConcurrentSources is the maximum number of sources queried concurrently
	MaxConcurrentSources = 5

	// MaxPlanetNameLength is the maximum allowed length for planet names
	MaxPlanetNameLength = 256

	// MaxSummaryPromptLength is the maximum prompt size sent to a summarizer
	MaxSummaryPromptLength = 8192

	// DefaultPageSize is the default number of items per page for paginated results
	DefaultPageSize = 100

	// MaxPageSize is the maximum allowed page size for paginated results
	MaxPageSize = 1000
)

// Rate limiting constants
const (
	// DefaultRateLimit is the default requests per minute for the HTTP server
	DefaultRateLimit = 60

	// BurstSize is the token bucket burst size for rate limiting
	BurstSize = 10
)

// Cache constants
const (
	// CacheTTL is the default time-to-live for cached lookups
	CacheTTL = 15 * time.Minute

	// CacheCleanupInterval is how often to clean expired cache entries
	CacheCleanupInterval = 5 * time.Minute
)

// Network constants
const (
	// DialTimeout is the timeout for establishing network connections
	DialTimeout = 10 * time.Second

	// KeepAliveInterval is the interval between keep-alive probes
	KeepAliveInterval = 30 * time.Second

	// MaxIdleConnections is the maximum number of idle connections in the pool
	MaxIdleConnections = 100

	// MaxConnectionsPerHost is the maximum number of connections per host
	MaxConnectionsPerHost = 10
)

// Source endpoint constants
const (
	// NASAExoplanetArchiveURL is the TAP endpoint of the NASA Exoplanet Archive
	NASAExoplanetArchiveURL = "https://exoplanetarchive.ipac.caltech.edu/TAP/sync"

	// SIMBADBaseURL is the base URL of the SIMBAD astronomical database
	SIMBADBaseURL = "https://simbad.u-strasbg.fr/simbad"

	// ExoplanetEUBaseURL is the base URL of the Exoplanet.eu catalog API
	ExoplanetEUBaseURL = "https://exoplanet.eu/api"

	// DefaultOllamaURL is the default endpoint of a local Ollama instance
	DefaultOllamaURL = "http://localhost:11434"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatHuman is a human-readable time format
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm MST"
)

// Path constants
const (
	// DefaultConfigPath is the default path for configuration files
	DefaultConfigPath = "~/.exoatlas.yaml"
)
