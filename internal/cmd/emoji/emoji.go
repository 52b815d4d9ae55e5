// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output provide a consistent visual language across commands.
// These symbols are used for status indicators, alerts, and user feedback in terminal output.
const (
	// Success represents successful completion of an operation.
	// Used for: completed lookups, clean shutdowns, passing checks.
	Success = "✓"

	// Error represents failures or missing required configuration.
	// Used for: failed lookups, unreachable catalogs, missing API keys.
	Error = "✗"

	// Stop represents critical stops, shutdowns, or blocking conditions.
	// Used for: graceful shutdowns, stop signals, blocking errors.
	Stop = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: partial catalog coverage, unavailable summary backends.
	Warning = "!"

	// Unknown represents unknown or indeterminate states.
	// Used for: factors that cannot be scored from the available data.
	Unknown = "?"

	// Info represents informational messages.
	// Used for: general information, tips, context.
	Info = "i"
)
