// Package application provides the application interface for ExoAtlas commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Design Principles:
//   - Accept interfaces, return structs (Go proverb)
//   - Define interfaces where they're used, not where they're implemented
//   - Keep interfaces small and focused
//
// Usage in Commands:
//
//	import (
//	    "github.com/exoatlas/exoatlas/internal/cmd/application"
//	)
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            ctx := cmd.Context() // context.Context from cobra
//	            atlas, err := app.Atlas()
//	            if err != nil {
//	                return err
//	            }
//	            profile, err := atlas.Lookup(ctx, "Kepler-442 b")
//	            // ... use profile
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    AtlasFunc: func(opts ...exoatlas.Option) (exoatlas.Atlas, error) {
//	        return testAtlas, nil
//	    },
//	}
//	cmd := NewCommand(mock)
//	// ... test command behavior
package application

import (
	"github.com/rs/zerolog"

	"github.com/exoatlas/exoatlas"
)

// Application provides the application interface that commands need.
// The App struct from cmd/exoatlas/app automatically implements this interface,
// providing dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Atlas returns the atlas client with optional configuration.
	// When called without options, returns the default cached instance (lazy-initialized, thread-safe).
	// When called with options, creates a new instance with custom configuration (no caching).
	//
	// Examples:
	//   atlas, err := app.Atlas()                   // default instance (cached)
	//   atlas, err := app.Atlas(opt1, opt2)         // custom instance (new)
	Atlas(opts ...exoatlas.Option) (exoatlas.Atlas, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
