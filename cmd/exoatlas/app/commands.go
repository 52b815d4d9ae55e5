package app

import (
	"github.com/spf13/cobra"

	"github.com/exoatlas/exoatlas/cmd/exoatlas/cmd/compare"
	"github.com/exoatlas/exoatlas/cmd/exoatlas/cmd/habitability"
	"github.com/exoatlas/exoatlas/cmd/exoatlas/cmd/search"
	"github.com/exoatlas/exoatlas/cmd/exoatlas/cmd/serve"
	"github.com/exoatlas/exoatlas/cmd/exoatlas/cmd/sources"
)

// NewSearchCommand creates the search command with app dependencies.
func (a *App) NewSearchCommand() *cobra.Command {
	return search.NewCommand(a)
}

// NewHabitabilityCommand creates the habitability command with app dependencies.
func (a *App) NewHabitabilityCommand() *cobra.Command {
	return habitability.NewCommand(a)
}

// NewCompareCommand creates the compare command with app dependencies.
func (a *App) NewCompareCommand() *cobra.Command {
	return compare.NewCommand(a)
}

// NewSourcesCommand creates the sources command with app dependencies.
func (a *App) NewSourcesCommand() *cobra.Command {
	return sources.NewCommand(a)
}

// NewServeCommand creates the serve command with app dependencies.
func (a *App) NewServeCommand() *cobra.Command {
	return serve.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("exoatlas %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
