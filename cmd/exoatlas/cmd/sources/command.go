// Package sources provides the catalog listing command for the ExoAtlas CLI.
package sources

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/exoatlas/exoatlas/internal/cmd/application"
	"github.com/exoatlas/exoatlas/internal/cmd/output"
)

// NewCommand creates the sources command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "sources",
		GroupID: "core",
		Aliases: []string{"catalogs"},
		Short:   "List configured catalogs in priority order",
		Long: `Sources lists the upstream catalogs the atlas queries, in the priority
order used to reconcile conflicting values. When two catalogs disagree
on a field, the higher-priority catalog wins.`,
		Example: `  exoatlas sources
  exoatlas sources -o json
  exoatlas --priority simbad,nasa sources    # Reordered for this invocation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSources(cmd, app)
		},
	}
}

// runSources lists the catalogs the atlas is configured with.
func runSources(cmd *cobra.Command, app application.Application) error {
	atlas, err := app.Atlas()
	if err != nil {
		return err
	}

	ids := atlas.Sources()
	format := output.DetectFormat(app.OutputFormat())

	if !isQuiet(cmd) && (format == output.FormatTable || format == output.FormatWide) {
		fmt.Fprintf(os.Stderr, "Found %d catalogs\n", len(ids))
	}

	return output.FormatSources(ids, format)
}

// isQuiet reports whether the persistent quiet flag is set.
// Walks up the command hierarchy to find the root's persistent flags.
func isQuiet(cmd *cobra.Command) bool {
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}
	quiet, _ := root.PersistentFlags().GetBool("quiet")
	return quiet
}
