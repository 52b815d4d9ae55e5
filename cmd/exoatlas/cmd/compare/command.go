// Package compare provides the planet comparison command for the ExoAtlas CLI.
package compare

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/exoatlas/exoatlas"
	"github.com/exoatlas/exoatlas/internal/cmd/application"
	"github.com/exoatlas/exoatlas/internal/cmd/output"
	"github.com/exoatlas/exoatlas/internal/cmd/table"
	"github.com/exoatlas/exoatlas/pkg/errors"
)

// NewCommand creates the compare command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "compare <planet-a> <planet-b>",
		GroupID: "core",
		Aliases: []string{"vs"},
		Short:   "Compare the habitability of two planets",
		Long: `Compare looks up two planets, scores both, and ranks them by total
habitability score. Ties go to the second planet.

Both lookups run concurrently; either planet missing from every
catalog fails the comparison.`,
		Example: `  exoatlas compare Kepler-442b Kepler-452b
  exoatlas compare "TRAPPIST-1 e" "Proxima Cen b"
  exoatlas compare Kepler-442b Kepler-452b -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, app, args[0], args[1])
		},
	}
}

// runCompare performs both lookups and formats the verdict.
func runCompare(cmd *cobra.Command, app application.Application, nameA, nameB string) error {
	atlas, err := app.Atlas()
	if err != nil {
		return err
	}

	cmp, err := atlas.Compare(cmd.Context(), nameA, nameB)
	if err != nil {
		// Suppress usage display for not found errors
		if errors.IsNotFound(err) {
			cmd.SilenceUsage = true
		}
		return err
	}

	format := output.DetectFormat(app.OutputFormat())

	// For table output, show the side-by-side view with the verdict line
	if format == output.FormatTable || format == output.FormatWide {
		printComparison(cmp)
		return nil
	}

	// For structured output, return the comparison
	return output.FormatComparison(cmp, format)
}

// printComparison prints the side-by-side comparison using table format.
func printComparison(cmp *exoatlas.Comparison) {
	formatter := output.NewFormatter(output.FormatTable)

	fmt.Printf("Comparing: %s vs %s\n\n", cmp.PlanetA.Name, cmp.PlanetB.Name)

	_ = formatter.Format(os.Stdout, table.ComparisonToTableData(cmp))

	fmt.Printf("Verdict: %s is more habitable (+%d points, +%.2f%% survival chance)\n",
		cmp.Verdict.MoreHabitable,
		cmp.Verdict.ScoreDifference,
		cmp.Verdict.SurvivalDifference)
}
