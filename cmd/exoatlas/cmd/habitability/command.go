// Package habitability provides the habitability assessment command for the ExoAtlas CLI.
package habitability

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exoatlas/exoatlas/internal/cmd/application"
	"github.com/exoatlas/exoatlas/internal/cmd/output"
	"github.com/exoatlas/exoatlas/internal/cmd/table"
	"github.com/exoatlas/exoatlas/pkg/errors"
	pkghab "github.com/exoatlas/exoatlas/pkg/habitability"
)

// NewCommand creates the habitability command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "habitability <planet-name>",
		GroupID: "core",
		Aliases: []string{"hab", "score"},
		Short:   "Score a planet's habitability",
		Long: `Habitability looks up a planet and scores it across five factors:
temperature, size, stellar environment, orbit, and atmosphere potential.

Each factor contributes up to 20 points toward a 100-point total. A
factor that cannot be judged from the available data scores zero and
is reported as Unknown rather than guessed.`,
		Example: `  exoatlas habitability Kepler-442b        # Factor breakdown
  exoatlas habitability TRAPPIST-1 e       # Names with spaces work unquoted
  exoatlas habitability Kepler-442b -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return runHabitability(cmd, app, name)
		},
	}
}

// runHabitability scores the planet and formats the result.
func runHabitability(cmd *cobra.Command, app application.Application, name string) error {
	atlas, err := app.Atlas()
	if err != nil {
		return err
	}

	result, err := atlas.Habitability(cmd.Context(), name)
	if err != nil {
		// Suppress usage display for not found errors
		if errors.IsNotFound(err) {
			cmd.SilenceUsage = true
		}
		return err
	}

	format := output.DetectFormat(app.OutputFormat())

	// For table output, show the factor breakdown with the verdict line
	if format == output.FormatTable || format == output.FormatWide {
		printAssessment(name, result)
		return nil
	}

	// For structured output, return the assessment
	return output.FormatHabitability(result, format)
}

// printAssessment prints the factor breakdown using table format.
func printAssessment(name string, result *pkghab.Result) {
	formatter := output.NewFormatter(output.FormatTable)

	fmt.Printf("Habitability: %s\n\n", name)

	_ = formatter.Format(os.Stdout, table.FactorsToTableData(result))
	fmt.Printf("Total: %s  Survival chance: %.2f%%  Category: %s\n",
		table.FormatScore(result.TotalScore, pkghab.TotalMax),
		result.SurvivalChance, result.Category)
}
