// Package search provides the planet lookup command for the ExoAtlas CLI.
package search

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exoatlas/exoatlas"
	"github.com/exoatlas/exoatlas/internal/cmd/application"
	"github.com/exoatlas/exoatlas/internal/cmd/emoji"
	"github.com/exoatlas/exoatlas/internal/cmd/output"
	"github.com/exoatlas/exoatlas/internal/cmd/table"
	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/habitability"
)

// NewCommand creates the search command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <planet-name>",
		GroupID: "core",
		Aliases: []string{"lookup", "planet"},
		Short:   "Look up a planet across all catalogs",
		Long: `Search queries every configured catalog for a planet, reconciles the
results into a single profile, and scores its habitability.

Catalogs are queried concurrently; a catalog that fails or has never
heard of the planet is tolerated as long as at least one catalog
responds. The profile records which catalog supplied each field.`,
		Example: `  exoatlas search Kepler-442b                  # Reconciled profile
  exoatlas search TRAPPIST-1 e                 # Names with spaces work unquoted
  exoatlas search "Proxima Cen b" --summary    # Include a generated summary
  exoatlas search Kepler-442b -o json          # Structured output`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Planet designations contain spaces, so accept them unquoted.
			name := strings.Join(args, " ")
			withSummary, _ := cmd.Flags().GetBool("summary")
			return runSearch(cmd, app, name, withSummary)
		},
	}

	cmd.Flags().Bool("summary", false,
		"Generate a natural-language summary (requires a summary backend)")

	return cmd
}

// runSearch performs the lookup and formats the profile.
func runSearch(cmd *cobra.Command, app application.Application, name string, withSummary bool) error {
	atlas, err := app.Atlas()
	if err != nil {
		return err
	}

	var opts []exoatlas.LookupOption
	if withSummary {
		opts = append(opts, exoatlas.WithSummary())
	}

	profile, err := atlas.Lookup(cmd.Context(), name, opts...)
	if err != nil {
		// Suppress usage display for not found errors
		if errors.IsNotFound(err) {
			cmd.SilenceUsage = true
		}
		return err
	}

	format := output.DetectFormat(app.OutputFormat())

	// For table output, show the detailed multi-section view
	if format == output.FormatTable || format == output.FormatWide {
		printProfileDetails(profile, format == output.FormatWide)
		return nil
	}

	// For structured output, return the profile
	return output.FormatProfile(profile, format)
}

// printProfileDetails prints the full profile using table format.
func printProfileDetails(profile *exoatlas.Profile, wide bool) {
	formatter := output.NewFormatter(output.FormatTable)

	fmt.Printf("Planet: %s\n\n", profile.Name)

	_ = formatter.Format(os.Stdout, table.ProfileToTableData(profile, wide))
	fmt.Println()

	printHabitability(profile.Habitability, formatter)
	printSummary(profile.Summary)
	printCoverage(profile)
}

func printHabitability(result *habitability.Result, formatter output.Formatter) {
	if result == nil {
		return
	}

	fmt.Println("Habitability Assessment:")
	_ = formatter.Format(os.Stdout, table.FactorsToTableData(result))
	fmt.Printf("Total: %s  Survival chance: %.2f%%  Category: %s\n\n",
		table.FormatScore(result.TotalScore, habitability.TotalMax),
		result.SurvivalChance, result.Category)

	if len(result.Recommendations) > 0 {
		fmt.Println("Recommendations:")
		for _, rec := range result.Recommendations {
			fmt.Printf("  %s %s\n", emoji.Success, rec)
		}
		fmt.Println()
	}

	if len(result.Risks) > 0 {
		fmt.Println("Risks:")
		for _, risk := range result.Risks {
			fmt.Printf("  %s %s\n", emoji.Warning, risk)
		}
		fmt.Println()
	}
}

func printSummary(summary *exoatlas.Summary) {
	if summary == nil {
		return
	}

	fmt.Printf("Summary (%s):\n%s\n\n", summary.Backend, summary.Text)
}

func printCoverage(profile *exoatlas.Profile) {
	if len(profile.MissingFields) == 0 {
		return
	}

	fields := make([]string, len(profile.MissingFields))
	for i, f := range profile.MissingFields {
		fields[i] = string(f)
	}
	fmt.Printf("%s No catalog reported: %s\n", emoji.Warning, strings.Join(fields, ", "))
}
