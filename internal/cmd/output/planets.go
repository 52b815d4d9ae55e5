package output

import (
	"os"

	"github.com/exoatlas/exoatlas"
	"github.com/exoatlas/exoatlas/internal/cmd/table"
	"github.com/exoatlas/exoatlas/pkg/habitability"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// FormatProfile handles the common pattern of formatting a planet profile
// for output. Table formats render the curated property view; structured
// formats emit the profile itself.
func FormatProfile(profile *exoatlas.Profile, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide, "":
		outputData = table.ProfileToTableData(profile, format == FormatWide)
	default:
		outputData = profile
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatHabitability handles the common pattern of formatting a habitability
// assessment for output.
func FormatHabitability(result *habitability.Result, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide, "":
		outputData = table.FactorsToTableData(result)
	default:
		outputData = result
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatComparison handles the common pattern of formatting a two-planet
// comparison for output.
func FormatComparison(cmp *exoatlas.Comparison, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide, "":
		outputData = table.ComparisonToTableData(cmp)
	default:
		outputData = cmp
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatSources handles the common pattern of formatting the source catalog
// list for output.
func FormatSources(ids []planets.SourceID, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide, "":
		outputData = table.SourcesToTableData(ids)
	default:
		outputData = ids
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatAny handles the common pattern of formatting any data type for output.
// This is useful for commands with custom data structures.
func FormatAny(data any, format Format) error {
	formatter := NewFormatter(format)
	return formatter.Format(os.Stdout, data)
}
