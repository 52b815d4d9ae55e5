// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/exoatlas/exoatlas"
	"github.com/exoatlas/exoatlas/pkg/habitability"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ProfileToTableData converts a planet profile to a key-value table.
// Wide mode adds the secondary parameters (Jupiter-relative units,
// stellar metallicity, age, luminosity).
func ProfileToTableData(profile *exoatlas.Profile, wide bool) Data {
	rows := [][]string{
		{"Name", profile.Name},
	}

	if score := profile.Habitability; score != nil {
		rows = append(rows,
			[]string{"Category", score.Category.String()},
			[]string{"Habitability Score", FormatScore(score.TotalScore, habitability.TotalMax)},
			[]string{"Survival Chance", fmt.Sprintf("%.2f%%", score.SurvivalChance)},
		)
	}

	rows = append(rows,
		[]string{"Mass (Earth masses)", FormatValue(profile.Physical.Mass)},
		[]string{"Radius (Earth radii)", FormatValue(profile.Physical.Radius)},
		[]string{"Density (g/cm^3)", FormatValue(profile.Physical.Density)},
		[]string{"Gravity (Earth = 1)", FormatValue(profile.Physical.Gravity)},
		[]string{"Equilibrium Temp (K)", FormatValue(profile.Physical.EquilibriumTemp)},
		[]string{"Orbital Period (days)", FormatValue(profile.Orbital.Period)},
		[]string{"Semi-major Axis (AU)", FormatValue(profile.Orbital.SemiMajorAxis)},
		[]string{"Eccentricity", FormatValue(profile.Orbital.Eccentricity)},
		[]string{"Host Star", FormatText(profile.HostStar.Name)},
		[]string{"Spectral Type", FormatText(profile.HostStar.SpectralType)},
		[]string{"Star Temperature (K)", FormatValue(profile.HostStar.Temperature)},
		[]string{"Distance (pc)", FormatValue(profile.HostStar.Distance)},
		[]string{"Discovery Method", FormatText(profile.Discovery.Method)},
		[]string{"Discovery Year", FormatYear(profile.Discovery.Year)},
		[]string{"Discovery Facility", FormatText(profile.Discovery.Facility)},
	)

	if wide {
		rows = append(rows,
			[]string{"Mass (Jupiter masses)", FormatValue(profile.Physical.MassJupiter)},
			[]string{"Radius (Jupiter radii)", FormatValue(profile.Physical.RadiusJupiter)},
			[]string{"Inclination (deg)", FormatValue(profile.Orbital.Inclination)},
			[]string{"Star Mass (Solar)", FormatValue(profile.HostStar.Mass)},
			[]string{"Star Radius (Solar)", FormatValue(profile.HostStar.Radius)},
			[]string{"Luminosity (Solar)", FormatValue(profile.HostStar.Luminosity)},
			[]string{"Metallicity [Fe/H]", FormatValue(profile.HostStar.Metallicity)},
			[]string{"Star Age (Gyr)", FormatValue(profile.HostStar.Age)},
		)
	}

	rows = append(rows, []string{"Sources", FormatSources(profile.SourcesUsed)})

	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// FactorsToTableData converts a habitability assessment to a factor table,
// one row per factor in scoring order.
func FactorsToTableData(result *habitability.Result) Data {
	caser := cases.Title(language.English)

	rows := make([][]string, 0, len(habitability.Keys()))
	for _, key := range habitability.Keys() {
		factor := result.Factors[key]

		detail := factor.Detail
		if detail == "" {
			detail = "-"
		}

		rows = append(rows, []string{
			caser.String(key.String()),
			FormatScore(factor.Score, habitability.FactorMax),
			factor.Status.String(),
			detail,
		})
	}

	return Data{
		Headers: []string{"FACTOR", "SCORE", "STATUS", "DETAIL"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft,    // FACTOR
			AlignCenter,  // SCORE (centered)
			AlignDefault, // STATUS
			AlignDefault, // DETAIL
		},
	}
}

// ComparisonToTableData converts a two-planet comparison to a
// side-by-side metric table.
func ComparisonToTableData(cmp *exoatlas.Comparison) Data {
	a, b := cmp.PlanetA, cmp.PlanetB

	rows := [][]string{
		{"Habitability Score", scoreCell(a), scoreCell(b)},
		{"Survival Chance", survivalCell(a), survivalCell(b)},
		{"Category", categoryCell(a), categoryCell(b)},
		{"Mass (Earth masses)", FormatValue(a.Physical.Mass), FormatValue(b.Physical.Mass)},
		{"Radius (Earth radii)", FormatValue(a.Physical.Radius), FormatValue(b.Physical.Radius)},
		{"Equilibrium Temp (K)", FormatValue(a.Physical.EquilibriumTemp), FormatValue(b.Physical.EquilibriumTemp)},
		{"Orbital Period (days)", FormatValue(a.Orbital.Period), FormatValue(b.Orbital.Period)},
		{"Star Temperature (K)", FormatValue(a.HostStar.Temperature), FormatValue(b.HostStar.Temperature)},
		{"Distance (pc)", FormatValue(a.HostStar.Distance), FormatValue(b.HostStar.Distance)},
		{"Sources", FormatSources(a.SourcesUsed), FormatSources(b.SourcesUsed)},
	}

	return Data{
		Headers: []string{"METRIC", a.Name, b.Name},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft,
			AlignRight,
			AlignRight,
		},
	}
}

// SourcesToTableData converts the source priority order to table format.
func SourcesToTableData(ids []planets.SourceID) Data {
	rows := make([][]string, 0, len(ids))
	for i, id := range ids {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			id.String(),
			CatalogName(id),
		})
	}

	return Data{
		Headers: []string{"PRIORITY", "SOURCE", "CATALOG"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignCenter, // PRIORITY (centered)
			AlignDefault,
			AlignDefault,
		},
	}
}

// CatalogName returns the human-readable catalog name for a source.
func CatalogName(id planets.SourceID) string {
	switch id {
	case planets.SourceNASA:
		return "NASA Exoplanet Archive"
	case planets.SourceSIMBAD:
		return "SIMBAD Astronomical Database"
	case planets.SourceExoplanetEU:
		return "The Extrasolar Planets Encyclopaedia"
	default:
		return string(id)
	}
}

// FormatValue formats an optional measurement for display, "-" when absent.
func FormatValue(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatText formats an optional string for display, "-" when absent.
func FormatText(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// FormatYear formats an optional year for display, "-" when absent.
func FormatYear(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// FormatScore renders a score against its maximum, e.g. "84/100".
func FormatScore(score, maximum int) string {
	return fmt.Sprintf("%d/%d", score, maximum)
}

// FormatSources renders the contributing sources as a comma-separated list.
func FormatSources(ids []planets.SourceID) string {
	if len(ids) == 0 {
		return "-"
	}

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return strings.Join(names, ", ")
}

func scoreCell(p *exoatlas.Profile) string {
	if p.Habitability == nil {
		return "-"
	}
	return FormatScore(p.Habitability.TotalScore, habitability.TotalMax)
}

func survivalCell(p *exoatlas.Profile) string {
	if p.Habitability == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", p.Habitability.SurvivalChance)
}

func categoryCell(p *exoatlas.Profile) string {
	if p.Habitability == nil {
		return "-"
	}
	return p.Habitability.Category.String()
}
