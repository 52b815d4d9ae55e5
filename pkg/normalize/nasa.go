package normalize

import (
	"context"
	"math"

	"github.com/exoatlas/exoatlas/pkg/planets"
)

// nasaNumericColumns maps NASA Exoplanet Archive ps-table columns to
// canonical fields. Columns already in canonical units go straight through.
var nasaNumericColumns = map[string]planets.Field{
	"pl_bmasse":   planets.FieldMass,
	"pl_bmassj":   planets.FieldMassJupiter,
	"pl_rade":     planets.FieldRadius,
	"pl_radj":     planets.FieldRadiusJupiter,
	"pl_dens":     planets.FieldDensity,
	"pl_eqt":      planets.FieldEquilibriumTemp,
	"pl_orbper":   planets.FieldPeriod,
	"pl_orbsmax":  planets.FieldSemiMajorAxis,
	"pl_orbeccen": planets.FieldEccentricity,
	"pl_orbincl":  planets.FieldInclination,
	"st_mass":     planets.FieldStarMass,
	"st_rad":      planets.FieldStarRadius,
	"st_teff":     planets.FieldStarTemperature,
	"st_met":      planets.FieldStarMetallicity,
	"st_age":      planets.FieldStarAge,
	"sy_dist":     planets.FieldStarDistance,
	"disc_year":   planets.FieldDiscoveryYear,
}

// nasaTextColumns maps the archive's text columns to canonical fields.
var nasaTextColumns = map[string]planets.Field{
	"pl_name":         planets.FieldName,
	"hostname":        planets.FieldStarName,
	"st_spectype":     planets.FieldSpectralType,
	"discoverymethod": planets.FieldDiscoveryMethod,
	"disc_facility":   planets.FieldDiscoveryFacility,
}

// normalizeNASA maps one ps-table row into canonical fields.
func normalizeNASA(ctx context.Context, rec *planets.ProviderRecord, payload map[string]any) {
	for column, field := range nasaNumericColumns {
		if raw, ok := payload[column]; ok {
			setNumber(ctx, rec, field, raw)
		}
	}
	for column, field := range nasaTextColumns {
		if raw, ok := payload[column]; ok {
			setText(ctx, rec, field, raw)
		}
	}

	// The archive reports stellar luminosity as log10(L/Lsun).
	if raw, ok := payload["st_lum"]; ok && raw != nil {
		logLum, ok := toFloat(raw)
		if !ok || math.IsNaN(logLum) || math.IsInf(logLum, 0) {
			dropField(ctx, rec.Source, planets.FieldStarLuminosity, raw, "not a number")
		} else {
			rec.Set(planets.FieldStarLuminosity, planets.Number(math.Pow(10, logLum)))
		}
	}
}
