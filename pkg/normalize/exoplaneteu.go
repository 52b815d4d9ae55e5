package normalize

import (
	"context"

	"github.com/exoatlas/exoatlas/pkg/planets"
)

// euNumericColumns maps Exoplanet.eu catalog columns that need no unit
// conversion. Mass and radius are handled separately: the catalog reports
// them Jupiter-relative.
var euNumericColumns = map[string]planets.Field{
	"orbital_period":   planets.FieldPeriod,
	"semi_major_axis":  planets.FieldSemiMajorAxis,
	"eccentricity":     planets.FieldEccentricity,
	"inclination":      planets.FieldInclination,
	"star_mass":        planets.FieldStarMass,
	"star_radius":      planets.FieldStarRadius,
	"star_teff":        planets.FieldStarTemperature,
	"star_metallicity": planets.FieldStarMetallicity,
	"star_age":         planets.FieldStarAge,
	"star_distance":    planets.FieldStarDistance,
	"discovered":       planets.FieldDiscoveryYear,
}

// euTextColumns maps the catalog's text columns to canonical fields.
var euTextColumns = map[string]planets.Field{
	"name":           planets.FieldName,
	"star_name":      planets.FieldStarName,
	"star_sp_type":   planets.FieldSpectralType,
	"detection_type": planets.FieldDiscoveryMethod,
}

// normalizeExoplanetEU maps one Exoplanet.eu catalog entry into canonical
// fields, converting Jupiter-relative mass and radius to Earth units.
func normalizeExoplanetEU(ctx context.Context, rec *planets.ProviderRecord, payload map[string]any) {
	for column, field := range euNumericColumns {
		if raw, ok := payload[column]; ok {
			setNumber(ctx, rec, field, raw)
		}
	}
	for column, field := range euTextColumns {
		if raw, ok := payload[column]; ok {
			setText(ctx, rec, field, raw)
		}
	}

	// Jupiter-relative planet parameters. Keep the Jupiter figure and derive
	// the Earth-relative one.
	if raw, ok := payload["mass"]; ok {
		setNumber(ctx, rec, planets.FieldMassJupiter, raw)
		if mj, ok := rec.Get(planets.FieldMassJupiter); ok {
			if f, ok := mj.Float(); ok {
				rec.Set(planets.FieldMass, planets.Number(f*planets.EarthMassesPerJupiter))
			}
		}
	}
	if raw, ok := payload["radius"]; ok {
		setNumber(ctx, rec, planets.FieldRadiusJupiter, raw)
		if rj, ok := rec.Get(planets.FieldRadiusJupiter); ok {
			if f, ok := rj.Float(); ok {
				rec.Set(planets.FieldRadius, planets.Number(f*planets.EarthRadiiPerJupiter))
			}
		}
	}

	// Measured equilibrium temperature wins over the calculated one.
	if raw, ok := payload["temp_measured"]; ok {
		setNumber(ctx, rec, planets.FieldEquilibriumTemp, raw)
	}
	if _, ok := rec.Get(planets.FieldEquilibriumTemp); !ok {
		if raw, ok := payload["temp_calculated"]; ok {
			setNumber(ctx, rec, planets.FieldEquilibriumTemp, raw)
		}
	}
}
