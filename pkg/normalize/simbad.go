package normalize

import (
	"context"

	"github.com/exoatlas/exoatlas/pkg/planets"
)

// normalizeSIMBAD maps a SIMBAD object identification into canonical fields.
// SIMBAD resolves the host star only; it contributes no planet-level fields.
func normalizeSIMBAD(ctx context.Context, rec *planets.ProviderRecord, payload map[string]any) {
	if raw, ok := payload["main_id"]; ok {
		setText(ctx, rec, planets.FieldStarName, raw)
	}
	if raw, ok := payload["sp_type"]; ok {
		setText(ctx, rec, planets.FieldSpectralType, raw)
	}
	if raw, ok := payload["teff"]; ok {
		setNumber(ctx, rec, planets.FieldStarTemperature, raw)
	}
	if raw, ok := payload["fe_h"]; ok {
		setNumber(ctx, rec, planets.FieldStarMetallicity, raw)
	}

	// Parallax in milliarcseconds; distance in parsecs is its reciprocal.
	if raw, ok := payload["plx_value"]; ok && raw != nil {
		plx, ok := toFloat(raw)
		switch {
		case !ok:
			dropField(ctx, rec.Source, planets.FieldStarDistance, raw, "not a number")
		case plx <= 0:
			dropField(ctx, rec.Source, planets.FieldStarDistance, raw, "parallax not positive")
		default:
			rec.Set(planets.FieldStarDistance, planets.Number(1000/plx))
		}
	}
}
