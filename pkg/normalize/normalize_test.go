package normalize_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/agentstation/utc"

	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/logging"
	"github.com/exoatlas/exoatlas/pkg/normalize"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

func mustNormalize(t *testing.T, source planets.SourceID, payload map[string]any) *planets.ProviderRecord {
	t.Helper()
	rec, err := normalize.Normalize(context.Background(), source, payload, utc.Now())
	if err != nil {
		t.Fatalf("Normalize(%s) returned error: %v", source, err)
	}
	return rec
}

func wantNumber(t *testing.T, rec *planets.ProviderRecord, field planets.Field, want float64) {
	t.Helper()
	v, ok := rec.Get(field)
	if !ok {
		t.Errorf("field %s missing, want %v", field, want)
		return
	}
	f, ok := v.Float()
	if !ok {
		t.Errorf("field %s is not numeric", field)
		return
	}
	if math.Abs(f-want) > 1e-9 {
		t.Errorf("field %s = %v, want %v", field, f, want)
	}
}

func wantText(t *testing.T, rec *planets.ProviderRecord, field planets.Field, want string) {
	t.Helper()
	v, ok := rec.Get(field)
	if !ok {
		t.Errorf("field %s missing, want %q", field, want)
		return
	}
	s, ok := v.Str()
	if !ok {
		t.Errorf("field %s is not text", field)
		return
	}
	if s != want {
		t.Errorf("field %s = %q, want %q", field, s, want)
	}
}

func wantMissing(t *testing.T, rec *planets.ProviderRecord, field planets.Field) {
	t.Helper()
	if v, ok := rec.Get(field); ok {
		t.Errorf("field %s = %s, want missing", field, v)
	}
}

func TestNormalizeNASA(t *testing.T) {
	rec := mustNormalize(t, planets.SourceNASA, map[string]any{
		"pl_name":         "Kepler-442 b",
		"hostname":        "Kepler-442",
		"pl_bmasse":       2.36,
		"pl_bmassj":       0.00743,
		"pl_rade":         1.34,
		"pl_radj":         0.12,
		"pl_eqt":          233.0,
		"pl_orbper":       112.3053,
		"pl_orbsmax":      0.409,
		"pl_orbeccen":     0.04,
		"pl_orbincl":      89.94,
		"st_mass":         0.61,
		"st_rad":          0.6,
		"st_teff":         4402.0,
		"st_lum":          -1.0,
		"st_met":          -0.37,
		"st_age":          2.9,
		"sy_dist":         342.5,
		"st_spectype":     "K5V",
		"discoverymethod": "Transit",
		"disc_year":       2015,
		"disc_facility":   "Kepler",
	})

	wantText(t, rec, planets.FieldName, "Kepler-442 b")
	wantText(t, rec, planets.FieldStarName, "Kepler-442")
	wantNumber(t, rec, planets.FieldMass, 2.36)
	wantNumber(t, rec, planets.FieldMassJupiter, 0.00743)
	wantNumber(t, rec, planets.FieldRadius, 1.34)
	wantNumber(t, rec, planets.FieldEquilibriumTemp, 233)
	wantNumber(t, rec, planets.FieldPeriod, 112.3053)
	wantNumber(t, rec, planets.FieldEccentricity, 0.04)
	wantNumber(t, rec, planets.FieldStarMetallicity, -0.37)
	wantNumber(t, rec, planets.FieldStarDistance, 342.5)
	wantText(t, rec, planets.FieldSpectralType, "K5V")
	wantText(t, rec, planets.FieldDiscoveryMethod, "Transit")
	wantNumber(t, rec, planets.FieldDiscoveryYear, 2015)
	wantText(t, rec, planets.FieldDiscoveryFacility, "Kepler")

	// st_lum arrives as log10(L/Lsun).
	wantNumber(t, rec, planets.FieldStarLuminosity, 0.1)
}

func TestNormalizeMalformedFields(t *testing.T) {
	capture := logging.CaptureLoggingForTest(t)

	rec := mustNormalize(t, planets.SourceNASA, map[string]any{
		"pl_name":     "Kepler-442 b",
		"pl_bmasse":   "n/a",   // not a number
		"pl_rade":     -1.34,   // negative radius
		"pl_orbeccen": 1.2,     // outside [0, 1)
		"pl_orbper":   0.0,     // not positive
		"st_teff":     nil,     // null column
		"pl_eqt":      "233.0", // numeric string is fine
		"disc_year":   12,      // implausible year
	})

	wantText(t, rec, planets.FieldName, "Kepler-442 b")
	wantMissing(t, rec, planets.FieldMass)
	wantMissing(t, rec, planets.FieldRadius)
	wantMissing(t, rec, planets.FieldEccentricity)
	wantMissing(t, rec, planets.FieldPeriod)
	wantMissing(t, rec, planets.FieldStarTemperature)
	wantMissing(t, rec, planets.FieldDiscoveryYear)
	wantNumber(t, rec, planets.FieldEquilibriumTemp, 233)

	// Every drop is logged with the field path.
	capture.AssertContains(t, "dropping malformed field")
	capture.AssertContains(t, "physical.mass")
	capture.AssertContains(t, "orbital.eccentricity")
}

func TestNormalizeCoercion(t *testing.T) {
	rec := mustNormalize(t, planets.SourceNASA, map[string]any{
		"pl_bmasse": json.Number("5.2"),
		"pl_rade":   2,
		"pl_orbper": " 365.25 ",
		"st_mass":   float32(1.0),
	})

	wantNumber(t, rec, planets.FieldMass, 5.2)
	wantNumber(t, rec, planets.FieldRadius, 2)
	wantNumber(t, rec, planets.FieldPeriod, 365.25)
	wantNumber(t, rec, planets.FieldStarMass, 1)
}

func TestNormalizeExoplanetEU(t *testing.T) {
	t.Run("jupiter units converted", func(t *testing.T) {
		rec := mustNormalize(t, planets.SourceExoplanetEU, map[string]any{
			"name":            "HD 209458 b",
			"mass":            0.69,
			"radius":          1.38,
			"orbital_period":  3.52474859,
			"semi_major_axis": 0.04707,
			"star_name":       "HD 209458",
			"star_teff":       6065.0,
			"detection_type":  "Primary Transit",
			"discovered":      1999,
		})

		wantText(t, rec, planets.FieldName, "HD 209458 b")
		wantNumber(t, rec, planets.FieldMassJupiter, 0.69)
		wantNumber(t, rec, planets.FieldMass, 0.69*planets.EarthMassesPerJupiter)
		wantNumber(t, rec, planets.FieldRadiusJupiter, 1.38)
		wantNumber(t, rec, planets.FieldRadius, 1.38*planets.EarthRadiiPerJupiter)
		wantText(t, rec, planets.FieldDiscoveryMethod, "Primary Transit")
		wantNumber(t, rec, planets.FieldDiscoveryYear, 1999)
	})

	t.Run("measured temperature preferred", func(t *testing.T) {
		rec := mustNormalize(t, planets.SourceExoplanetEU, map[string]any{
			"temp_calculated": 1400.0,
			"temp_measured":   1130.0,
		})
		wantNumber(t, rec, planets.FieldEquilibriumTemp, 1130)
	})

	t.Run("calculated temperature as fallback", func(t *testing.T) {
		rec := mustNormalize(t, planets.SourceExoplanetEU, map[string]any{
			"temp_calculated": 1400.0,
		})
		wantNumber(t, rec, planets.FieldEquilibriumTemp, 1400)
	})

	t.Run("malformed jupiter mass leaves both missing", func(t *testing.T) {
		rec := mustNormalize(t, planets.SourceExoplanetEU, map[string]any{
			"mass": "unknown",
		})
		wantMissing(t, rec, planets.FieldMassJupiter)
		wantMissing(t, rec, planets.FieldMass)
	})
}

func TestNormalizeSIMBAD(t *testing.T) {
	t.Run("host star resolution", func(t *testing.T) {
		rec := mustNormalize(t, planets.SourceSIMBAD, map[string]any{
			"main_id":   "TRAPPIST-1",
			"sp_type":   "M8V",
			"plx_value": 80.4512,
			"teff":      2566.0,
			"fe_h":      0.04,
		})

		wantText(t, rec, planets.FieldStarName, "TRAPPIST-1")
		wantText(t, rec, planets.FieldSpectralType, "M8V")
		wantNumber(t, rec, planets.FieldStarDistance, 1000/80.4512)
		wantNumber(t, rec, planets.FieldStarTemperature, 2566)
		wantNumber(t, rec, planets.FieldStarMetallicity, 0.04)

		// SIMBAD never contributes planet-level fields.
		wantMissing(t, rec, planets.FieldMass)
		wantMissing(t, rec, planets.FieldPeriod)
	})

	t.Run("non-positive parallax dropped", func(t *testing.T) {
		rec := mustNormalize(t, planets.SourceSIMBAD, map[string]any{
			"main_id":   "Fake Star",
			"plx_value": -2.0,
		})
		wantText(t, rec, planets.FieldStarName, "Fake Star")
		wantMissing(t, rec, planets.FieldStarDistance)
	})
}

func TestNormalizeEmptyPayload(t *testing.T) {
	for _, src := range planets.SourceIDs() {
		rec, err := normalize.Normalize(context.Background(), src, nil, utc.Now())
		if err != nil {
			t.Errorf("Normalize(%s, nil) returned error: %v", src, err)
			continue
		}
		if !rec.Empty() {
			t.Errorf("Normalize(%s, nil) produced %d fields, want empty record", src, rec.Len())
		}
	}
}

func TestNormalizeUnknownSource(t *testing.T) {
	_, err := normalize.Normalize(context.Background(), planets.SourceID("vizier"), map[string]any{"x": 1}, utc.Now())
	if err == nil {
		t.Fatal("expected error for unknown source")
	}
	if !errors.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
