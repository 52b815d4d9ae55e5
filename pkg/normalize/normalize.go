// Package normalize translates raw catalog payloads into canonical provider
// records. Each source has its own mapping table and unit conversions; a
// malformed field is dropped and logged, never an error. The worst a bad
// payload can produce is an empty record.
package normalize

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/utc"

	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/logging"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Normalize converts one raw payload from the given source into a canonical
// ProviderRecord. Field keys the source does not define are ignored. It
// returns an error only for an unknown source; unusable payloads produce a
// record with no fields.
func Normalize(ctx context.Context, source planets.SourceID, payload map[string]any, retrievedAt utc.Time) (*planets.ProviderRecord, error) {
	rec := planets.NewProviderRecord(source, retrievedAt)
	if len(payload) == 0 {
		return rec, nil
	}

	switch source {
	case planets.SourceNASA:
		normalizeNASA(ctx, rec, payload)
	case planets.SourceSIMBAD:
		normalizeSIMBAD(ctx, rec, payload)
	case planets.SourceExoplanetEU:
		normalizeExoplanetEU(ctx, rec, payload)
	default:
		return nil, errors.NewValidationError("source", source.String(), "unknown source")
	}

	return rec, nil
}

// setNumber coerces, validates, and stores a numeric payload value. Malformed
// or out-of-range values are dropped and logged at debug level.
func setNumber(ctx context.Context, rec *planets.ProviderRecord, field planets.Field, raw any) {
	if raw == nil {
		return
	}

	f, ok := toFloat(raw)
	if !ok {
		dropField(ctx, rec.Source, field, raw, "not a number")
		return
	}
	if reason, ok := checkRange(field, f); !ok {
		dropField(ctx, rec.Source, field, raw, reason)
		return
	}

	rec.Set(field, planets.Number(f))
}

// setText stores a text payload value, dropping empty strings.
func setText(_ context.Context, rec *planets.ProviderRecord, field planets.Field, raw any) {
	if raw == nil {
		return
	}

	s, ok := toString(raw)
	if !ok || s == "" {
		return
	}

	rec.Set(field, planets.Text(s))
}

// dropField records a swallowed parse failure. The field stays missing.
func dropField(ctx context.Context, source planets.SourceID, field planets.Field, raw any, reason string) {
	err := errors.NewParseError(source.String(), field.String(), rawString(raw), reason, nil)
	logging.Ctx(ctx).Debug().
		Err(err).
		Str("source", source.String()).
		Str("field", field.String()).
		Msg("dropping malformed field")
}

// checkRange rejects physically impossible values. Metallicity may be
// negative ([Fe/H] is a log ratio) and inclination spans 0-180 degrees;
// everything else numeric must be positive, eccentricity within [0, 1).
func checkRange(field planets.Field, f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "not finite", false
	}

	switch field {
	case planets.FieldEccentricity:
		if f < 0 || f >= 1 {
			return "eccentricity outside [0, 1)", false
		}
	case planets.FieldInclination, planets.FieldStarMetallicity:
		// No sign constraint.
	case planets.FieldDiscoveryYear:
		if f < 1900 || f > 3000 {
			return "implausible year", false
		}
	default:
		if f <= 0 {
			return "not positive", false
		}
	}
	return "", true
}

// toFloat coerces the numeric shapes a decoded JSON payload can carry.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		cleaned := strings.TrimSpace(n)
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// toString coerces string-ish payload values.
func toString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), true
	case json.Number:
		return s.String(), true
	default:
		return "", false
	}
}

// rawString renders a raw payload value for log output.
func rawString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case nil:
		return "<nil>"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "<unprintable>"
		}
		return string(b)
	}
}
