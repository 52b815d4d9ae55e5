package planets

import (
	"slices"
	"strings"
)

// SourceID identifies a catalog provider in the reconciliation pipeline.
type SourceID string

// String returns the string representation of a source ID.
func (id SourceID) String() string {
	return string(id)
}

// Catalog providers known to the system.
const (
	// SourceNASA identifies the NASA Exoplanet Archive (TAP service).
	SourceNASA SourceID = "nasa"

	// SourceSIMBAD identifies the SIMBAD astronomical database. SIMBAD
	// resolves host stars and contributes stellar fields only.
	SourceSIMBAD SourceID = "simbad"

	// SourceExoplanetEU identifies the Exoplanet.eu catalog.
	SourceExoplanetEU SourceID = "exoplanet_eu"
)

// SourceIDs returns all defined source identifiers.
func SourceIDs() []SourceID {
	return []SourceID{
		SourceNASA,
		SourceSIMBAD,
		SourceExoplanetEU,
	}
}

// IsValid returns true if the SourceID is one of the defined constants.
func (id SourceID) IsValid() bool {
	return slices.Contains(SourceIDs(), id)
}

// ParseSourceID parses a source identifier from user input, accepting a
// few common aliases. Returns false when the input names no known source.
func ParseSourceID(s string) (SourceID, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nasa", "nasa_archive", "nasa-archive", "exoplanet_archive":
		return SourceNASA, true
	case "simbad":
		return SourceSIMBAD, true
	case "exoplanet_eu", "exoplanet-eu", "exoplanet.eu", "eu":
		return SourceExoplanetEU, true
	default:
		return "", false
	}
}

// DefaultPriority returns the default merge priority order: NASA over
// SIMBAD over Exoplanet.eu. Callers may pass any permutation of valid
// sources instead; nothing in the pipeline assumes this ordering.
func DefaultPriority() []SourceID {
	return []SourceID{
		SourceNASA,
		SourceSIMBAD,
		SourceExoplanetEU,
	}
}
