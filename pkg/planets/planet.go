// Package planets defines the canonical data model for the exoatlas system:
// typed source identifiers, the canonical field vocabulary, per-provider
// records, and the merged Planet record that the rest of the pipeline
// (reconciliation, habitability scoring, serving) operates on.
//
// Optional values are represented explicitly. Provider records carry a
// Value per canonical field that is either present or absent; the merged
// Planet uses pointer fields with omitempty tags. There are no sentinel
// zeros: an unset mass is nil, not 0.
package planets

// Planet is the canonical merged record for a single celestial body,
// assembled from one or more provider records under a source-priority
// policy. Fields that no provider supplied remain nil.
type Planet struct {
	Name        string         `json:"name" yaml:"name"`                   // Planet designation (e.g. "Kepler-452 b")
	Physical    PhysicalParams `json:"physical_params" yaml:"physical_params"`
	Orbital     OrbitalParams  `json:"orbital_params" yaml:"orbital_params"`
	HostStar    HostStar       `json:"host_star" yaml:"host_star"`
	Discovery   Discovery      `json:"discovery_info" yaml:"discovery_info"`
	SourcesUsed []SourceID     `json:"sources_used" yaml:"sources_used"` // Sources that contributed at least one field, in first-use order
}

// PhysicalParams holds the planet-level physical parameters.
// Masses and radii are Earth-relative with Jupiter-relative companions,
// matching the dual units the upstream catalogs publish.
type PhysicalParams struct {
	Mass            *float64 `json:"mass,omitempty" yaml:"mass,omitempty"`                         // Earth masses
	MassJupiter     *float64 `json:"mass_jupiter,omitempty" yaml:"mass_jupiter,omitempty"`         // Jupiter masses
	Radius          *float64 `json:"radius,omitempty" yaml:"radius,omitempty"`                     // Earth radii
	RadiusJupiter   *float64 `json:"radius_jupiter,omitempty" yaml:"radius_jupiter,omitempty"`     // Jupiter radii
	Density         *float64 `json:"density,omitempty" yaml:"density,omitempty"`                   // g/cm^3
	Gravity         *float64 `json:"gravity,omitempty" yaml:"gravity,omitempty"`                   // Surface gravity, Earth = 1
	EquilibriumTemp *float64 `json:"equilibrium_temp,omitempty" yaml:"equilibrium_temp,omitempty"` // Kelvin
}

// OrbitalParams holds the orbital parameters of the planet around its host.
type OrbitalParams struct {
	Period        *float64 `json:"period,omitempty" yaml:"period,omitempty"`                   // Days
	SemiMajorAxis *float64 `json:"semi_major_axis,omitempty" yaml:"semi_major_axis,omitempty"` // AU
	Eccentricity  *float64 `json:"eccentricity,omitempty" yaml:"eccentricity,omitempty"`       // Dimensionless, [0,1)
	Inclination   *float64 `json:"inclination,omitempty" yaml:"inclination,omitempty"`         // Degrees
}

// HostStar holds the stellar parameters of the planet's host star.
type HostStar struct {
	Name         *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Mass         *float64 `json:"mass,omitempty" yaml:"mass,omitempty"`                 // Solar masses
	Radius       *float64 `json:"radius,omitempty" yaml:"radius,omitempty"`             // Solar radii
	Temperature  *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`   // Effective temperature, Kelvin
	Luminosity   *float64 `json:"luminosity,omitempty" yaml:"luminosity,omitempty"`     // Solar luminosities (linear, not log)
	Metallicity  *float64 `json:"metallicity,omitempty" yaml:"metallicity,omitempty"`   // [Fe/H], dex
	Age          *float64 `json:"age,omitempty" yaml:"age,omitempty"`                   // Gyr
	Distance     *float64 `json:"distance,omitempty" yaml:"distance,omitempty"`         // Parsecs
	SpectralType *string  `json:"spectral_type,omitempty" yaml:"spectral_type,omitempty"`
}

// Discovery holds discovery metadata for the planet.
type Discovery struct {
	Method   *string `json:"method,omitempty" yaml:"method,omitempty"`
	Year     *int    `json:"year,omitempty" yaml:"year,omitempty"`
	Facility *string `json:"facility,omitempty" yaml:"facility,omitempty"`
}

// Float returns a pointer to f. Convenience for building records in tests
// and for derived values.
func Float(f float64) *float64 { return &f }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Str returns a pointer to s.
func Str(s string) *string { return &s }
