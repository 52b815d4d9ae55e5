package planets

// Field names a canonical record field using a dot path into the Planet
// structure. The vocabulary is closed: providers map whatever columns they
// publish onto these fields during normalization.
type Field string

// String returns the string representation of a field.
func (f Field) String() string {
	return string(f)
}

// Canonical field vocabulary.
const (
	FieldName Field = "name"

	FieldMass            Field = "physical.mass"
	FieldMassJupiter     Field = "physical.mass_jupiter"
	FieldRadius          Field = "physical.radius"
	FieldRadiusJupiter   Field = "physical.radius_jupiter"
	FieldDensity         Field = "physical.density"
	FieldGravity         Field = "physical.gravity"
	FieldEquilibriumTemp Field = "physical.equilibrium_temp"

	FieldPeriod        Field = "orbital.period"
	FieldSemiMajorAxis Field = "orbital.semi_major_axis"
	FieldEccentricity  Field = "orbital.eccentricity"
	FieldInclination   Field = "orbital.inclination"

	FieldStarName        Field = "host_star.name"
	FieldStarMass        Field = "host_star.mass"
	FieldStarRadius      Field = "host_star.radius"
	FieldStarTemperature Field = "host_star.temperature"
	FieldStarLuminosity  Field = "host_star.luminosity"
	FieldStarMetallicity Field = "host_star.metallicity"
	FieldStarAge         Field = "host_star.age"
	FieldStarDistance    Field = "host_star.distance"
	FieldSpectralType    Field = "host_star.spectral_type"

	FieldDiscoveryMethod   Field = "discovery.method"
	FieldDiscoveryYear     Field = "discovery.year"
	FieldDiscoveryFacility Field = "discovery.facility"
)

// Fields returns the complete canonical vocabulary in declaration order.
// Reconciliation iterates this slice, so the order here is the order in
// which sources are credited; it must stay stable.
func Fields() []Field {
	return []Field{
		FieldName,
		FieldMass,
		FieldMassJupiter,
		FieldRadius,
		FieldRadiusJupiter,
		FieldDensity,
		FieldGravity,
		FieldEquilibriumTemp,
		FieldPeriod,
		FieldSemiMajorAxis,
		FieldEccentricity,
		FieldInclination,
		FieldStarName,
		FieldStarMass,
		FieldStarRadius,
		FieldStarTemperature,
		FieldStarLuminosity,
		FieldStarMetallicity,
		FieldStarAge,
		FieldStarDistance,
		FieldSpectralType,
		FieldDiscoveryMethod,
		FieldDiscoveryYear,
		FieldDiscoveryFacility,
	}
}

// textFields holds the fields whose values are text rather than numeric.
var textFields = map[Field]bool{
	FieldName:              true,
	FieldStarName:          true,
	FieldSpectralType:      true,
	FieldDiscoveryMethod:   true,
	FieldDiscoveryFacility: true,
}

// IsText reports whether the field carries a text value. All other fields
// carry numbers (FieldDiscoveryYear is numeric and truncated to a year).
func (f Field) IsText() bool {
	return textFields[f]
}
