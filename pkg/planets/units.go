package planets

// Unit conversion constants shared by normalization and scoring.
const (
	// EarthMassesPerJupiter converts Jupiter masses to Earth masses.
	EarthMassesPerJupiter = 317.8

	// EarthRadiiPerJupiter converts Jupiter radii to Earth radii.
	EarthRadiiPerJupiter = 11.2

	// EarthDensity is Earth's bulk density in g/cm^3, used to express
	// catalog densities relative to Earth.
	EarthDensity = 5.51

	// SolarEffectiveTemp is the Sun's effective temperature in Kelvin,
	// the reference point for deriving stellar luminosity from
	// temperature and radius.
	SolarEffectiveTemp = 5778.0
)
