package habitability

import (
	"fmt"
	"math"
	"strings"

	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Temperature-zone fit. Full marks at the midpoint of the liquid-water
// range, decaying linearly to zero outside a wider tolerance band.
const (
	optimalTempK   = 323.0 // midpoint of the 273-373 K liquid-water range
	tempToleranceK = 300.0 // zero score this far from the midpoint

	// zeroAlbedoTempK is the equilibrium temperature of an airless dark
	// body at 1 AU from the Sun, used when estimating temperature from
	// stellar luminosity and orbital distance.
	zeroAlbedoTempK = 278.3
)

// temperatureFactor scores how close the planet sits to the liquid-water
// temperature band. It prefers the measured equilibrium temperature and
// falls back to an estimate from stellar luminosity and orbital distance.
func temperatureFactor(p *planets.Planet) Factor {
	t, estimated, ok := planetTemperature(p)
	if !ok {
		return Factor{Key: KeyTemperature, Status: StatusUnknown}
	}

	raw := FactorMax * math.Max(0, 1-math.Abs(t-optimalTempK)/tempToleranceK)
	score := roundScore(raw)

	detail := fmt.Sprintf("%.0f K", t)
	if estimated {
		detail += ", estimated"
	}
	return Factor{Key: KeyTemperature, Score: score, Status: statusFor(score, true), Detail: detail}
}

// planetTemperature returns the planet's equilibrium temperature in
// Kelvin, whether it was estimated rather than measured, and whether a
// value could be derived at all.
func planetTemperature(p *planets.Planet) (temp float64, estimated, ok bool) {
	if t := p.Physical.EquilibriumTemp; t != nil && *t > 0 {
		return *t, false, true
	}

	a := p.Orbital.SemiMajorAxis
	if a == nil || *a <= 0 {
		return 0, false, false
	}
	l, ok := starLuminosity(p.HostStar)
	if !ok {
		return 0, false, false
	}
	return zeroAlbedoTempK * math.Pow(l, 0.25) / math.Sqrt(*a), true, true
}

// starLuminosity returns the host star's luminosity in solar units,
// deriving it from effective temperature and radius when the catalogs
// did not report it directly.
func starLuminosity(s planets.HostStar) (float64, bool) {
	if s.Luminosity != nil && *s.Luminosity > 0 {
		return *s.Luminosity, true
	}
	if s.Temperature != nil && *s.Temperature > 0 && s.Radius != nil && *s.Radius > 0 {
		t := *s.Temperature / planets.SolarEffectiveTemp
		return math.Pow(t, 4) * (*s.Radius) * (*s.Radius), true
	}
	return 0, false
}

// sizeFactor scores mass and radius against Earth on a log scale: full
// marks at exactly Earth-like values, zero at Jupiter-scale extremes in
// either direction. Uses whichever of mass and radius is available,
// averaging when both are.
func sizeFactor(p *planets.Planet) Factor {
	m, haveMass := massEarth(p)
	r, haveRadius := radiusEarth(p)
	if !haveMass && !haveRadius {
		return Factor{Key: KeySize, Status: StatusUnknown}
	}

	var sum float64
	var n int
	var parts []string
	if haveMass {
		sum += logFitness(m, planets.EarthMassesPerJupiter)
		n++
		parts = append(parts, fmt.Sprintf("%.3g Earth masses", m))
	}
	if haveRadius {
		sum += logFitness(r, planets.EarthRadiiPerJupiter)
		n++
		parts = append(parts, fmt.Sprintf("%.3g Earth radii", r))
	}

	score := roundScore(FactorMax * sum / float64(n))
	return Factor{Key: KeySize, Score: score, Status: statusFor(score, true), Detail: strings.Join(parts, ", ")}
}

// logFitness maps a ratio to [0,1]: 1 at exactly 1x Earth, falling to 0
// at the given scale (or its reciprocal) away from Earth.
func logFitness(value, scale float64) float64 {
	if value <= 0 {
		return 0
	}
	return math.Max(0, 1-math.Abs(math.Log10(value))/math.Log10(scale))
}

// Stellar stability. Class weight rewards long, steady main-sequence
// lifetimes; O/B stars burn out fast, M dwarfs flare and tidally lock
// their habitable zones.
const (
	classPoints       = 12.0
	metallicityPoints = 8.0
)

var classWeights = map[byte]float64{
	'O': 0.05,
	'B': 0.1,
	'A': 0.3,
	'F': 0.7,
	'G': 1.0,
	'K': 0.9,
	'M': 0.45,
}

// stellarFactor scores the host star: spectral class (preferring G and K
// dwarfs) plus near-solar metallicity.
func stellarFactor(p *planets.Planet) Factor {
	weight, detail, haveClass := stellarClass(p.HostStar)
	feh := p.HostStar.Metallicity
	if !haveClass && feh == nil {
		return Factor{Key: KeyStellar, Status: StatusUnknown}
	}

	var raw float64
	if haveClass {
		raw += classPoints * weight
	}
	if feh != nil {
		raw += metallicityPoints * math.Max(0, 1-math.Abs(*feh))
		if detail == "" {
			detail = fmt.Sprintf("[Fe/H] %+.2f", *feh)
		}
	}

	score := roundScore(raw)
	return Factor{Key: KeyStellar, Score: score, Status: statusFor(score, true), Detail: detail}
}

// stellarClass resolves the host star's class weight from its spectral
// type, falling back to effective-temperature bands.
func stellarClass(s planets.HostStar) (weight float64, detail string, ok bool) {
	if s.SpectralType != nil {
		spt := strings.TrimSpace(*s.SpectralType)
		if spt != "" {
			if w, found := classWeights[upperFirst(spt)]; found {
				return w, spt + " host", true
			}
		}
	}
	if s.Temperature != nil && *s.Temperature > 0 {
		return weightFromTemp(*s.Temperature), fmt.Sprintf("%.0f K host", *s.Temperature), true
	}
	return 0, "", false
}

// upperFirst returns the first byte of s uppercased.
func upperFirst(s string) byte {
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// weightFromTemp maps an effective temperature to the weight of the
// matching spectral class band. Below the M-dwarf floor sit brown
// dwarfs, weighted near zero.
func weightFromTemp(teff float64) float64 {
	switch {
	case teff >= 30000:
		return classWeights['O']
	case teff >= 10000:
		return classWeights['B']
	case teff >= 7500:
		return classWeights['A']
	case teff >= 6000:
		return classWeights['F']
	case teff >= 5200:
		return classWeights['G']
	case teff >= 3700:
		return classWeights['K']
	case teff >= 2400:
		return classWeights['M']
	default:
		return 0.1
	}
}

// Orbital stability. Low eccentricity keeps the climate steady; the
// period window excludes tidally locked ultra-short orbits and
// far-out frozen ones.
const (
	eccentricityPoints = 12.0
	periodPoints       = 8.0
	maxStableEcc       = 0.6
)

// orbitFactor scores eccentricity and orbital period.
func orbitFactor(p *planets.Planet) Factor {
	ecc := p.Orbital.Eccentricity
	period := p.Orbital.Period
	if ecc == nil && period == nil {
		return Factor{Key: KeyOrbit, Status: StatusUnknown}
	}

	var raw float64
	var parts []string
	if ecc != nil {
		raw += eccentricityPoints * math.Max(0, 1-*ecc/maxStableEcc)
		parts = append(parts, fmt.Sprintf("eccentricity %.3g", *ecc))
	}
	if period != nil {
		raw += periodPoints * periodFitness(*period)
		parts = append(parts, fmt.Sprintf("period %.3g d", *period))
	}

	score := roundScore(raw)
	return Factor{Key: KeyOrbit, Score: score, Status: statusFor(score, true), Detail: strings.Join(parts, ", ")}
}

// periodFitness maps an orbital period in days to [0,1]. Ultra-short
// periods are tidally locked, year-scale periods are ideal, and the
// score tapers logarithmically toward decade-long orbits.
func periodFitness(days float64) float64 {
	switch {
	case days <= 1:
		return 0
	case days < 10:
		return (days - 1) / 9
	case days <= 600:
		return 1
	case days < 6000:
		return 1 - math.Log10(days/600)
	default:
		return 0
	}
}

// Atmospheric retention. Gravity strong enough to hold an atmosphere
// but not crushing, and a bulk density consistent with a rocky world.
const (
	gravityPoints = 12.0
	densityPoints = 8.0
)

// atmosphereFactor scores surface gravity and bulk density, deriving
// both from mass and radius when not measured directly.
func atmosphereFactor(p *planets.Planet) Factor {
	g, haveGravity := surfaceGravity(p)
	d, haveDensity := relativeDensity(p)
	if !haveGravity && !haveDensity {
		return Factor{Key: KeyAtmosphere, Status: StatusUnknown}
	}

	var raw float64
	var parts []string
	if haveGravity {
		raw += gravityPoints * gravityFitness(g)
		parts = append(parts, fmt.Sprintf("%.2gx Earth gravity", g))
	}
	if haveDensity {
		raw += densityPoints * densityFitness(d)
		parts = append(parts, fmt.Sprintf("%.2gx Earth density", d))
	}

	score := roundScore(raw)
	return Factor{Key: KeyAtmosphere, Score: score, Status: statusFor(score, true), Detail: strings.Join(parts, ", ")}
}

// surfaceGravity returns surface gravity relative to Earth, derived
// from mass and radius when not reported.
func surfaceGravity(p *planets.Planet) (float64, bool) {
	if g := p.Physical.Gravity; g != nil && *g > 0 {
		return *g, true
	}
	m, haveMass := massEarth(p)
	r, haveRadius := radiusEarth(p)
	if haveMass && haveRadius && r > 0 {
		return m / (r * r), true
	}
	return 0, false
}

// relativeDensity returns bulk density relative to Earth, derived from
// mass and radius when not reported.
func relativeDensity(p *planets.Planet) (float64, bool) {
	if d := p.Physical.Density; d != nil && *d > 0 {
		return *d / planets.EarthDensity, true
	}
	m, haveMass := massEarth(p)
	r, haveRadius := radiusEarth(p)
	if haveMass && haveRadius && r > 0 {
		return m / (r * r * r), true
	}
	return 0, false
}

// gravityFitness maps relative surface gravity to [0,1]. The plateau
// covers gravities a human could work in; above it the score decays
// toward a crushing ten gee.
func gravityFitness(g float64) float64 {
	switch {
	case g <= 0:
		return 0
	case g < 0.4:
		return g / 0.4
	case g <= 2.5:
		return 1
	case g < 10:
		return (10 - g) / 7.5
	default:
		return 0
	}
}

// densityFitness maps Earth-relative bulk density to [0,1]. The plateau
// covers rocky compositions; gas-giant densities fall below it and
// degenerate-matter values above.
func densityFitness(d float64) float64 {
	switch {
	case d <= 0:
		return 0
	case d < 0.6:
		return d / 0.6
	case d <= 1.5:
		return 1
	case d < 5:
		return (5 - d) / 3.5
	default:
		return 0
	}
}

// massEarth returns the planet's mass in Earth masses, converting from
// Jupiter masses when only those were reported.
func massEarth(p *planets.Planet) (float64, bool) {
	if m := p.Physical.Mass; m != nil && *m > 0 {
		return *m, true
	}
	if m := p.Physical.MassJupiter; m != nil && *m > 0 {
		return *m * planets.EarthMassesPerJupiter, true
	}
	return 0, false
}

// radiusEarth returns the planet's radius in Earth radii, converting
// from Jupiter radii when only those were reported.
func radiusEarth(p *planets.Planet) (float64, bool) {
	if r := p.Physical.Radius; r != nil && *r > 0 {
		return *r, true
	}
	if r := p.Physical.RadiusJupiter; r != nil && *r > 0 {
		return *r * planets.EarthRadiiPerJupiter, true
	}
	return 0, false
}
