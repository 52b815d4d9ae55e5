package habitability

import "fmt"

// Narrative thresholds. Factors at or above the recommend threshold earn
// a recommendation, factors at or below the risk threshold earn a risk,
// and the band between contributes to neither list.
const (
	recommendThreshold = 15
	riskThreshold      = 7
)

// narrative derives the ordered recommendation and risk lists from the
// scored factors. Factors are visited in their fixed presentation order,
// and a closing verdict line is appended based on the overall category.
// The output is advisory text only; it feeds no score.
func narrative(factors map[Key]Factor, category Category) (recommendations, risks []string) {
	for _, key := range Keys() {
		f := factors[key]
		switch {
		case !f.known():
			risks = append(risks, unknownRisk(key))
		case f.Score >= recommendThreshold:
			recommendations = append(recommendations, recommendation(key, f))
		case f.Score <= riskThreshold:
			risks = append(risks, risk(key, f))
		}
	}

	switch category {
	case CategoryEarthLike:
		recommendations = append(recommendations, "Excellent colonization candidate")
	case CategoryPromising:
		recommendations = append(recommendations, "Viable with standard equipment")
	case CategoryModerate:
		recommendations = append(recommendations, "Advanced life support required")
	case CategoryChallenging:
		recommendations = append(recommendations, "Extreme survival conditions - expert team only")
	case CategoryHostile:
		risks = append(risks, "Extremely hostile environment - not recommended for colonization")
	}

	return recommendations, risks
}

// recommendation phrases the positive finding for a high-scoring factor.
func recommendation(key Key, f Factor) string {
	switch key {
	case KeyTemperature:
		return fmt.Sprintf("Temperature in the habitable range (%s) - liquid water plausible", f.Detail)
	case KeySize:
		return fmt.Sprintf("Near-Earth size (%s) - familiar surface conditions", f.Detail)
	case KeyStellar:
		return fmt.Sprintf("Stable host star (%s) - long, steady stellar lifetime", f.Detail)
	case KeyOrbit:
		return fmt.Sprintf("Near-circular orbit (%s) - mild seasons", f.Detail)
	case KeyAtmosphere:
		return fmt.Sprintf("Gravity suited to atmosphere retention (%s)", f.Detail)
	}
	return ""
}

// risk phrases the hazard for a low-scoring factor with known inputs.
func risk(key Key, f Factor) string {
	switch key {
	case KeyTemperature:
		return fmt.Sprintf("Extreme temperature (%s) - lethal without full environmental isolation", f.Detail)
	case KeySize:
		return fmt.Sprintf("Extreme size (%s) - no Earth-like surface", f.Detail)
	case KeyStellar:
		return fmt.Sprintf("Unstable host star (%s) - hazardous radiation environment", f.Detail)
	case KeyOrbit:
		return fmt.Sprintf("Unstable orbit (%s) - extreme seasonal swings", f.Detail)
	case KeyAtmosphere:
		return fmt.Sprintf("Poor atmospheric retention (%s) - surface likely exposed", f.Detail)
	}
	return ""
}

// unknownRisk phrases the data gap for a factor with no usable inputs.
func unknownRisk(key Key) string {
	switch key {
	case KeyTemperature:
		return "Temperature unknown - thermal conditions cannot be assessed"
	case KeySize:
		return "Size and mass unknown - surface conditions cannot be assessed"
	case KeyStellar:
		return "Host star unknown - radiation environment cannot be assessed"
	case KeyOrbit:
		return "Orbit unknown - seasonal stability cannot be assessed"
	case KeyAtmosphere:
		return "Atmospheric retention unknown - composition cannot be assessed"
	}
	return ""
}
