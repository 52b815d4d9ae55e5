package habitability

import "math"

// survivalChance estimates the chance of surviving on the planet as a
// percentage. It multiplies the arithmetic mean of the normalized factor
// scores by their geometric mean: the geometric term drives the estimate
// toward zero when any single factor is catastrophic, so a planet with
// one lethal property scores far below one that is uniformly mediocre at
// the same total. Monotonic in every factor, rounded to two decimals.
func survivalChance(factors map[Key]Factor) float64 {
	keys := Keys()
	arith := 0.0
	geom := 1.0
	for _, key := range keys {
		f := float64(factors[key].Score) / FactorMax
		arith += f
		geom *= f
	}
	arith /= float64(len(keys))
	geom = math.Pow(geom, 1/float64(len(keys)))

	return math.Round(arith*geom*10000) / 100
}
