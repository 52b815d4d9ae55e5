// Package habitability scores a canonical planet record for human
// habitability. Five independent factors are evaluated, each worth up to
// 20 points: temperature-zone fit, size/mass plausibility, stellar
// stability, orbital stability, and atmospheric retention. The factor
// scores sum to a 0-100 total, bucket into a category, and feed a
// separate survival-chance estimate that punishes a single catastrophic
// factor harder than a uniformly mediocre profile.
//
// Scoring is a pure computation: the same planet record always produces
// the same result, and missing inputs score a factor at its minimum
// rather than failing.
package habitability

import (
	"math"

	"github.com/exoatlas/exoatlas/pkg/planets"
)

// FactorMax is the maximum score a single factor can contribute.
const FactorMax = 20

// TotalMax is the maximum total score across all five factors.
const TotalMax = 100

// Key identifies one habitability factor.
type Key string

// The five habitability factors, in presentation order.
const (
	KeyTemperature Key = "temperature"
	KeySize        Key = "size"
	KeyStellar     Key = "stellar"
	KeyOrbit       Key = "orbit"
	KeyAtmosphere  Key = "atmosphere"
)

// String returns the string representation of the key.
func (k Key) String() string {
	return string(k)
}

// Keys returns the five factor keys in their fixed presentation order.
// Narrative output and reports iterate factors in this order.
func Keys() []Key {
	return []Key{KeyTemperature, KeySize, KeyStellar, KeyOrbit, KeyAtmosphere}
}

// Status is the qualitative label attached to a factor score.
type Status string

// Factor statuses, from best to worst. Unknown marks a factor whose
// underlying measurements were entirely absent.
const (
	StatusOptimal   Status = "Optimal"
	StatusFavorable Status = "Favorable"
	StatusMixed     Status = "Mixed"
	StatusHarsh     Status = "Harsh"
	StatusHostile   Status = "Hostile"
	StatusUnknown   Status = "Unknown"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// statusFor maps a factor score to its qualitative label. A factor with
// no usable inputs is Unknown regardless of its (minimum) score.
func statusFor(score int, known bool) Status {
	if !known {
		return StatusUnknown
	}
	switch {
	case score >= 16:
		return StatusOptimal
	case score >= 12:
		return StatusFavorable
	case score >= 8:
		return StatusMixed
	case score >= 4:
		return StatusHarsh
	default:
		return StatusHostile
	}
}

// Category buckets the total score into a habitability class.
type Category string

// Habitability categories. Buckets are fixed and boundary-inclusive on
// the lower edge of each tier.
const (
	CategoryEarthLike   Category = "Earth-like"
	CategoryPromising   Category = "Promising"
	CategoryModerate    Category = "Moderate"
	CategoryChallenging Category = "Challenging"
	CategoryHostile     Category = "Hostile"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// categoryFor maps a total score to its category.
func categoryFor(total int) Category {
	switch {
	case total >= 80:
		return CategoryEarthLike
	case total >= 60:
		return CategoryPromising
	case total >= 40:
		return CategoryModerate
	case total >= 20:
		return CategoryChallenging
	default:
		return CategoryHostile
	}
}

// Factor is one scored habitability dimension.
type Factor struct {
	Key    Key    `json:"key" yaml:"key"`
	Score  int    `json:"score" yaml:"score"` // 0 to FactorMax
	Status Status `json:"status" yaml:"status"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"` // measured inputs, empty when unknown
}

// known reports whether the factor had any usable input.
func (f Factor) known() bool {
	return f.Status != StatusUnknown
}

// Result is the full habitability assessment for one planet.
type Result struct {
	TotalScore      int            `json:"total_score" yaml:"total_score"`
	SurvivalChance  float64        `json:"survival_chance" yaml:"survival_chance"` // percentage, two decimals
	Category        Category       `json:"category" yaml:"category"`
	Factors         map[Key]Factor `json:"factors" yaml:"factors"`
	Recommendations []string       `json:"recommendations" yaml:"recommendations"`
	Risks           []string       `json:"risks" yaml:"risks"`
}

// Score assesses the given planet. It never fails: factors whose inputs
// are missing score zero with an Unknown status, and a planet with no
// usable measurements at all comes back Hostile with a zero total.
func Score(p *planets.Planet) *Result {
	if p == nil {
		p = &planets.Planet{}
	}

	factors := make(map[Key]Factor, len(Keys()))
	for _, f := range []Factor{
		temperatureFactor(p),
		sizeFactor(p),
		stellarFactor(p),
		orbitFactor(p),
		atmosphereFactor(p),
	} {
		factors[f.Key] = f
	}

	total := 0
	for _, key := range Keys() {
		total += factors[key].Score
	}

	category := categoryFor(total)
	recommendations, risks := narrative(factors, category)

	return &Result{
		TotalScore:      total,
		SurvivalChance:  survivalChance(factors),
		Category:        category,
		Factors:         factors,
		Recommendations: recommendations,
		Risks:           risks,
	}
}

// roundScore converts a raw factor value to its integer score, clamped
// to the factor range.
func roundScore(raw float64) int {
	score := int(math.Round(raw))
	if score < 0 {
		return 0
	}
	if score > FactorMax {
		return FactorMax
	}
	return score
}
