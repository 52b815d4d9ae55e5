package habitability

import "testing"

// factorMap builds a factor set with the given scores in key order.
func factorMap(scores [5]int) map[Key]Factor {
	m := make(map[Key]Factor, len(scores))
	for i, key := range Keys() {
		m[key] = Factor{Key: key, Score: scores[i], Status: statusFor(scores[i], true)}
	}
	return m
}

func TestSurvivalChanceBounds(t *testing.T) {
	if got := survivalChance(factorMap([5]int{20, 20, 20, 20, 20})); !almostEqual(got, 100) {
		t.Errorf("perfect factors = %.2f, want 100", got)
	}
	if got := survivalChance(factorMap([5]int{0, 0, 0, 0, 0})); got != 0 {
		t.Errorf("zero factors = %.2f, want 0", got)
	}
}

func TestSurvivalChancePenalizesCatastrophe(t *testing.T) {
	// Both profiles total 80, but one has a single lethal factor.
	uniform := survivalChance(factorMap([5]int{16, 16, 16, 16, 16}))
	catastrophic := survivalChance(factorMap([5]int{20, 20, 20, 20, 0}))

	if !almostEqual(uniform, 64) {
		t.Errorf("uniform profile = %.2f, want 64", uniform)
	}
	if catastrophic != 0 {
		t.Errorf("catastrophic profile = %.2f, want 0", catastrophic)
	}
	if catastrophic >= uniform {
		t.Errorf("catastrophic %.2f should score strictly below uniform %.2f", catastrophic, uniform)
	}
}

func TestSurvivalChanceMonotonic(t *testing.T) {
	base := [5]int{12, 12, 12, 12, 12}
	prev := survivalChance(factorMap(base))

	for score := 13; score <= 20; score++ {
		next := base
		next[2] = score
		got := survivalChance(factorMap(next))
		if got < prev {
			t.Errorf("raising a factor to %d lowered survival: %.2f -> %.2f", score, prev, got)
		}
		prev = got
	}

	// Lowering any single factor never raises the estimate, even from a
	// profile that already contains a zero.
	withZero := [5]int{20, 0, 20, 20, 20}
	before := survivalChance(factorMap(withZero))
	withZero[0] = 10
	after := survivalChance(factorMap(withZero))
	if after > before {
		t.Errorf("lowering a factor raised survival: %.2f -> %.2f", before, after)
	}
}

func TestSurvivalChanceNotARescaling(t *testing.T) {
	// Three profiles with the same total must not map to one value.
	a := survivalChance(factorMap([5]int{16, 16, 16, 16, 16}))
	b := survivalChance(factorMap([5]int{20, 20, 20, 16, 4}))
	c := survivalChance(factorMap([5]int{20, 20, 20, 20, 0}))

	if almostEqual(a, b) && almostEqual(b, c) {
		t.Errorf("survival chance behaves as a pure rescaling of the total: %v %v %v", a, b, c)
	}
	if b >= a {
		t.Errorf("skewed profile %.2f should score below uniform %.2f", b, a)
	}
	if c >= b {
		t.Errorf("catastrophic profile %.2f should score below skewed %.2f", c, b)
	}
}
