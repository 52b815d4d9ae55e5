package exoatlas

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// Comparison ranks two planets by habitability.
type Comparison struct {
	PlanetA *Profile `json:"planet_a" yaml:"planet_a"`
	PlanetB *Profile `json:"planet_b" yaml:"planet_b"`
	Verdict Verdict  `json:"comparison" yaml:"comparison"`
}

// Verdict summarizes how two scored planets stack up.
type Verdict struct {
	// MoreHabitable names the planet with the higher total score.
	// Ties go to the second planet.
	MoreHabitable      string  `json:"more_habitable" yaml:"more_habitable"`
	ScoreDifference    int     `json:"score_difference" yaml:"score_difference"`
	SurvivalDifference float64 `json:"survival_difference" yaml:"survival_difference"`
}

// Compare looks up both planets concurrently and ranks them. Either
// planet missing from every catalog fails the comparison with that
// planet's NotFoundError.
func (a *atlas) Compare(ctx context.Context, nameA, nameB string) (*Comparison, error) {
	var profileA, profileB *Profile

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profileA, err = a.Lookup(gctx, nameA)
		return err
	})
	g.Go(func() error {
		var err error
		profileB, err = a.Lookup(gctx, nameB)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scoreA := profileA.Habitability
	scoreB := profileB.Habitability

	verdict := Verdict{
		MoreHabitable:      profileB.Name,
		ScoreDifference:    absInt(scoreA.TotalScore - scoreB.TotalScore),
		SurvivalDifference: roundHundredth(math.Abs(scoreA.SurvivalChance - scoreB.SurvivalChance)),
	}
	if scoreA.TotalScore > scoreB.TotalScore {
		verdict.MoreHabitable = profileA.Name
	}

	return &Comparison{
		PlanetA: profileA,
		PlanetB: profileB,
		Verdict: verdict,
	}, nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func roundHundredth(f float64) float64 {
	return math.Round(f*100) / 100
}
