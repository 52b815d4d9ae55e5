package exoatlas

import (
	"context"
	"strings"

	"github.com/agentstation/utc"

	"github.com/exoatlas/exoatlas/internal/sources"
	"github.com/exoatlas/exoatlas/internal/summarize"
	"github.com/exoatlas/exoatlas/pkg/constants"
	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/habitability"
	"github.com/exoatlas/exoatlas/pkg/logging"
	"github.com/exoatlas/exoatlas/pkg/normalize"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Profile is the reconciled, scored view of one planet.
type Profile struct {
	planets.Planet `yaml:",inline"`

	// Habitability is the scored assessment of the merged planet.
	Habitability *habitability.Result `json:"habitability_score" yaml:"habitability_score"`

	// FieldSources records which source won each populated field.
	FieldSources map[planets.Field]planets.SourceID `json:"field_sources,omitempty" yaml:"field_sources,omitempty"`

	// MissingFields lists canonical fields no source could fill.
	MissingFields []planets.Field `json:"missing_fields,omitempty" yaml:"missing_fields,omitempty"`

	// Fetches reports each source's outcome, in client order.
	Fetches []FetchStat `json:"fetches,omitempty" yaml:"fetches,omitempty"`

	// Summary is the optional LLM colonization brief.
	Summary *Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// FetchStat is one source's outcome during a lookup.
type FetchStat struct {
	Source planets.SourceID `json:"source" yaml:"source"`
	OK     bool             `json:"ok" yaml:"ok"`
	Fields int              `json:"fields" yaml:"fields"`
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary is an LLM-generated colonization brief.
type Summary struct {
	Backend string `json:"backend" yaml:"backend"`
	Text    string `json:"text" yaml:"text"`
}

// Lookup builds the reconciled, scored profile for a planet. Source
// failures are tolerated and reported in Fetches; only a miss across
// every source returns a NotFoundError.
func (a *atlas) Lookup(ctx context.Context, name string, opts ...LookupOption) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", name, "planet name is required")
	}
	if len(name) > constants.MaxPlanetNameLength {
		return nil, errors.NewValidationError("name", name, "planet name exceeds maximum length")
	}

	var lo lookupOptions
	for _, opt := range opts {
		opt(&lo)
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.lookupTimeout)
	defer cancel()
	ctx = logging.WithLogger(ctx, a.logger)
	ctx = logging.WithPlanet(ctx, name)
	log := logging.Ctx(ctx)

	results := sources.FetchAll(ctx, a.clients, name)

	retrievedAt := utc.Now()
	records := make([]planets.ProviderRecord, 0, len(results))
	stats := make([]FetchStat, 0, len(results))
	for _, res := range results {
		stat := FetchStat{Source: res.Source}
		if res.Err != nil {
			stat.Error = res.Err.Error()
			if !errors.IsNotFound(res.Err) {
				log.Warn().Err(res.Err).Str("source", res.Source.String()).Msg("source fetch failed")
			}
			stats = append(stats, stat)
			continue
		}

		rec, err := normalize.Normalize(ctx, res.Source, res.Payload, retrievedAt)
		if err != nil {
			stat.Error = err.Error()
			stats = append(stats, stat)
			continue
		}
		stat.OK = true
		stat.Fields = rec.Len()
		stats = append(stats, stat)
		records = append(records, *rec)
	}

	result, err := a.reconciler.Reconcile(ctx, records)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("planet", name)
		}
		return nil, err
	}

	planet := result.Planet
	if planet.Name == "" {
		planet.Name = name
	}

	score := habitability.Score(&planet)

	profile := &Profile{
		Planet:        planet,
		Habitability:  score,
		FieldSources:  result.FieldSources,
		MissingFields: result.MissingFields,
		Fetches:       stats,
	}

	if lo.summary && a.summarizer != nil {
		a.attachSummary(ctx, profile)
	}

	log.Info().
		Int("total_score", score.TotalScore).
		Float64("survival_chance", score.SurvivalChance).
		Str("category", string(score.Category)).
		Int("sources_used", len(planet.SourcesUsed)).
		Msg("lookup complete")

	return profile, nil
}

// Habitability returns only the habitability assessment for a planet.
func (a *atlas) Habitability(ctx context.Context, name string) (*habitability.Result, error) {
	profile, err := a.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	return profile.Habitability, nil
}

// attachSummary asks the configured summarizer for a colonization
// brief. Failures degrade to a profile without a summary.
func (a *atlas) attachSummary(ctx context.Context, profile *Profile) {
	text, err := a.summarizer.Summarize(ctx, summarize.Request{
		Planet:       &profile.Planet,
		Habitability: profile.Habitability,
	})
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("backend", a.summarizer.Name()).
			Msg("summary generation failed")
		return
	}
	profile.Summary = &Summary{Backend: a.summarizer.Name(), Text: text}
}
