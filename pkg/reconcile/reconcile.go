// Package reconcile merges normalized provider records into one canonical
// planet record. Conflicts are resolved per field by walking a configured
// source priority order and taking the first present value; nothing is
// averaged and nothing is invented. The result carries per-field provenance
// and the list of canonical fields that stayed unresolved.
package reconcile

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/logging"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Reconciler merges provider records into a canonical planet.
type Reconciler interface {
	// Reconcile merges the given records. Input order does not matter: the
	// same set of records always produces the same result. It returns a
	// NotFoundError when no record carries a single usable field.
	Reconcile(ctx context.Context, records []planets.ProviderRecord) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	strategy Strategy
	priority []planets.SourceID
	tracking bool
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &reconciler{
		strategy: options.strategy,
		priority: options.priority,
		tracking: options.tracking,
	}, nil
}

// Reconcile merges the given records field by field.
func (r *reconciler) Reconcile(ctx context.Context, records []planets.ProviderRecord) (*Result, error) {
	start := time.Now()
	log := logging.Ctx(ctx)

	result := &Result{
		FieldSources: make(map[planets.Field]planets.SourceID),
		Metadata: Metadata{
			StartTime: start,
			Strategy:  r.strategy.Type(),
			Priority:  append([]planets.SourceID(nil), r.priority...),
		},
	}

	// Index records by source. The first record from a source wins; later
	// duplicates are ignored.
	bySource := make(map[planets.SourceID]*planets.ProviderRecord, len(records))
	for i := range records {
		rec := &records[i]
		if !rec.Source.IsValid() {
			log.Warn().Str("source", rec.Source.String()).Msg("skipping record from unknown source")
			result.Warnings = append(result.Warnings, "skipped record from unknown source "+rec.Source.String())
			continue
		}
		if _, dup := bySource[rec.Source]; dup {
			log.Warn().Str("source", rec.Source.String()).Msg("skipping duplicate record")
			result.Warnings = append(result.Warnings, "skipped duplicate record from "+rec.Source.String())
			continue
		}
		bySource[rec.Source] = rec
		result.Metadata.Sources = append(result.Metadata.Sources, rec.Source)
	}

	if !anyUsable(bySource) {
		return nil, errors.NewNotFoundError("planet", nameHint(bySource, r.priority))
	}

	var provenance ProvenanceMap
	if r.tracking {
		provenance = make(ProvenanceMap)
	}

	// Resolve every canonical field in declaration order so that the order
	// sources first contribute in is reproducible.
	used := make(map[planets.SourceID]bool, len(bySource))
	for _, field := range planets.Fields() {
		values := make(map[planets.SourceID]planets.Value, len(bySource))
		for src, rec := range bySource {
			if v, ok := rec.Get(field); ok {
				values[src] = v
			}
		}
		if len(values) == 0 {
			result.MissingFields = append(result.MissingFields, field)
			continue
		}

		value, source, reason := r.strategy.Resolve(field, values)
		if !value.IsPresent() {
			result.MissingFields = append(result.MissingFields, field)
			continue
		}

		setPlanetField(&result.Planet, field, value)
		result.FieldSources[field] = source
		if !used[source] {
			used[source] = true
			result.SourcesUsed = append(result.SourcesUsed, source)
		}
		if provenance != nil {
			provenance[field] = ProvenanceInfo{
				Source:    source,
				Field:     field,
				Value:     value,
				Timestamp: start,
				Reason:    reason,
			}
		}
	}

	result.Planet.SourcesUsed = append([]planets.SourceID(nil), result.SourcesUsed...)
	result.Provenance = provenance
	sortSources(result.Metadata.Sources)

	if len(result.MissingFields) > 0 {
		log.Warn().
			Int("missing", len(result.MissingFields)).
			Int("resolved", len(result.FieldSources)).
			Msg("partial data: some canonical fields unresolved")
	}

	result.Metadata.EndTime = time.Now()
	result.Metadata.Duration = result.Metadata.EndTime.Sub(start)
	return result, nil
}

// anyUsable reports whether at least one record carries a field.
func anyUsable(bySource map[planets.SourceID]*planets.ProviderRecord) bool {
	for _, rec := range bySource {
		if !rec.Empty() {
			return true
		}
	}
	return false
}

// nameHint digs a planet name out of the records for error reporting.
func nameHint(bySource map[planets.SourceID]*planets.ProviderRecord, priority []planets.SourceID) string {
	for _, src := range priority {
		if rec, ok := bySource[src]; ok {
			if v, ok := rec.Get(planets.FieldName); ok {
				if s, ok := v.Str(); ok {
					return s
				}
			}
		}
	}
	return "(unnamed)"
}

// setPlanetField routes a winning value into the canonical struct.
func setPlanetField(p *planets.Planet, field planets.Field, v planets.Value) {
	if field.IsText() {
		s, ok := v.Str()
		if !ok {
			return
		}
		switch field {
		case planets.FieldName:
			p.Name = s
		case planets.FieldStarName:
			p.HostStar.Name = planets.Str(s)
		case planets.FieldSpectralType:
			p.HostStar.SpectralType = planets.Str(s)
		case planets.FieldDiscoveryMethod:
			p.Discovery.Method = planets.Str(s)
		case planets.FieldDiscoveryFacility:
			p.Discovery.Facility = planets.Str(s)
		}
		return
	}

	f, ok := v.Float()
	if !ok {
		return
	}
	switch field {
	case planets.FieldMass:
		p.Physical.Mass = planets.Float(f)
	case planets.FieldMassJupiter:
		p.Physical.MassJupiter = planets.Float(f)
	case planets.FieldRadius:
		p.Physical.Radius = planets.Float(f)
	case planets.FieldRadiusJupiter:
		p.Physical.RadiusJupiter = planets.Float(f)
	case planets.FieldDensity:
		p.Physical.Density = planets.Float(f)
	case planets.FieldGravity:
		p.Physical.Gravity = planets.Float(f)
	case planets.FieldEquilibriumTemp:
		p.Physical.EquilibriumTemp = planets.Float(f)
	case planets.FieldPeriod:
		p.Orbital.Period = planets.Float(f)
	case planets.FieldSemiMajorAxis:
		p.Orbital.SemiMajorAxis = planets.Float(f)
	case planets.FieldEccentricity:
		p.Orbital.Eccentricity = planets.Float(f)
	case planets.FieldInclination:
		p.Orbital.Inclination = planets.Float(f)
	case planets.FieldStarMass:
		p.HostStar.Mass = planets.Float(f)
	case planets.FieldStarRadius:
		p.HostStar.Radius = planets.Float(f)
	case planets.FieldStarTemperature:
		p.HostStar.Temperature = planets.Float(f)
	case planets.FieldStarLuminosity:
		p.HostStar.Luminosity = planets.Float(f)
	case planets.FieldStarMetallicity:
		p.HostStar.Metallicity = planets.Float(f)
	case planets.FieldStarAge:
		p.HostStar.Age = planets.Float(f)
	case planets.FieldStarDistance:
		p.HostStar.Distance = planets.Float(f)
	case planets.FieldDiscoveryYear:
		p.Discovery.Year = planets.Int(int(math.Round(f)))
	}
}

// sortSources orders source IDs lexically for stable metadata.
func sortSources(ids []planets.SourceID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
