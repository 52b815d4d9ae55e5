package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Result represents the outcome of a reconciliation.
type Result struct {
	// Planet is the canonical record assembled from the winning values.
	Planet planets.Planet

	// SourcesUsed lists sources that supplied at least one winning value,
	// in the order they first contributed.
	SourcesUsed []planets.SourceID

	// FieldSources records which source won each resolved field.
	FieldSources map[planets.Field]planets.SourceID

	// MissingFields lists canonical fields no source could supply. A
	// non-empty slice means the record is partial; it is metadata, not an
	// error.
	MissingFields []planets.Field

	// Warnings contains non-critical issues (duplicate or unknown sources).
	Warnings []string

	// Provenance holds per-field audit details when tracking is enabled.
	Provenance ProvenanceMap

	// Metadata about the reconciliation run.
	Metadata Metadata
}

// Metadata contains details about the reconciliation process.
type Metadata struct {
	// StartTime when reconciliation started
	StartTime time.Time

	// EndTime when reconciliation completed
	EndTime time.Time

	// Duration of the reconciliation
	Duration time.Duration

	// Sources that supplied records, lexically ordered
	Sources []planets.SourceID

	// Strategy used to resolve conflicts
	Strategy StrategyType

	// Priority order in effect
	Priority []planets.SourceID
}

// Complete reports whether every canonical field was resolved.
func (r *Result) Complete() bool {
	return len(r.MissingFields) == 0
}

// HasWarnings returns true if there were warnings.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Resolved returns the number of canonical fields that found a value.
func (r *Result) Resolved() int {
	return len(r.FieldSources)
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	name := r.Planet.Name
	if name == "" {
		name = "(unnamed)"
	}

	sources := make([]string, 0, len(r.SourcesUsed))
	for _, s := range r.SourcesUsed {
		sources = append(sources, s.String())
	}

	if r.Complete() {
		return fmt.Sprintf("%s: all %d fields resolved from %s", name, r.Resolved(), strings.Join(sources, ", "))
	}
	return fmt.Sprintf("%s: %d fields resolved from %s, %d missing", name, r.Resolved(), strings.Join(sources, ", "), len(r.MissingFields))
}
