package reconcile

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/exoatlas/exoatlas/pkg/planets"
)

// ProvenanceInfo tracks the origin of one resolved field value.
type ProvenanceInfo struct {
	Source    planets.SourceID // Source that provided the value
	Field     planets.Field    // Canonical field path
	Value     planets.Value    // The winning value
	Timestamp time.Time        // When the value was selected
	Reason    string           // Why this value won
}

// ProvenanceMap tracks provenance for every resolved field of a record.
type ProvenanceMap map[planets.Field]ProvenanceInfo

// Fields returns the tracked fields in canonical declaration order.
func (m ProvenanceMap) Fields() []planets.Field {
	fields := make([]planets.Field, 0, len(m))
	for _, f := range planets.Fields() {
		if _, ok := m[f]; ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// BySource groups tracked fields by the source that won them.
func (m ProvenanceMap) BySource() map[planets.SourceID][]planets.Field {
	out := make(map[planets.SourceID][]planets.Field)
	for _, f := range m.Fields() {
		info := m[f]
		out[info.Source] = append(out[info.Source], f)
	}
	return out
}

// Report renders a human-readable provenance report.
func (m ProvenanceMap) Report() string {
	if len(m) == 0 {
		return "no provenance recorded"
	}

	var b strings.Builder
	b.WriteString("Field Provenance\n")
	b.WriteString("----------------\n")
	for _, f := range m.Fields() {
		info := m[f]
		fmt.Fprintf(&b, "%-28s %-14s %s\n", f, info.Source, info.Reason)
	}

	bySource := m.BySource()
	sources := make([]planets.SourceID, 0, len(bySource))
	for s := range bySource {
		sources = append(sources, s)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	b.WriteString("\nPer source:\n")
	for _, s := range sources {
		fmt.Fprintf(&b, "  %s: %d fields\n", s, len(bySource[s]))
	}
	return b.String()
}
