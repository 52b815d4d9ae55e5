package reconcile

import (
	"fmt"
	"sort"

	"github.com/exoatlas/exoatlas/pkg/planets"
)

// StrategyType represents the type of conflict resolution strategy.
type StrategyType string

// String returns the string representation of a strategy type.
func (s StrategyType) String() string {
	return string(s)
}

const (
	// StrategyTypeSourcePriority resolves conflicts by a fixed source order.
	StrategyTypeSourcePriority StrategyType = "source-priority"
	// StrategyTypeCustom delegates resolution to a caller-supplied function.
	StrategyTypeCustom StrategyType = "custom"
)

// Strategy defines how a field conflict between sources is resolved.
type Strategy interface {
	// Type returns the strategy type
	Type() StrategyType

	// Description returns a human-readable description
	Description() string

	// Resolve picks the winning value for a field. It must be deterministic:
	// the same values map always yields the same answer regardless of map
	// iteration order.
	Resolve(field planets.Field, values map[planets.SourceID]planets.Value) (planets.Value, planets.SourceID, string)
}

// SourcePriorityStrategy resolves conflicts using a fixed source precedence
// order. Sources earlier in the priority slice beat sources later in it.
type SourcePriorityStrategy struct {
	priority []planets.SourceID
}

// NewSourcePriorityStrategy creates a new source priority strategy.
// The priority slice determines precedence: earlier elements win.
func NewSourcePriorityStrategy(priority []planets.SourceID) Strategy {
	return &SourcePriorityStrategy{
		priority: append([]planets.SourceID(nil), priority...),
	}
}

// Type returns the strategy type.
func (s *SourcePriorityStrategy) Type() StrategyType {
	return StrategyTypeSourcePriority
}

// Description returns a human-readable description.
func (s *SourcePriorityStrategy) Description() string {
	return fmt.Sprintf("Resolves conflicts using source priority order: %v", s.priority)
}

// Resolve walks the priority order and takes the first present value.
func (s *SourcePriorityStrategy) Resolve(_ planets.Field, values map[planets.SourceID]planets.Value) (planets.Value, planets.SourceID, string) {
	for _, source := range s.priority {
		if value, exists := values[source]; exists && value.IsPresent() {
			return value, source, fmt.Sprintf("selected by source priority (%s)", source)
		}
	}

	// A value from a source outside the priority list. Walk them in lexical
	// order so resolution stays deterministic.
	var rest []planets.SourceID
	for source := range values {
		rest = append(rest, source)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, source := range rest {
		if value := values[source]; value.IsPresent() {
			return value, source, "source not in priority order, using lexical order"
		}
	}

	return planets.Value{}, "", "no value available"
}

// ConflictResolver is a function that resolves a field conflict.
type ConflictResolver func(field planets.Field, values map[planets.SourceID]planets.Value) (planets.Value, planets.SourceID, string)

// CustomStrategy allows custom conflict resolution logic.
type CustomStrategy struct {
	description string
	resolver    ConflictResolver
}

// NewCustomStrategy creates a strategy backed by the given resolver.
func NewCustomStrategy(description string, resolver ConflictResolver) Strategy {
	return &CustomStrategy{
		description: description,
		resolver:    resolver,
	}
}

// Type returns the strategy type.
func (s *CustomStrategy) Type() StrategyType {
	return StrategyTypeCustom
}

// Description returns a human-readable description.
func (s *CustomStrategy) Description() string {
	return s.description
}

// Resolve delegates to the custom resolver.
func (s *CustomStrategy) Resolve(field planets.Field, values map[planets.SourceID]planets.Value) (planets.Value, planets.SourceID, string) {
	if s.resolver != nil {
		return s.resolver(field, values)
	}
	return planets.Value{}, "", "custom resolver not defined"
}
