package reconcile

import (
	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// options configures a reconciler.
type options struct {
	strategy Strategy
	priority []planets.SourceID
	tracking bool
}

func defaultOptions() *options {
	priority := planets.DefaultPriority()
	return &options{
		strategy: NewSourcePriorityStrategy(priority),
		priority: priority,
		tracking: false,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithPriority sets the source priority order. Earlier sources win conflicts.
func WithPriority(priority []planets.SourceID) Option {
	return func(o *options) error {
		if len(priority) == 0 {
			return &errors.ValidationError{
				Field:   "priority",
				Message: "cannot be empty",
			}
		}
		seen := make(map[planets.SourceID]bool, len(priority))
		for _, src := range priority {
			if !src.IsValid() {
				return &errors.ValidationError{
					Field:   "priority",
					Value:   src.String(),
					Message: "unknown source",
				}
			}
			if seen[src] {
				return &errors.ValidationError{
					Field:   "priority",
					Value:   src.String(),
					Message: "duplicate source",
				}
			}
			seen[src] = true
		}

		o.priority = append([]planets.SourceID(nil), priority...)
		// Keep a priority-driven strategy in sync with the new order.
		if o.strategy == nil || o.strategy.Type() == StrategyTypeSourcePriority {
			o.strategy = NewSourcePriorityStrategy(o.priority)
		}
		return nil
	}
}

// WithStrategy sets the conflict resolution strategy.
func WithStrategy(strategy Strategy) Option {
	return func(o *options) error {
		if strategy == nil {
			return &errors.ValidationError{
				Field:   "strategy",
				Message: "cannot be nil",
			}
		}
		o.strategy = strategy
		return nil
	}
}

// WithProvenance enables per-field provenance tracking.
func WithProvenance(enabled bool) Option {
	return func(o *options) error {
		o.tracking = enabled
		return nil
	}
}
