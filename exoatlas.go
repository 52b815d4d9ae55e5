// Package exoatlas aggregates exoplanet catalogs into reconciled planet
// profiles with habitability assessments.
//
// A lookup queries the configured catalog sources concurrently,
// normalizes each raw record into canonical fields, reconciles
// conflicts under a source priority order, and scores the merged
// planet for colonization potential:
//
//	atlas, err := exoatlas.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	profile, err := atlas.Lookup(ctx, "Kepler-442 b")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(profile.Habitability.Category)
//
// Individual source failures are tolerated: a profile is built from
// whatever catalogs answered, and only a miss across every source
// surfaces as a NotFoundError.
package exoatlas

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/exoatlas/exoatlas/internal/sources"
	"github.com/exoatlas/exoatlas/internal/summarize"
	"github.com/exoatlas/exoatlas/internal/transport"
	"github.com/exoatlas/exoatlas/pkg/habitability"
	"github.com/exoatlas/exoatlas/pkg/planets"
	"github.com/exoatlas/exoatlas/pkg/reconcile"
)

// Atlas looks up and compares exoplanet profiles across catalogs.
type Atlas interface {
	// Lookup builds the reconciled, scored profile for a planet.
	Lookup(ctx context.Context, name string, opts ...LookupOption) (*Profile, error)

	// Habitability returns only the habitability assessment for a
	// planet.
	Habitability(ctx context.Context, name string) (*habitability.Result, error)

	// Compare looks up two planets and ranks them by habitability.
	Compare(ctx context.Context, nameA, nameB string) (*Comparison, error)

	// Sources returns the source priority order used to reconcile
	// conflicting fields.
	Sources() []planets.SourceID
}

// atlas is the internal implementation of the Atlas interface.
type atlas struct {
	clients    []sources.Client
	reconciler reconcile.Reconciler
	summarizer summarize.Summarizer
	priority   []planets.SourceID
	config     *config
	logger     *zerolog.Logger
}

// New creates an Atlas with the given options. Without options it
// queries the standard catalogs (NASA Exoplanet Archive, SIMBAD,
// Exoplanet.eu) and reconciles under the default priority order.
func New(opts ...Option) (Atlas, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	clients := cfg.clients
	if clients == nil {
		clients = sources.Default(transport.New(transport.WithTimeout(cfg.httpTimeout)))
	}

	priority := cfg.priority
	if priority == nil {
		priority = planets.DefaultPriority()
	}

	reconciler, err := reconcile.New(reconcile.WithPriority(priority))
	if err != nil {
		return nil, err
	}

	return &atlas{
		clients:    clients,
		reconciler: reconciler,
		summarizer: cfg.summarizer,
		priority:   priority,
		config:     cfg,
		logger:     cfg.logger,
	}, nil
}

// Sources returns the source priority order used to reconcile
// conflicting fields.
func (a *atlas) Sources() []planets.SourceID {
	out := make([]planets.SourceID, len(a.priority))
	copy(out, a.priority)
	return out
}
