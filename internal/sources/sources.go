// Package sources defines the catalog source clients and the concurrent
// fan-out that queries them. Each client fetches one catalog's raw
// record for a planet; failures are per-source and never abort the
// other fetches.
package sources

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/exoatlas/exoatlas/pkg/constants"
	"github.com/exoatlas/exoatlas/pkg/logging"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Client fetches one catalog's raw payload for a named planet.
type Client interface {
	// ID identifies which catalog this client queries.
	ID() planets.SourceID

	// Fetch returns the catalog's raw record for the named planet as a
	// decoded JSON object. A NotFoundError means the catalog has no
	// entry; any other error means the source itself failed.
	Fetch(ctx context.Context, name string) (map[string]any, error)
}

// Result is one source's fetch outcome. Payload is nil when Err is set.
type Result struct {
	Source  planets.SourceID
	Payload map[string]any
	Err     error
}

// FetchAll queries every client concurrently and returns one Result per
// client, in client order regardless of completion order. Each fetch
// gets its own timeout; a slow or failing source never blocks or fails
// the others.
func FetchAll(ctx context.Context, clients []Client, name string) []Result {
	results := make([]Result, len(clients))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MaxConcurrentSources)
	for i, client := range clients {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, constants.SourceFetchTimeout)
			defer cancel()

			log := logging.Ctx(fetchCtx).With().
				Str("source", client.ID().String()).
				Str("planet", name).
				Logger()

			payload, err := client.Fetch(fetchCtx, name)
			if err != nil {
				log.Debug().Err(err).Msg("source fetch failed")
			} else {
				log.Debug().Int("fields", len(payload)).Msg("source fetch succeeded")
			}

			results[i] = Result{Source: client.ID(), Payload: payload, Err: err}
			return nil
		})
	}
	_ = g.Wait() // fetch errors are carried in the results, never returned

	return results
}
