package sources

import (
	"github.com/exoatlas/exoatlas/internal/sources/exoplaneteu"
	"github.com/exoatlas/exoatlas/internal/sources/nasa"
	"github.com/exoatlas/exoatlas/internal/sources/simbad"
	"github.com/exoatlas/exoatlas/internal/transport"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Default returns the standard catalog clients in default source
// priority order, sharing one transport client.
func Default(t *transport.Client) []Client {
	return []Client{
		nasa.New(t),
		simbad.New(t),
		exoplaneteu.New(t),
	}
}

// IDs returns the source IDs of the given clients, in client order.
func IDs(clients []Client) []planets.SourceID {
	ids := make([]planets.SourceID, len(clients))
	for i, c := range clients {
		ids[i] = c.ID()
	}
	return ids
}
