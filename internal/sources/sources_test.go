package sources

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exoatlas/exoatlas/internal/transport"
	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

type fakeClient struct {
	id      planets.SourceID
	payload map[string]any
	err     error
	delay   time.Duration
}

func (f *fakeClient) ID() planets.SourceID { return f.id }

func (f *fakeClient) Fetch(ctx context.Context, name string) (map[string]any, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

// TestFetchAllPreservesClientOrder pins results to client order even
// when sources complete out of order.
func TestFetchAllPreservesClientOrder(t *testing.T) {
	clients := []Client{
		&fakeClient{id: planets.SourceNASA, payload: map[string]any{"pl_name": "Kepler-442 b"}, delay: 30 * time.Millisecond},
		&fakeClient{id: planets.SourceSIMBAD, payload: map[string]any{"main_id": "Kepler-442"}},
		&fakeClient{id: planets.SourceExoplanetEU, payload: map[string]any{"name": "Kepler-442 b"}, delay: 10 * time.Millisecond},
	}

	results := FetchAll(context.Background(), clients, "Kepler-442 b")
	require.Len(t, results, 3)

	assert.Equal(t, planets.SourceNASA, results[0].Source)
	assert.Equal(t, planets.SourceSIMBAD, results[1].Source)
	assert.Equal(t, planets.SourceExoplanetEU, results[2].Source)

	assert.Equal(t, "Kepler-442 b", results[0].Payload["pl_name"])
	assert.Equal(t, "Kepler-442", results[1].Payload["main_id"])
	assert.Equal(t, "Kepler-442 b", results[2].Payload["name"])
}

// TestFetchAllToleratesFailures keeps one source's failure out of the
// other sources' results.
func TestFetchAllToleratesFailures(t *testing.T) {
	clients := []Client{
		&fakeClient{id: planets.SourceNASA, payload: map[string]any{"pl_name": "Kepler-442 b"}},
		&fakeClient{id: planets.SourceSIMBAD, err: errors.NewNotFoundError("star", "Kepler-442")},
		&fakeClient{id: planets.SourceExoplanetEU, err: errors.NewAPIError("exoplanet_eu", 503, "maintenance")},
	}

	results := FetchAll(context.Background(), clients, "Kepler-442 b")
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Payload)

	require.Error(t, results[1].Err)
	assert.True(t, errors.IsNotFound(results[1].Err))
	assert.Nil(t, results[1].Payload)

	require.Error(t, results[2].Err)
	assert.True(t, errors.IsSourceUnavailable(results[2].Err))
	assert.Nil(t, results[2].Payload)
}

func TestFetchAllNoClients(t *testing.T) {
	results := FetchAll(context.Background(), nil, "Kepler-442 b")
	assert.Empty(t, results)
}

func TestFetchAllCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clients := []Client{
		&fakeClient{id: planets.SourceNASA, payload: map[string]any{}, delay: 50 * time.Millisecond},
		&fakeClient{id: planets.SourceSIMBAD, payload: map[string]any{}, delay: 50 * time.Millisecond},
	}

	results := FetchAll(ctx, clients, "Kepler-442 b")
	require.Len(t, results, 2)
	for _, res := range results {
		require.Error(t, res.Err)
		assert.True(t, stderrors.Is(res.Err, context.Canceled))
	}
}

func TestDefaultClientOrder(t *testing.T) {
	clients := Default(transport.New())
	assert.Equal(t, []planets.SourceID{
		planets.SourceNASA,
		planets.SourceSIMBAD,
		planets.SourceExoplanetEU,
	}, IDs(clients))
}
