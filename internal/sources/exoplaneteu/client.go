// Package exoplaneteu queries the Exoplanet.eu catalog API.
package exoplaneteu

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/exoatlas/exoatlas/internal/transport"
	"github.com/exoatlas/exoatlas/pkg/constants"
	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Client queries the Exoplanet.eu catalog.
type Client struct {
	transport *transport.Client
	baseURL   string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// New creates an Exoplanet.eu client.
func New(t *transport.Client, opts ...Option) *Client {
	c := &Client{
		transport: t,
		baseURL:   constants.ExoplanetEUBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies this client's catalog.
func (c *Client) ID() planets.SourceID {
	return planets.SourceExoplanetEU
}

// envelope is the paginated response wrapper the catalog API returns.
type envelope struct {
	Count   int              `json:"count"`
	Results []map[string]any `json:"results"`
}

// Fetch returns the catalog entry for the named planet. The API wraps
// results in a paginated envelope; an empty page or a 404 both mean
// the planet is not in the catalog.
func (c *Client) Fetch(ctx context.Context, name string) (map[string]any, error) {
	source := planets.SourceExoplanetEU.String()
	endpoint := c.baseURL + "/exoplanet/"

	params := url.Values{}
	params.Set("name", name)
	params.Set("limit", strconv.Itoa(1))

	resp, err := c.transport.Get(ctx, endpoint, params)
	if err != nil {
		return nil, errors.WrapAPI(source, 0, err)
	}

	var page envelope
	if err := transport.DecodeResponse(source, endpoint, resp, &page); err != nil {
		var apiErr *errors.APIError
		if stderrors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, errors.NewNotFoundError("planet", name)
		}
		return nil, err
	}

	if page.Count == 0 || len(page.Results) == 0 {
		return nil, errors.NewNotFoundError("planet", name)
	}
	return page.Results[0], nil
}
