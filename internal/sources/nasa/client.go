// Package nasa queries the NASA Exoplanet Archive through its TAP sync
// service. Lookups hit the ps table and take the default parameter set
// row for the named planet.
package nasa

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/exoatlas/exoatlas/internal/transport"
	"github.com/exoatlas/exoatlas/pkg/constants"
	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// columns are the ps-table columns the normalizer understands, in the
// order they appear in the ADQL query.
var columns = []string{
	"pl_name", "hostname",
	"pl_bmasse", "pl_bmassj", "pl_rade", "pl_radj", "pl_dens", "pl_eqt",
	"pl_orbper", "pl_orbsmax", "pl_orbeccen", "pl_orbincl",
	"st_spectype", "st_mass", "st_rad", "st_teff", "st_lum", "st_met", "st_age",
	"sy_dist", "discoverymethod", "disc_year", "disc_facility",
}

// Client queries the NASA Exoplanet Archive.
type Client struct {
	transport *transport.Client
	baseURL   string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the TAP endpoint, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// New creates a NASA Exoplanet Archive client.
func New(t *transport.Client, opts ...Option) *Client {
	c := &Client{
		transport: t,
		baseURL:   constants.NASAExoplanetArchiveURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies this client's catalog.
func (c *Client) ID() planets.SourceID {
	return planets.SourceNASA
}

// Fetch returns the archive's default parameter set row for the named
// planet. The archive answers an unknown planet with an empty result
// set, which maps to a NotFoundError.
func (c *Client) Fetch(ctx context.Context, name string) (map[string]any, error) {
	source := planets.SourceNASA.String()

	params := url.Values{}
	params.Set("query", Query(name))
	params.Set("format", "json")

	resp, err := c.transport.Get(ctx, c.baseURL, params)
	if err != nil {
		return nil, errors.WrapAPI(source, 0, err)
	}

	var rows []map[string]any
	if err := transport.DecodeResponse(source, c.baseURL, resp, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("planet", name)
	}
	return rows[0], nil
}

// Query builds the ADQL lookup for a planet name. Matching is
// case-insensitive and restricted to each planet's default parameter
// set, so at most one row comes back.
func Query(name string) string {
	return fmt.Sprintf(
		"select %s from ps where lower(pl_name) = lower('%s') and default_flag = 1",
		strings.Join(columns, ","), escape(name),
	)
}

// escape doubles single quotes so a planet name is a safe ADQL string
// literal.
func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
