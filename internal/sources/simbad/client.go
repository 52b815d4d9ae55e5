// Package simbad resolves host stars through the SIMBAD sim-id service.
// SIMBAD knows stars, not planets, so lookups strip the planet's
// component letter and query the host. The service answers some bad
// identifiers with an HTML error page despite the JSON output format,
// which is treated as a parse failure rather than a result.
package simbad

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/exoatlas/exoatlas/internal/transport"
	"github.com/exoatlas/exoatlas/pkg/constants"
	"github.com/exoatlas/exoatlas/pkg/errors"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

const maxRawSnippet = 120

// Client queries the SIMBAD astronomical database.
type Client struct {
	transport *transport.Client
	baseURL   string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the SIMBAD base URL, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// New creates a SIMBAD client.
func New(t *transport.Client, opts ...Option) *Client {
	c := &Client{
		transport: t,
		baseURL:   constants.SIMBADBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies this client's catalog.
func (c *Client) ID() planets.SourceID {
	return planets.SourceSIMBAD
}

// Fetch resolves the planet's host star and returns SIMBAD's
// identification record for it.
func (c *Client) Fetch(ctx context.Context, name string) (map[string]any, error) {
	source := planets.SourceSIMBAD.String()
	host := HostName(name)
	endpoint := c.baseURL + "/sim-id"

	params := url.Values{}
	params.Set("Ident", host)
	params.Set("output.format", "json")

	resp, err := c.transport.Get(ctx, endpoint, params)
	if err != nil {
		return nil, errors.WrapAPI(source, 0, err)
	}

	body, err := transport.ReadResponse(source, endpoint, resp)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.NewNotFoundError("star", host)
	}
	if trimmed[0] == '<' {
		return nil, errors.NewParseError(source, "response", rawSnippet(trimmed), "HTML response, expected JSON", nil)
	}

	var fields map[string]any
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, errors.WrapParse(source, "response", rawSnippet(trimmed), err)
	}
	if len(fields) == 0 {
		return nil, errors.NewNotFoundError("star", host)
	}
	return fields, nil
}

// HostName derives the host star identifier from a planet name by
// dropping a trailing single-letter component designation. Planet
// components start at b, so "Kepler-442 b" resolves the star
// "Kepler-442" while a bare star name passes through unchanged.
func HostName(planet string) string {
	trimmed := strings.TrimSpace(planet)
	i := strings.LastIndexByte(trimmed, ' ')
	if i < 0 {
		return trimmed
	}
	suffix := trimmed[i+1:]
	if len(suffix) != 1 {
		return trimmed
	}
	ch := suffix[0] | 0x20
	if ch < 'b' || ch > 'z' {
		return trimmed
	}
	return strings.TrimSpace(trimmed[:i])
}

func rawSnippet(body []byte) string {
	if len(body) > maxRawSnippet {
		return string(body[:maxRawSnippet]) + "..."
	}
	return string(body)
}
