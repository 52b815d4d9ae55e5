package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exoatlas/exoatlas/pkg/errors"
)

func TestGetSendsParamsAndHeaders(t *testing.T) {
	var gotQuery url.Values
	var gotAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client := New()
	params := url.Values{}
	params.Set("query", "select pl_name from ps")
	params.Set("format", "json")

	resp, err := client.Get(context.Background(), server.URL, params)
	require.NoError(t, err)

	var target map[string]any
	require.NoError(t, DecodeResponse("nasa", server.URL, resp, &target))

	assert.Equal(t, "select pl_name from ps", gotQuery.Get("query"))
	assert.Equal(t, "json", gotQuery.Get("format"))
	assert.Equal(t, defaultUserAgent, gotAgent)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, true, target["ok"])
}

func TestPostJSONEncodesBody(t *testing.T) {
	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New()
	resp, err := client.PostJSON(context.Background(), server.URL, map[string]any{"model": "gemma2", "stream": false})
	require.NoError(t, err)
	require.NoError(t, DecodeResponse("ollama", server.URL, resp, &map[string]any{}))

	assert.Equal(t, "application/json", gotContentType)
	assert.Contains(t, gotBody, `"model":"gemma2"`)
	assert.Contains(t, gotBody, `"stream":false`)
}

func TestReadResponseStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"rate limited", http.StatusTooManyRequests, func(t *testing.T, err error) {
			assert.True(t, errors.IsRateLimited(err))
		}},
		{"server error", http.StatusServiceUnavailable, func(t *testing.T, err error) {
			assert.True(t, errors.IsSourceUnavailable(err))
		}},
		{"client error", http.StatusBadRequest, func(t *testing.T, err error) {
			var apiErr *errors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
			assert.False(t, errors.IsRateLimited(err))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`catalog says no`))
			}))
			defer server.Close()

			client := New()
			resp, err := client.Get(context.Background(), server.URL, nil)
			require.NoError(t, err)

			_, err = ReadResponse("nasa", server.URL, resp)
			require.Error(t, err)
			tt.check(t, err)

			var apiErr *errors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "nasa", apiErr.Source)
			assert.Contains(t, apiErr.Message, "catalog says no")
		})
	}
}

func TestDecodeResponseMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rows": [truncated`))
	}))
	defer server.Close()

	client := New()
	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)

	var target map[string]any
	err = DecodeResponse("simbad", server.URL, resp, &target)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedValue(err))
}

func TestSnippetTruncates(t *testing.T) {
	long := strings.Repeat("x", maxErrorBody+100)
	got := snippet([]byte(long))
	assert.Len(t, got, maxErrorBody+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestWithTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := New(WithTimeout(50 * time.Millisecond))
	_, err := client.Get(context.Background(), server.URL, nil)
	require.Error(t, err)
}
