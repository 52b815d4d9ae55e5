package summarize

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/exoatlas/exoatlas/internal/transport"
	"github.com/exoatlas/exoatlas/pkg/constants"
	"github.com/exoatlas/exoatlas/pkg/errors"
)

const (
	defaultOllamaModel = "gemma2"

	// ollamaHealthTimeout bounds the /api/tags probe so a dead local
	// daemon fails fast instead of eating the whole summary budget.
	ollamaHealthTimeout = 5 * time.Second
)

// Ollama summarizes through a local Ollama instance.
type Ollama struct {
	transport *transport.Client
	baseURL   string
	model     string
}

// OllamaOption configures an Ollama summarizer.
type OllamaOption func(*Ollama)

// WithOllamaURL overrides the Ollama endpoint.
func WithOllamaURL(u string) OllamaOption {
	return func(o *Ollama) { o.baseURL = strings.TrimSuffix(u, "/") }
}

// WithOllamaModel overrides the model used for generation.
func WithOllamaModel(model string) OllamaOption {
	return func(o *Ollama) { o.model = model }
}

// NewOllama creates an Ollama-backed summarizer.
func NewOllama(opts ...OllamaOption) *Ollama {
	o := &Ollama{
		transport: transport.New(transport.WithTimeout(constants.SummaryTimeout)),
		baseURL:   constants.DefaultOllamaURL,
		model:     defaultOllamaModel,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Name implements Summarizer.
func (o *Ollama) Name() string { return "ollama" }

// Available probes the daemon's tag listing with a short timeout.
func (o *Ollama) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, ollamaHealthTimeout)
	defer cancel()

	endpoint := o.baseURL + "/api/tags"
	resp, err := o.transport.Get(ctx, endpoint, nil)
	if err != nil {
		return false
	}
	_, err = transport.ReadResponse(o.Name(), endpoint, resp)
	return err == nil
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Summarize implements Summarizer. The daemon is health-checked first
// so an unreachable instance surfaces as source-unavailable rather
// than a slow connection error.
func (o *Ollama) Summarize(ctx context.Context, req Request) (string, error) {
	if !o.Available(ctx) {
		return "", errors.NewAPIError(o.Name(), http.StatusServiceUnavailable, "service not accessible")
	}

	endpoint := o.baseURL + "/api/generate"
	resp, err := o.transport.PostJSON(ctx, endpoint, generateRequest{
		Model:  o.model,
		Prompt: BuildPrompt(req),
		Stream: false,
		Options: generateOptions{
			Temperature: summaryTemperature,
			TopP:        summaryTopP,
		},
	})
	if err != nil {
		return "", errors.WrapAPI(o.Name(), 0, err)
	}

	var out generateResponse
	if err := transport.DecodeResponse(o.Name(), endpoint, resp, &out); err != nil {
		return "", err
	}

	text := strings.TrimSpace(out.Response)
	if text == "" {
		return "", errors.NewAPIError(o.Name(), 0, "model returned an empty response")
	}
	return text, nil
}
