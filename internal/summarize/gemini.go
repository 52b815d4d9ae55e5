package summarize

import (
	"context"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/exoatlas/exoatlas/pkg/errors"
)

const defaultGeminiModel = "gemini-2.0-flash"

// Gemini summarizes through the Google Gemini API.
type Gemini struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// GeminiOption configures a Gemini summarizer.
type GeminiOption func(*Gemini)

// WithGeminiModel overrides the model used for generation.
func WithGeminiModel(model string) GeminiOption {
	return func(g *Gemini) { g.model = model }
}

// NewGemini creates a Gemini-backed summarizer. The API key is
// required; the underlying client is created lazily on first use.
func NewGemini(apiKey string, opts ...GeminiOption) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.NewConfigError("summarizer", "gemini API key required", nil)
	}
	g := &Gemini{
		apiKey: apiKey,
		model:  defaultGeminiModel,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Name implements Summarizer.
func (g *Gemini) Name() string { return "gemini" }

// Available implements Summarizer. The Gemini backend is remote and
// keyed, so availability is a configuration check; requests can still
// fail at generation time.
func (g *Gemini) Available(_ context.Context) bool {
	return g.apiKey != ""
}

func (g *Gemini) ensureClient(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			APIKey:  g.apiKey,
		})
	})
	return g.client, g.initErr
}

// Summarize implements Summarizer.
func (g *Gemini) Summarize(ctx context.Context, req Request) (string, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", errors.WrapAPI(g.Name(), 0, err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(BuildPrompt(req)), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](summaryTemperature),
		TopP:        genai.Ptr[float32](summaryTopP),
	})
	if err != nil {
		return "", errors.WrapAPI(g.Name(), 0, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.NewAPIError(g.Name(), 0, "model returned an empty response")
	}
	return text, nil
}
