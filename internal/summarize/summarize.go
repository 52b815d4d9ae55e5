// Package summarize generates natural-language colonization briefs for
// planet profiles through pluggable LLM backends.
package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/exoatlas/exoatlas/pkg/constants"
	"github.com/exoatlas/exoatlas/pkg/habitability"
	"github.com/exoatlas/exoatlas/pkg/planets"
)

// Generation settings shared by all backends.
const (
	summaryTemperature = 0.7
	summaryTopP        = 0.9
)

// Request carries the reconciled profile a summarizer writes about.
type Request struct {
	Planet       *planets.Planet
	Habitability *habitability.Result
}

// Summarizer writes a colonization brief for a planet profile.
type Summarizer interface {
	// Name identifies the backend, for logs and response metadata.
	Name() string

	// Available reports whether the backend can currently serve
	// requests.
	Available(ctx context.Context) bool

	// Summarize generates the brief. The returned text is trimmed and
	// never empty on success.
	Summarize(ctx context.Context, req Request) (string, error)
}

// BuildPrompt renders the analysis prompt shared by all backends. The
// profile's parameter groups are inlined as JSON so the model sees
// exactly the fields the catalogs agreed on, nulls omitted.
func BuildPrompt(req Request) string {
	planet := req.Planet
	if planet == nil {
		planet = &planets.Planet{}
	}
	score := req.Habitability
	if score == nil {
		score = &habitability.Result{}
	}

	name := planet.Name
	if name == "" {
		name = "Unknown"
	}

	var b strings.Builder
	b.WriteString("You are an expert astrobiologist and planetary scientist. ")
	b.WriteString("Analyze this exoplanet as a colonization candidate.\n\n")

	fmt.Fprintf(&b, "PLANET: %s\n\n", name)

	b.WriteString("HABITABILITY ASSESSMENT:\n")
	fmt.Fprintf(&b, "- Total score: %d/100\n", score.TotalScore)
	fmt.Fprintf(&b, "- Survival chance: %.2f%%\n", score.SurvivalChance)
	fmt.Fprintf(&b, "- Category: %s\n\n", score.Category)

	risks := score.Risks
	if risks == nil {
		risks = []string{}
	}

	section(&b, "PHYSICAL PARAMETERS", planet.Physical)
	section(&b, "ORBITAL PARAMETERS", planet.Orbital)
	section(&b, "HOST STAR", planet.HostStar)
	section(&b, "DISCOVERY", planet.Discovery)
	section(&b, "IDENTIFIED RISKS", risks)

	b.WriteString("Provide a structured analysis covering:\n")
	b.WriteString("1. Classification: planet type and closest Solar System analogue\n")
	b.WriteString("2. Environment: temperature regime, surface gravity, radiation exposure\n")
	b.WriteString("3. Habitability: liquid water prospects, atmosphere, tidal effects\n")
	b.WriteString("4. Colonization outlook: required equipment, main challenges, long-term viability\n")
	b.WriteString("5. Scientific significance: unique features and research value\n\n")
	b.WriteString("Keep the response structured and scientific but accessible.\n")

	return truncatePrompt(b.String())
}

func section(b *strings.Builder, heading string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		data = []byte("{}")
	}
	fmt.Fprintf(b, "%s:\n%s\n\n", heading, data)
}

// truncatePrompt caps the prompt so an unusually dense profile cannot
// blow past backend context limits.
func truncatePrompt(prompt string) string {
	if len(prompt) <= constants.MaxSummaryPromptLength {
		return prompt
	}
	return prompt[:constants.MaxSummaryPromptLength]
}
