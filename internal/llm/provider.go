// Package llm turns analytics reports into short prose narratives via an
// optional language-model provider. Narration is strictly additive: it
// runs after the numbers are computed and can never change them, and a
// narration failure never fails the underlying query.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider generates a narrative from report facts.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Narrate turns the request's facts into a short prose summary.
	Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error)
}

// NarrateRequest carries the already-computed facts of one report. The
// model is instructed to restate these facts only, never to add numbers
// of its own.
type NarrateRequest struct {
	// Subject names what the report is about (a character tag, a
	// head-to-head pairing).
	Subject string

	// Facts are the computed data points, one plain statement each.
	Facts []string

	// Model overrides the configured model when non-empty.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// NarrateResponse is the generated narrative.
type NarrateResponse struct {
	Narrative  string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai", "ollama" or "" (disabled).
	Provider string

	// Model name (provider-specific).
	Model string

	// APIKey for OpenAI.
	APIKey string

	// BaseURL for custom endpoints (Ollama, OpenAI-compatible proxies).
	BaseURL string

	// Timeout for API requests, in seconds.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int
}

// BuildPrompt constructs the narration prompt. The fact list is the only
// data the model may use.
func BuildPrompt(req NarrateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Write a short narrative (3-5 sentences) about the popularity of %s on an artwork tagging site, using ONLY the facts below.

RULES:
1. Restate the facts in plain prose. Do not invent numbers, dates or rankings.
2. Do not speculate about causes unless a fact states one.
3. No headings, no bullet points, no emoji.

Facts:
`, req.Subject)
	for _, fact := range req.Facts {
		fmt.Fprintf(&b, "- %s\n", fact)
	}
	return b.String()
}
