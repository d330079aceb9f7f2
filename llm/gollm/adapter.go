// Package gollm provides a FactGenerator implementation backed by the gollm
// library.
package gollm

import (
	"context"
	"fmt"
	"strings"

	"github.com/teilomillet/gollm"
)

// factPrompt instructs the model to produce exactly one short, safe cultural
// fact. Kept deliberately narrow so the answer fits the summary template.
const factPrompt = `You are a concise cultural assistant. Provide ONE interesting, specific cultural fact about %s.
Constraints:
- 1 short paragraph (<= 60 words).
- Avoid politics, NSFW, stereotypes, or unverified claims.
- Prefer festivals, food, arts, etiquette, traditions, or language.
- If ambiguity, assume the most likely sovereign state.
- No emojis.`

// Adapter implements llm.FactGenerator using the gollm library.
type Adapter struct {
	llmClient gollm.LLM
}

// NewAdapter creates a new gollm adapter.
func NewAdapter(opts ...Option) (*Adapter, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	gollmOpts := []gollm.ConfigOption{
		gollm.SetProvider(options.Provider),
		gollm.SetModel(options.Model),
		gollm.SetMaxTokens(options.MaxTokens),
	}

	// API key is not needed for local providers such as Ollama.
	if options.APIKey != "" {
		gollmOpts = append(gollmOpts, gollm.SetAPIKey(options.APIKey))
	}

	llmClient, err := gollm.NewLLM(gollmOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gollm client: %w", err)
	}

	return &Adapter{llmClient: llmClient}, nil
}

// GenerateFact implements llm.FactGenerator.
func (a *Adapter) GenerateFact(ctx context.Context, country string) (string, error) {
	prompt := gollm.NewPrompt(fmt.Sprintf(factPrompt, country))

	response, err := a.llmClient.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("gollm generation failed: %w", err)
	}

	text := strings.TrimSpace(response)
	if text == "" {
		return "", fmt.Errorf("gollm returned an empty response")
	}

	return text, nil
}
