// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"math"

	"google.golang.org/genai"

	"github.com/pdiddy/papers-skill/pkg/types"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiBackend sends prompts through the Google GenAI SDK.
type GeminiBackend struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

// NewGeminiBackend builds a GeminiBackend from cfg. The shared default model
// name is swapped for a Gemini one.
func NewGeminiBackend(ctx context.Context, cfg types.GenerationConfig) (*GeminiBackend, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := cfg.Model
	if model == "" || model == defaultModel {
		model = defaultGeminiModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if maxTokens > math.MaxInt32 {
		maxTokens = math.MaxInt32
	}

	return &GeminiBackend{
		client:    client,
		model:     model,
		maxTokens: int32(maxTokens),
	}, nil
}

// Complete sends prompt as a single user turn and returns the response text.
func (b *GeminiBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: b.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("GenAI returned no candidates")
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("GenAI returned no text (finish reason %q)", finishReason(resp))
	}
	return text, nil
}

func finishReason(resp *genai.GenerateContentResponse) genai.FinishReason {
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return ""
	}
	return resp.Candidates[0].FinishReason
}
