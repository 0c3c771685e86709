// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/papers-skill/pkg/types"
)

// chatCompletionsURL is the OpenAI chat completions endpoint. Package-level
// var for test substitution.
var chatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// HTTPBackend posts prompts to an OpenAI-compatible chat completions
// endpoint without an SDK.
type HTTPBackend struct {
	APIKey    string
	Model     string
	MaxTokens int
	URL       string
	Client    *http.Client
}

// NewHTTPBackend builds an HTTPBackend from cfg. A BaseURL replaces the
// default host; "/chat/completions" is appended to it.
func NewHTTPBackend(cfg types.GenerationConfig) *HTTPBackend {
	b := &HTTPBackend{
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	}
	if b.Model == "" {
		b.Model = defaultModel
	}
	if b.MaxTokens <= 0 {
		b.MaxTokens = defaultMaxTokens
	}
	if cfg.BaseURL != "" {
		b.URL = strings.TrimSuffix(cfg.BaseURL, "/") + "/chat/completions"
	}
	return b
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
}

// chatMessage is a single message in the conversation sent to the API.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the response body we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt as a single user message and returns
// choices[0].message.content.
func (b *HTTPBackend) Complete(ctx context.Context, prompt string) (string, error) {
	bodyBytes, err := json.Marshal(chatRequest{
		Model:               b.Model,
		Messages:            []chatMessage{{Role: "user", Content: prompt}},
		MaxCompletionTokens: b.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := b.URL
	if url == "" {
		url = chatCompletionsURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.APIKey)

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling chat completions API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("chat completions API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding chat completions response: %w", err)
	}

	if len(cResp.Choices) == 0 {
		return "", fmt.Errorf("chat completions API returned no choices")
	}
	content := cResp.Choices[0].Message.Content
	if content == nil {
		return "", fmt.Errorf("chat completions API returned no message content")
	}
	return *content, nil
}
