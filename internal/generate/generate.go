// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate sends composed prompts to a text-generation backend and
// returns the text to be spoken. Generation never fails a conversational
// turn: a missing credential and every backend failure map to fixed replies.
package generate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/papers-skill/pkg/types"
)

const (
	defaultModel     = "gpt-4o"
	defaultMaxTokens = 1024
	defaultTimeout   = 25 * time.Second
)

// ApologyReply is spoken when the backend fails for any reason.
const ApologyReply = "Desculpe, tive um problema ao gerar o resumo."

// Backend abstracts the generation API so tests can supply a fake. Each
// implementation issues exactly one request per call.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Outcome is the spoken text plus the failure tag behind it.
type Outcome struct {
	Text    string
	Failure types.FailureKind
}

// Client wraps a Backend with the credential gate, the call timeout, and the
// fallback replies.
type Client struct {
	backend     Backend
	name        types.GenerationBackend
	configError string
	timeout     time.Duration
	logger      *zap.Logger
}

// New builds a Client for cfg.Backend. A missing API key is not an error:
// the client is returned unconfigured and answers every prompt with the
// configuration-error reply. An unknown backend name is an error.
func New(ctx context.Context, cfg types.GenerationConfig, logger *zap.Logger) (*Client, error) {
	if cfg.Backend == "" {
		cfg.Backend = types.GenerationHTTP
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}

	c := &Client{
		name:        cfg.Backend,
		configError: ConfigErrorReply(cfg.Backend),
		timeout:     cfg.Timeout,
	}
	c.setLogger(logger)

	if cfg.APIKey == "" {
		if _, known := credentialEnv[cfg.Backend]; !known {
			return nil, fmt.Errorf("unsupported generation backend %q: use http, openai, or gemini", cfg.Backend)
		}
		return c, nil
	}

	var err error
	switch cfg.Backend {
	case types.GenerationHTTP:
		c.backend = NewHTTPBackend(cfg)
	case types.GenerationOpenAI:
		c.backend = NewOpenAIBackend(cfg)
	case types.GenerationGemini:
		c.backend, err = NewGeminiBackend(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported generation backend %q: use http, openai, or gemini", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s backend: %w", cfg.Backend, err)
	}
	return c, nil
}

// NewWithBackend returns a configured Client around b.
func NewWithBackend(b Backend, timeout time.Duration, logger *zap.Logger) *Client {
	c := &Client{backend: b, name: "custom", timeout: timeout}
	c.setLogger(logger)
	return c
}

func (c *Client) setLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger.With(zap.String("backend", string(c.name)))
}

// Configured reports whether a credential was supplied.
func (c *Client) Configured() bool {
	return c.backend != nil
}

// Generate returns the backend output for prompt verbatim. Without a
// credential it returns the configuration-error reply and makes no call; on
// any backend failure it returns ApologyReply.
func (c *Client) Generate(ctx context.Context, prompt string) Outcome {
	if c.backend == nil {
		c.logger.Warn("generation skipped: no API key configured")
		return Outcome{Text: c.configError, Failure: types.FailureGenerationUnavailable}
	}

	timeout := c.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	text, err := c.backend.Complete(ctx, prompt)
	if err != nil {
		c.logger.Error("generation failed",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return Outcome{Text: ApologyReply, Failure: types.FailureGenerationUnavailable}
	}

	c.logger.Debug("generation completed",
		zap.Duration("duration", time.Since(start)),
		zap.Int("prompt_chars", len(prompt)),
		zap.Int("output_chars", len(text)))
	return Outcome{Text: text}
}

// credentialEnv names the environment variable users are told to set.
var credentialEnv = map[types.GenerationBackend]string{
	types.GenerationHTTP:   "OPENAI_API_KEY",
	types.GenerationOpenAI: "OPENAI_API_KEY",
	types.GenerationGemini: "GEMINI_API_KEY",
}

// ConfigErrorReply is the fixed reply given when backend has no credential.
func ConfigErrorReply(backend types.GenerationBackend) string {
	env, ok := credentialEnv[backend]
	if !ok {
		env = "OPENAI_API_KEY"
	}
	provider := "OpenAI"
	if backend == types.GenerationGemini {
		provider = "Gemini"
	}
	return fmt.Sprintf("Erro: A chave da API do %s não está configurada. Configure a variável %s nas configurações da skill.", provider, env)
}
