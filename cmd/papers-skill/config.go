// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/papers-skill/internal/catalog"
	"github.com/pdiddy/papers-skill/internal/dialog"
	"github.com/pdiddy/papers-skill/internal/generate"
	"github.com/pdiddy/papers-skill/internal/secrets"
	"github.com/pdiddy/papers-skill/internal/server"
	"github.com/pdiddy/papers-skill/internal/session"
	"github.com/pdiddy/papers-skill/pkg/types"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("catalog.url", catalog.DefaultURL)
	v.SetDefault("catalog.timeout", 10*time.Second)
	v.SetDefault("catalog.user_agent", "papers-skill/"+version)
	v.SetDefault("catalog.max_retries", 0)

	v.SetDefault("generation.backend", string(types.GenerationHTTP))
	v.SetDefault("generation.model", "")
	v.SetDefault("generation.api_key", "")
	v.SetDefault("generation.base_url", "")
	v.SetDefault("generation.max_tokens", 1024)
	v.SetDefault("generation.timeout", 25*time.Second)

	v.SetDefault("dialog.summary_limit", dialog.DefaultSummaryLimit)
	v.SetDefault("dialog.news_limit", dialog.DefaultNewsLimit)

	v.SetDefault("session.backend", string(types.SessionMemory))
	v.SetDefault("session.ttl", session.DefaultTTL)
	v.SetDefault("session.sqlite_path", session.DefaultSQLitePath)
	v.SetDefault("session.redis_url", "")

	v.SetDefault("server.addr", server.DefaultAddr)
	v.SetDefault("server.development", false)
}

// bindCredentialEnv lets the provider's conventional variables supply keys
// without the PAPERS_SKILL_ prefix.
func bindCredentialEnv(v *viper.Viper) {
	_ = v.BindEnv("credentials.openai_api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("credentials.gemini_api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("credentials.redis_url", "REDIS_URL")
}

// skillConfig materialises v into a SkillConfig. Credentials fall back from
// generation.api_key to the provider variable to the secrets directory.
func skillConfig(v *viper.Viper, s secrets.Secrets) (types.SkillConfig, error) {
	cfg := types.SkillConfig{
		Catalog: types.CatalogConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("catalog.timeout"),
				UserAgent: v.GetString("catalog.user_agent"),
			},
			URL:        v.GetString("catalog.url"),
			MaxRetries: v.GetInt("catalog.max_retries"),
		},
		Generation: types.GenerationConfig{
			Backend:   types.GenerationBackend(v.GetString("generation.backend")),
			Model:     v.GetString("generation.model"),
			APIKey:    v.GetString("generation.api_key"),
			BaseURL:   v.GetString("generation.base_url"),
			MaxTokens: v.GetInt("generation.max_tokens"),
			Timeout:   v.GetDuration("generation.timeout"),
		},
		Dialog: types.DialogConfig{
			SummaryLimit: v.GetInt("dialog.summary_limit"),
			NewsLimit:    v.GetInt("dialog.news_limit"),
		},
		Session: types.SessionConfig{
			Backend:    types.SessionBackend(v.GetString("session.backend")),
			TTL:        v.GetDuration("session.ttl"),
			SQLitePath: v.GetString("session.sqlite_path"),
			RedisURL:   v.GetString("session.redis_url"),
		},
		Server: types.ServerConfig{
			Addr:        v.GetString("server.addr"),
			Development: v.GetBool("server.development"),
		},
	}

	switch cfg.Generation.Backend {
	case types.GenerationHTTP, types.GenerationOpenAI, types.GenerationGemini:
	default:
		return cfg, fmt.Errorf("generation.backend %q: use http, openai, or gemini", cfg.Generation.Backend)
	}

	if cfg.Generation.APIKey == "" {
		if cfg.Generation.Backend == types.GenerationGemini {
			cfg.Generation.APIKey = v.GetString("credentials.gemini_api_key")
		} else {
			cfg.Generation.APIKey = v.GetString("credentials.openai_api_key")
		}
	}
	if cfg.Generation.APIKey == "" {
		cfg.Generation.APIKey = s.APIKey(cfg.Generation.Backend)
	}

	if cfg.Session.RedisURL == "" {
		cfg.Session.RedisURL = v.GetString("credentials.redis_url")
	}
	if cfg.Session.RedisURL == "" {
		cfg.Session.RedisURL = s[secrets.RedisURL]
	}
	return cfg, nil
}

// buildHost wires the catalog, generator and session store into a dialog
// host. The caller closes the returned store.
func buildHost(ctx context.Context, cfg types.SkillConfig, logger *zap.Logger) (*dialog.Host, session.Store, error) {
	fetcher := catalog.NewFetcher(cfg.Catalog, logger.Named("catalog"))

	gen, err := generate.New(ctx, cfg.Generation, logger.Named("generate"))
	if err != nil {
		return nil, nil, err
	}
	if !gen.Configured() {
		logger.Warn("no generation API key configured, answers will explain how to set one",
			zap.String("backend", string(cfg.Generation.Backend)))
	}

	store, err := session.Open(ctx, cfg.Session)
	if err != nil {
		return nil, nil, fmt.Errorf("opening session store: %w", err)
	}

	d := dialog.New(fetcher, gen, logger.Named("dialog"))
	return dialog.NewHost(d, dialog.NewParser(cfg.Dialog), store, logger.Named("host")), store, nil
}
