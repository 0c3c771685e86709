package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout bounds one outbound call, including reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "papers-skill/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for the paper catalog fetch.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the catalog endpoint returning a JSON array of daily papers.
	URL string `json:"url" yaml:"url"`

	// MaxRetries is the number of retries on HTTP 429 (default 0: one request only).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// GenerationBackend identifies the text-generation client implementation.
type GenerationBackend string

const (
	// GenerationHTTP posts to an OpenAI-compatible chat completions endpoint directly.
	GenerationHTTP GenerationBackend = "http"
	// GenerationOpenAI uses the openai-go SDK.
	GenerationOpenAI GenerationBackend = "openai"
	// GenerationGemini uses the Google GenAI SDK.
	GenerationGemini GenerationBackend = "gemini"
)

// GenerationConfig holds settings for the text-generation backend.
type GenerationConfig struct {
	// Backend selects the client: http, openai, or gemini.
	Backend GenerationBackend `json:"backend" yaml:"backend"`

	// Model is the model identifier (e.g. "gpt-4o").
	Model string `json:"model" yaml:"model"`

	// APIKey is the credential. When empty, generation answers with a
	// configuration-error reply instead of calling out.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the API endpoint (OpenAI-compatible backends only).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxTokens caps the generated output (default 1024).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Timeout bounds one generation call (default 25s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DialogConfig holds the fetch sizes of the two browsing intents.
type DialogConfig struct {
	// SummaryLimit is how many papers the summary intent fetches (default 4).
	SummaryLimit int `json:"summary_limit" yaml:"summary_limit"`

	// NewsLimit is how many papers the latest-news intent fetches (default 3).
	NewsLimit int `json:"news_limit" yaml:"news_limit"`
}

// SessionBackend identifies where conversation state lives between turns.
type SessionBackend string

const (
	SessionMemory SessionBackend = "memory"
	SessionSQLite SessionBackend = "sqlite"
	SessionRedis  SessionBackend = "redis"
)

// SessionConfig holds settings for the conversation state store.
type SessionConfig struct {
	// Backend selects the store: memory, sqlite, or redis.
	Backend SessionBackend `json:"backend" yaml:"backend"`

	// TTL is how long an idle conversation keeps its papers (default 10m).
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string `json:"sqlite_path" yaml:"sqlite_path"`

	// RedisURL is the connection URL for the redis backend.
	RedisURL string `json:"redis_url" yaml:"redis_url"`
}

// ServerConfig holds settings for the webhook server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// Development switches gin to debug mode and zap to console output.
	Development bool `json:"development" yaml:"development"`
}

// SkillConfig groups all component configurations.
type SkillConfig struct {
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Dialog     DialogConfig     `json:"dialog" yaml:"dialog"`
	Session    SessionConfig    `json:"session" yaml:"session"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}
