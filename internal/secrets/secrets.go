// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads credentials from a directory of plain-text files,
// one secret per file: the filename is the key and the trimmed contents are
// the value. It is the last fallback after flags, config and environment.
//
// Recognised files: openai-api-key, gemini-api-key, redis-url.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/papers-skill/pkg/types"
)

// DefaultDir is the secrets directory relative to the working directory.
const DefaultDir = ".secrets"

// Secret file names.
const (
	OpenAIKey = "openai-api-key"
	GeminiKey = "gemini-api-key"
	RedisURL  = "redis-url"
)

// Secrets maps file names to their trimmed contents.
type Secrets map[string]string

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error. Unreadable or empty files are skipped; unreadable ones are
// logged.
func Load(dir string, logger *zap.Logger) (Secrets, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	found := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", zap.String("name", name), zap.Error(err))
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			found[name] = value
		}
	}
	return found, nil
}

// APIKey returns the stored credential for a generation backend.
func (s Secrets) APIKey(backend types.GenerationBackend) string {
	if backend == types.GenerationGemini {
		return s[GeminiKey]
	}
	return s[OpenAIKey]
}
