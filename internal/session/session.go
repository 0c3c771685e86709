// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session keeps each conversation's state between turns. State lives
// only as long as the conversation: it is deleted when the conversation ends
// and expires after a window of inactivity.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pdiddy/papers-skill/pkg/types"
)

// DefaultTTL is how long an idle conversation keeps its papers.
const DefaultTTL = 10 * time.Minute

// Store persists ConversationState per conversation ID. Implementations are
// safe for concurrent use across IDs; turns within one conversation are
// serialized by the caller.
type Store interface {
	// Load returns the state for id. An unknown or expired id yields an
	// empty state and no error.
	Load(ctx context.Context, id string) (types.ConversationState, error)

	// Save replaces the state for id and restarts its expiry window.
	Save(ctx context.Context, id string, state types.ConversationState) error

	// Delete forgets id. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases the store's resources.
	Close() error
}

// Open returns the Store selected by cfg.Backend (memory when empty).
func Open(ctx context.Context, cfg types.SessionConfig) (Store, error) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	switch cfg.Backend {
	case types.SessionMemory, "":
		return NewMemoryStore(ttl), nil
	case types.SessionSQLite:
		return NewSQLiteStore(cfg.SQLitePath, ttl)
	case types.SessionRedis:
		return NewRedisStore(ctx, cfg.RedisURL, ttl)
	default:
		return nil, fmt.Errorf("unsupported session backend %q: use memory, sqlite, or redis", cfg.Backend)
	}
}

func encode(state types.ConversationState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encoding session state: %w", err)
	}
	return data, nil
}

func decode(data []byte) (types.ConversationState, error) {
	var state types.ConversationState
	if err := json.Unmarshal(data, &state); err != nil {
		return types.ConversationState{}, fmt.Errorf("decoding session state: %w", err)
	}
	return state, nil
}
