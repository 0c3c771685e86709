// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"sync"
	"time"

	"github.com/pdiddy/papers-skill/pkg/types"
)

// entry is one conversation held in memory.
type entry struct {
	state        types.ConversationState
	lastActivity time.Time
}

// MemoryStore keeps conversations in process memory. A background janitor
// removes expired conversations until Close is called.
type MemoryStore struct {
	sessions map[string]*entry
	window   time.Duration
	now      func() time.Time
	mu       sync.RWMutex

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore creates a MemoryStore with the given inactivity window.
func NewMemoryStore(window time.Duration) *MemoryStore {
	if window <= 0 {
		window = DefaultTTL
	}

	s := &MemoryStore{
		sessions: make(map[string]*entry),
		window:   window,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.janitor(cleanupInterval(window))
	return s
}

func cleanupInterval(window time.Duration) time.Duration {
	interval := window / 2
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}

// Load returns the state for id, or an empty state when id is unknown or
// its window has passed.
func (s *MemoryStore) Load(_ context.Context, id string) (types.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	if !ok || s.now().Sub(e.lastActivity) > s.window {
		return types.ConversationState{}, nil
	}
	return e.state, nil
}

// Save stores state for id and refreshes its activity time.
func (s *MemoryStore) Save(_ context.Context, id string, state types.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &entry{state: state, lastActivity: s.now()}
	return nil
}

// Delete forgets id.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// CleanupExpired removes expired conversations and returns how many went.
func (s *MemoryStore) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastActivity) > s.window {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of conversations held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the janitor. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
	})
	return nil
}

func (s *MemoryStore) janitor(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.CleanupExpired()
		}
	}
}
