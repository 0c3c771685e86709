// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/papers-skill/pkg/types"
)

// DefaultSQLitePath is the database file used when none is configured.
const DefaultSQLitePath = "papers-skill.db"

// SQLiteStore keeps conversations in a SQLite database so that separate
// processes (one CLI invocation per turn) can share them. Expired rows are
// ignored on load and removed by PurgeExpired.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLiteStore opens or creates the database at path and creates the
// schema if it does not exist.
func NewSQLiteStore(path string, ttl time.Duration) (*SQLiteStore, error) {
	if path == "" {
		path = DefaultSQLitePath
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating session directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db, ttl: ttl, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Load returns the state for id, or an empty state when id is unknown or
// older than the TTL.
func (s *SQLiteStore) Load(ctx context.Context, id string) (types.ConversationState, error) {
	var (
		data      string
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT state, updated_at FROM sessions WHERE id = ?`, id,
	).Scan(&data, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ConversationState{}, nil
	}
	if err != nil {
		return types.ConversationState{}, fmt.Errorf("loading session %s: %w", id, err)
	}

	if s.now().Sub(time.Unix(0, updatedAt)) > s.ttl {
		return types.ConversationState{}, nil
	}
	return decode([]byte(data))
}

// Save upserts the state for id.
func (s *SQLiteStore) Save(ctx context.Context, id string, state types.ConversationState) error {
	data, err := encode(state)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, state, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		id, string(data), s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("saving session %s: %w", id, err)
	}
	return nil
}

// Delete removes id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	return nil
}

// PurgeExpired removes rows older than the TTL and returns how many went.
func (s *SQLiteStore) PurgeExpired(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.ttl).UnixNano()
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged sessions: %w", err)
	}
	return int(n), nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
