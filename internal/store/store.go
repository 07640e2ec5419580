// Package store provides SQLite-backed persistence for the dog's state.
// The store is the single owner of the live state: every mutation runs
// decay, applies deltas, and completes a durable write before returning,
// all under one lock so concurrent callers never interleave.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/dog-agent/internal/state"
)

// Store wraps a SQLite connection holding one state row per namespace
// plus the conversation message log.
type Store struct {
	conn      *sqlx.DB
	namespace string

	mu    sync.Mutex
	state state.State
	now   func() time.Time
}

// Report is what the decision layer sees before every model call:
// the needs summary plus the raw, freshly decayed values.
type Report struct {
	Summary string
	State   state.State
}

// Message is one entry in the conversation log.
type Message struct {
	Role    string `db:"role"`
	Content string `db:"content"`
}

// Open opens or creates the database at path and loads the state row
// for the namespace, default-initializing on first run. A snapshot that
// fails to parse is replaced by a fresh default rather than an error.
func Open(path, namespace string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn, namespace: namespace, now: time.Now}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.loadOrCreate(); err != nil {
		conn.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS dog_state (
		namespace TEXT PRIMARY KEY,
		state_json TEXT NOT NULL,
		updated_at REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		namespace TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_messages_namespace ON messages(namespace);
	`
	_, err := s.conn.Exec(schema)
	return err
}

func (s *Store) loadOrCreate() error {
	var raw string
	err := s.conn.Get(&raw, "SELECT state_json FROM dog_state WHERE namespace = ?", s.namespace)
	if errors.Is(err, sql.ErrNoRows) {
		s.state = state.Default(s.now())
		slog.Info("no saved state, starting fresh", "namespace", s.namespace)
		return s.persist(s.state)
	}
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	var st state.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		slog.Warn("saved state unreadable, starting fresh",
			"namespace", s.namespace, "error", err)
		s.state = state.Default(s.now())
		return s.persist(s.state)
	}

	s.state = st
	slog.Info("state restored", "namespace", s.namespace, "mood", st.Mood())
	return nil
}

// persist upserts the single row for the namespace. It does no locking
// itself: mutation paths call it under mu, and loadOrCreate calls it
// during Open, before the store is shared.
func (s *Store) persist(st state.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	_, err = s.conn.Exec(
		"INSERT OR REPLACE INTO dog_state (namespace, state_json, updated_at) VALUES (?, ?, ?)",
		s.namespace, string(raw), unixSeconds(s.now()),
	)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// ApplyBehavior is the single mutation entry point for behavior events:
// decay up to now, apply the delta set, write through. The mutation is
// staged on a copy and committed only after the write succeeds, so a
// failed write leaves the state exactly as it was.
func (s *Store) ApplyBehavior(name string, d state.Deltas) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.Decay(s.now())
	next.ApplyDeltas(d)

	if err := s.persist(next); err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}
	s.state = next

	slog.Debug("behavior applied", "behavior", name,
		"happiness", fmt.Sprintf("%.1f", next.Happiness))
	return nil
}

// RefreshAndDescribe decays up to now, persists, and returns the needs
// summary plus the raw values. Called before every model invocation so
// the decision-maker never sees stale state.
func (s *Store) RefreshAndDescribe() (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.Decay(s.now())

	if err := s.persist(next); err != nil {
		return Report{}, fmt.Errorf("refresh: %w", err)
	}
	s.state = next

	return Report{Summary: next.NeedsSummary(), State: next}, nil
}

// Snapshot returns a copy of the current values. Display reads do not
// advance decay or touch the database; only RefreshAndDescribe and
// ApplyBehavior integrate time.
func (s *Store) Snapshot() state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StatusText renders the current values for the terminal, without
// advancing decay (same policy as Snapshot).
func (s *Store) StatusText() string {
	st := s.Snapshot()
	return st.StatusText()
}

// AppendMessage adds one entry to the conversation log.
func (s *Store) AppendMessage(role, content string) error {
	_, err := s.conn.Exec(
		"INSERT INTO messages (namespace, role, content, created_at) VALUES (?, ?, ?, ?)",
		s.namespace, role, content, unixSeconds(s.now()),
	)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

// RecentMessages returns up to limit messages in chronological order.
func (s *Store) RecentMessages(limit int) ([]Message, error) {
	var msgs []Message
	err := s.conn.Select(&msgs,
		"SELECT role, content FROM messages WHERE namespace = ? ORDER BY id DESC LIMIT ?",
		s.namespace, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	// Newest-first from the query; flip to chronological.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
