package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"stagehand/internal/config"
	"stagehand/internal/show"
)

// ErrNotFound indicates no production exists for the requested event id.
var ErrNotFound = errors.New("production not found")

// Store manages production persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the production database and applies
// migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "productions.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted state blob for an event. ErrNotFound when the
// production has never been saved.
func (s *Store) Load(ctx context.Context, eventID string) (show.State, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM productions WHERE event_id = ?`, eventID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return show.State{}, fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	if err != nil {
		return show.State{}, fmt.Errorf("load production %s: %w", eventID, err)
	}

	var state show.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return show.State{}, fmt.Errorf("decode production %s: %w", eventID, err)
	}
	return state, nil
}

// Save upserts the state blob for an event.
func (s *Store) Save(ctx context.Context, eventID string, state show.State) error {
	if strings.TrimSpace(eventID) == "" {
		return errors.New("save requires an event id")
	}
	encoded, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode production %s: %w", eventID, err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO productions (event_id, state, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(event_id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		eventID, string(encoded), now,
	)
	if err != nil {
		return fmt.Errorf("save production %s: %w", eventID, err)
	}
	return nil
}

// ListEvents returns all known event ids ordered by most recent update.
func (s *Store) ListEvents(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT event_id FROM productions ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan production id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate productions: %w", err)
	}
	return ids, nil
}

// Count returns the number of stored productions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM productions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count productions: %w", err)
	}
	return count, nil
}
