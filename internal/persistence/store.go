// Package persistence stores game snapshots and notifications in SQLite.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"airline_tycoon/internal/models"
)

// Store wraps a SQLite connection.
type Store struct {
	db *sqlx.DB
	// keep bounds the number of retained snapshots; 0 keeps all.
	keep int
}

// Open opens or creates a SQLite database at the given path and migrates it.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// one writer keeps sqlite from reporting busy under the ticker
	db.SetMaxOpenConns(1)

	s := New(db)
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// New wraps an existing connection without migrating it.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// SetRetention keeps only the newest n snapshots after each save.
func (s *Store) SetRetention(n int) {
	s.keep = n
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		game_date TEXT NOT NULL,
		cash REAL NOT NULL,
		created_at TEXT NOT NULL,
		payload BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		game_date TEXT NOT NULL,
		message TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_session ON snapshots(session_id);
	CREATE INDEX IF NOT EXISTS idx_notifications_session ON notifications(session_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveSnapshot stores the state as the newest snapshot of the session.
func (s *Store) SaveSnapshot(ctx context.Context, sessionID string, st models.GameState) error {
	payload, err := EncodeSnapshot(st)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (session_id, game_date, cash, created_at, payload) VALUES (?, ?, ?, ?, ?)`,
		sessionID, st.Date.Format(time.DateOnly), st.Cash, time.Now().UTC().Format(time.RFC3339), payload)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	if s.keep > 0 {
		if _, err := s.PruneSnapshots(ctx, s.keep); err != nil {
			return err
		}
	}
	return nil
}

type snapshotRow struct {
	SessionID string `db:"session_id"`
	Payload   []byte `db:"payload"`
}

// LatestSnapshot returns the newest snapshot. found is false on an empty store.
func (s *Store) LatestSnapshot(ctx context.Context) (sessionID string, st models.GameState, found bool, err error) {
	var row snapshotRow
	err = s.db.GetContext(ctx, &row, `SELECT session_id, payload FROM snapshots ORDER BY id DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.GameState{}, false, nil
	}
	if err != nil {
		return "", models.GameState{}, false, fmt.Errorf("select snapshot: %w", err)
	}
	st, err = DecodeSnapshot(row.Payload)
	if err != nil {
		return "", models.GameState{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return row.SessionID, st, true, nil
}

// PruneSnapshots deletes all but the newest keep snapshots.
func (s *Store) PruneSnapshots(ctx context.Context, keep int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	return res.RowsAffected()
}

// AppendNotifications writes msgs in one transaction.
func (s *Store) AppendNotifications(ctx context.Context, sessionID string, date time.Time, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	day := date.Format(time.DateOnly)
	for _, m := range msgs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notifications (session_id, game_date, message) VALUES (?, ?, ?)`,
			sessionID, day, m); err != nil {
			return fmt.Errorf("insert notification: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// RecentNotifications returns up to limit notifications, oldest first.
func (s *Store) RecentNotifications(ctx context.Context, limit int) ([]string, error) {
	msgs := []string{}
	err := s.db.SelectContext(ctx, &msgs,
		`SELECT message FROM (SELECT id, message FROM notifications ORDER BY id DESC LIMIT ?) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("select notifications: %w", err)
	}
	return msgs, nil
}

func (s *Store) SetMeta(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("set meta %s: %w", key, err)
	}
	return nil
}

// GetMeta reads a metadata value; ok is false when the key is unset.
func (s *Store) GetMeta(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.GetContext(ctx, &v, `SELECT value FROM meta WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get meta %s: %w", key, err)
	}
	return v, true, nil
}
