// Package storage provides a SQLite-backed leaderboard and round history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/rsa-snake/internal/leaderboard"
)

// Store manages the SQLite connection behind the leaderboard.
type Store struct {
	db *sql.DB
}

var _ leaderboard.Store = (*Store)(nil)

// OpenMemory opens a private in-memory database.
// Nothing is written to disk; the data lives as long as the Store.
func OpenMemory() (*Store, error) {
	return open(":memory:")
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return open(dbPath)
}

func open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL UNIQUE,
			best_seconds REAL NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_best ON leaderboard(best_seconds, id);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			seconds REAL NOT NULL,
			plaintext TEXT NOT NULL,
			n INTEGER NOT NULL,
			e INTEGER NOT NULL,
			d INTEGER NOT NULL,
			decrypted INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordTime stores seconds as the player's best unless an equal or
// better time is already present.
func (s *Store) RecordTime(player string, seconds float64) (bool, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return false, leaderboard.ErrEmptyPlayer
	}

	result, err := s.db.Exec(
		`INSERT INTO leaderboard (player, best_seconds) VALUES (?, ?)
		 ON CONFLICT(player) DO UPDATE SET
			best_seconds = excluded.best_seconds,
			updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.best_seconds < leaderboard.best_seconds`,
		player, seconds,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot record time: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}

	return n > 0, nil
}

// Rankings returns every player ordered by best time, ties by first entry.
func (s *Store) Rankings() ([]leaderboard.Entry, error) {
	rows, err := s.db.Query(
		`SELECT player, best_seconds
		 FROM leaderboard
		 ORDER BY best_seconds ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []leaderboard.Entry
	for rows.Next() {
		var e leaderboard.Entry
		if err := rows.Scan(&e.Player, &e.Seconds); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SaveRound appends a completed round to the history.
func (s *Store) SaveRound(r leaderboard.Round) error {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO rounds (player, difficulty, seconds, plaintext, n, e, d, decrypted, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Difficulty, r.Seconds, r.Plaintext, r.N, r.E, r.D, r.Decrypted,
		r.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}
	return nil
}

// RecentRounds returns up to limit rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]leaderboard.Round, error) {
	// A negative LIMIT is no limit in SQLite
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(
		`SELECT player, difficulty, seconds, plaintext, n, e, d, decrypted, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []leaderboard.Round
	for rows.Next() {
		var r leaderboard.Round
		var createdAt any
		if err := rows.Scan(&r.Player, &r.Difficulty, &r.Seconds, &r.Plaintext,
			&r.N, &r.E, &r.D, &r.Decrypted, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// The driver may hand DATETIME back as time.Time or as text
		switch v := createdAt.(type) {
		case time.Time:
			r.FinishedAt = v
		case string:
			r.FinishedAt = parseTime(v)
		}
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"}

func parseTime(v string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
