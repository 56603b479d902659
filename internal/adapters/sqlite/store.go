package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"versus/internal/domain"
	"versus/internal/ports"
)

// Store implements ports.EntryStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
	lock   *flock.Flock
}

// Ensure Store implements EntryStore
var _ ports.EntryStore = (*Store)(nil)

// Open initializes the store at the given database path. A lock file next
// to the database enforces the single-writer assumption; Open fails fast
// when another process already holds it.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("store %s is in use by another process", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		lock.Unlock()
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Pragmas + schema in a single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS entries (
			path TEXT PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS content_versions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL REFERENCES entries(path),
			content BLOB,
			observed_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS comparisons (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			winner_path TEXT NOT NULL,
			loser_path TEXT NOT NULL,
			magnitude INTEGER NOT NULL,
			at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_versions_path ON content_versions(path, observed_at, id);
		CREATE INDEX IF NOT EXISTS idx_comparisons_at ON comparisons(at, id);
	`)
	if err != nil {
		db.Close()
		lock.Unlock()
		return nil, fmt.Errorf("setup database: %w", err)
	}

	return &Store{db: db, dbPath: dbPath, lock: lock}, nil
}

// Close closes the database connection and releases the writer lock.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// ListEntries returns every known entry with its full version history,
// ordered by path. Versions are ordered oldest first, insertion order
// breaking observed_at ties.
func (s *Store) ListEntries(ctx context.Context) ([]*domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM entries ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.Entry
	byPath := make(map[string]*domain.Entry)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		entry := &domain.Entry{Path: path}
		entries = append(entries, entry)
		byPath[path] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	versionRows, err := s.db.QueryContext(ctx, `
		SELECT path, content, content IS NULL, observed_at
		FROM content_versions
		ORDER BY path, observed_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query versions: %w", err)
	}
	defer versionRows.Close()

	for versionRows.Next() {
		var (
			path       string
			content    []byte
			tombstone  bool
			observedAt int64
		)
		if err := versionRows.Scan(&path, &content, &tombstone, &observedAt); err != nil {
			return nil, err
		}
		// A zero-length blob scans to a nil slice; only a SQL NULL is a
		// tombstone, so an empty live file must come back non-nil.
		if !tombstone && content == nil {
			content = []byte{}
		}
		entry, ok := byPath[path]
		if !ok {
			continue
		}
		entry.Versions = append(entry.Versions, domain.ContentVersion{
			Content:    content,
			ObservedAt: time.Unix(observedAt, 0).UTC(),
		})
	}

	return entries, versionRows.Err()
}

// ListComparisons returns the comparison log in replay order.
func (s *Store) ListComparisons(ctx context.Context) ([]domain.Comparison, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, winner_path, loser_path, magnitude, at
		FROM comparisons
		ORDER BY at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query comparisons: %w", err)
	}
	defer rows.Close()

	var comparisons []domain.Comparison
	for rows.Next() {
		var (
			c  domain.Comparison
			at int64
		)
		if err := rows.Scan(&c.ID, &c.Winner, &c.Loser, &c.Magnitude, &at); err != nil {
			return nil, err
		}
		c.At = time.Unix(at, 0).UTC()
		comparisons = append(comparisons, c)
	}

	return comparisons, rows.Err()
}

// RecordComparison appends one outcome row.
func (s *Store) RecordComparison(ctx context.Context, winner, loser string, magnitude int, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comparisons (winner_path, loser_path, magnitude, at)
		VALUES (?, ?, ?, ?)
	`, winner, loser, magnitude, at.Unix())
	if err != nil {
		return fmt.Errorf("insert comparison: %w", err)
	}
	return nil
}

// BeginTx starts a new transaction
func (s *Store) BeginTx(ctx context.Context) (ports.StoreTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &storeTx{tx: tx}, nil
}
