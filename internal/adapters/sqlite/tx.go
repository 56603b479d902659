package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"versus/internal/ports"
)

// storeTx implements ports.StoreTx
type storeTx struct {
	tx *sql.Tx
}

// Ensure storeTx implements StoreTx
var _ ports.StoreTx = (*storeTx)(nil)

// CreateEntry registers a new entry path.
func (t *storeTx) CreateEntry(path string) error {
	_, err := t.tx.Exec(`INSERT INTO entries (path) VALUES (?)`, path)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// AppendVersion appends a content version; nil content writes a tombstone.
// Versions are never updated or deleted.
func (t *storeTx) AppendVersion(path string, content []byte, observedAt time.Time) error {
	_, err := t.tx.Exec(`
		INSERT INTO content_versions (path, content, observed_at)
		VALUES (?, ?, ?)
	`, path, content, observedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert version: %w", err)
	}
	return nil
}

// Commit commits the transaction
func (t *storeTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *storeTx) Rollback() error {
	return t.tx.Rollback()
}
