package ports

import (
	"context"
	"time"

	"versus/internal/domain"
)

// EntryStore persists entries, their version history, and the comparison
// log. It is the only shared mutable resource; implementations must hold
// an exclusive single-writer lock for the lifetime of the handle.
type EntryStore interface {
	Close() error

	// ListEntries returns every known entry, ordered by path, with its
	// full version history ordered oldest first.
	ListEntries(ctx context.Context) ([]*domain.Entry, error)

	// ListComparisons returns the comparison log ordered by timestamp,
	// ties broken by insertion order.
	ListComparisons(ctx context.Context) ([]domain.Comparison, error)

	// RecordComparison appends one outcome to the log in a single atomic
	// write.
	RecordComparison(ctx context.Context, winner, loser string, magnitude int, at time.Time) error

	// BeginTx starts a transaction for version-history mutations, so an
	// entry and its first version commit together.
	BeginTx(ctx context.Context) (StoreTx, error)
}

// StoreTx groups version-history writes into one atomic commit. Versions
// are append-only: there is no update or delete.
type StoreTx interface {
	CreateEntry(path string) error
	AppendVersion(path string, content []byte, observedAt time.Time) error

	Commit() error
	Rollback() error
}
