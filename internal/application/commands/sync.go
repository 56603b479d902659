package commands

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"versus/internal/application"
	"versus/internal/domain"
	"versus/internal/ports"
)

// SyncPolicy controls what happens when a filesystem file reappears at a
// path that is already tombstoned in history.
type SyncPolicy int

const (
	// SyncFailOnTombstoned treats the reappearance as a conflict and
	// aborts with a descriptive error.
	SyncFailOnTombstoned SyncPolicy = iota
	// SyncPruneTombstoned deletes the orphan filesystem file instead.
	SyncPruneTombstoned
)

// SyncCommand reconciles the entries root against the store: new files
// become entries, changed files append versions, vanished files append
// tombstones. Each mutation commits in its own transaction, so an
// interrupted run leaves committed history intact and re-running is safe.
type SyncCommand struct {
	store  ports.EntryStore
	root   string
	policy SyncPolicy
	logger *slog.Logger

	// now is swappable for tests; tombstones are stamped with it because
	// the true deletion time is unknowable from a single snapshot.
	now func() time.Time
}

// NewSyncCommand creates a new SyncCommand for the given root directory.
func NewSyncCommand(store ports.EntryStore, root string, policy SyncPolicy, logger *slog.Logger) *SyncCommand {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncCommand{
		store:  store,
		root:   root,
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
}

// Execute runs one reconciliation pass.
func (c *SyncCommand) Execute(ctx context.Context) (*domain.SyncStats, error) {
	start := c.now()
	stats := &domain.SyncStats{}

	known, err := c.store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	byPath := make(map[string]*domain.Entry, len(known))
	unseen := make(map[string]bool)
	for _, e := range known {
		byPath[e.Path] = e
		if !e.Deleted() {
			unseen[e.Path] = true
		}
	}

	err = filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != c.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		stats.Scanned++
		delete(unseen, key)

		return c.syncFile(ctx, path, key, byPath[key], stats)
	})
	if err != nil {
		return stats, err
	}

	// Live entries with no file on disk get a tombstone, stamped "now".
	missing := make([]string, 0, len(unseen))
	for path := range unseen {
		missing = append(missing, path)
	}
	slices.Sort(missing)
	for _, path := range missing {
		if err := c.appendVersion(ctx, path, nil, c.now()); err != nil {
			return stats, fmt.Errorf("tombstone %s: %w", path, err)
		}
		c.logger.Debug("entry tombstoned", "path", path)
		stats.Tombstoned++
	}

	stats.Duration = time.Since(start)
	c.logger.Info("sync complete",
		"scanned", stats.Scanned,
		"created", stats.Created,
		"updated", stats.Updated,
		"tombstoned", stats.Tombstoned,
		"pruned", stats.Pruned,
	)
	return stats, nil
}

// syncFile reconciles a single filesystem file against its known entry.
func (c *SyncCommand) syncFile(ctx context.Context, fullPath, key string, known *domain.Entry, stats *domain.SyncStats) error {
	if known != nil && known.Deleted() {
		if c.policy == SyncPruneTombstoned {
			if err := os.Remove(fullPath); err != nil {
				return fmt.Errorf("prune %s: %w", key, err)
			}
			c.logger.Debug("orphan file pruned", "path", key)
			stats.Pruned++
			return nil
		}
		return &application.ResurrectedError{Path: key}
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return fmt.Errorf("stat %s: %w", key, err)
	}
	content, err := os.ReadFile(fullPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}

	if known == nil {
		tx, err := c.store.BeginTx(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback()
		if err := tx.CreateEntry(key); err != nil {
			return fmt.Errorf("create %s: %w", key, err)
		}
		if err := tx.AppendVersion(key, content, info.ModTime()); err != nil {
			return fmt.Errorf("first version %s: %w", key, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		c.logger.Debug("entry created", "path", key)
		stats.Created++
		return nil
	}

	// Byte equality, not mtime: a re-save with identical content must not
	// create a spurious version.
	if bytes.Equal(known.Head().Content, content) {
		return nil
	}

	if err := c.appendVersion(ctx, key, content, info.ModTime()); err != nil {
		return fmt.Errorf("new version %s: %w", key, err)
	}
	c.logger.Debug("entry updated", "path", key)
	stats.Updated++
	return nil
}

func (c *SyncCommand) appendVersion(ctx context.Context, path string, content []byte, observedAt time.Time) error {
	tx, err := c.store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := tx.AppendVersion(path, content, observedAt); err != nil {
		return err
	}
	return tx.Commit()
}
