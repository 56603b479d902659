package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"versus/internal/domain"
	"versus/internal/ports"
)

// RemoveCommand deletes the file behind a ranked entry and re-reconciles,
// which appends the tombstone. History is never rewritten: the entry and
// its versions stay in the store.
type RemoveCommand struct {
	repo   ports.EntryStore
	root   string
	logger *slog.Logger
	Index  int
}

// NewRemoveCommand creates a new RemoveCommand.
func NewRemoveCommand(repo ports.EntryStore, root string, index int, logger *slog.Logger) *RemoveCommand {
	if logger == nil {
		logger = slog.Default()
	}
	return &RemoveCommand{
		repo:   repo,
		root:   root,
		logger: logger,
		Index:  index,
	}
}

// Execute removes the entry at the given rank index and returns it.
func (c *RemoveCommand) Execute(ctx context.Context) (domain.RankedEntry, error) {
	entry, err := NewShowCommand(c.repo, c.Index).Execute(ctx)
	if err != nil {
		return domain.RankedEntry{}, err
	}

	full := filepath.Join(c.root, filepath.FromSlash(entry.Path))
	if err := os.Remove(full); err != nil {
		return domain.RankedEntry{}, fmt.Errorf("remove %s: %w", entry.Path, err)
	}

	if _, err := NewSyncCommand(c.repo, c.root, SyncFailOnTombstoned, c.logger).Execute(ctx); err != nil {
		return domain.RankedEntry{}, err
	}

	c.logger.Info("entry removed", "path", entry.Path, "index", c.Index)
	return entry, nil
}
