package commands

import (
	"context"
	"fmt"

	"versus/internal/application"
	"versus/internal/domain"
	"versus/internal/ports"
)

// RankCommand loads the entry set, replays the comparison log, and returns
// the standings ordered worst to best. It mutates nothing; ratings are
// recomputed from the log on every call.
type RankCommand struct {
	repo           ports.EntryStore
	IncludeDeleted bool
}

// NewRankCommand creates a new RankCommand.
func NewRankCommand(repo ports.EntryStore, includeDeleted bool) *RankCommand {
	return &RankCommand{
		repo:           repo,
		IncludeDeleted: includeDeleted,
	}
}

// Execute runs the rank command.
func (c *RankCommand) Execute(ctx context.Context) ([]domain.RankedEntry, error) {
	entries, err := c.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	comparisons, err := c.repo.ListComparisons(ctx)
	if err != nil {
		return nil, err
	}

	ratings := domain.ComputeRatings(entries, comparisons)
	return domain.Rank(entries, ratings, c.IncludeDeleted), nil
}

// EntryAtIndex resolves a 1-based display index against a ranked listing.
// Index 1 is the highest-rated entry.
func EntryAtIndex(ranked []domain.RankedEntry, index int) (domain.RankedEntry, error) {
	pos := len(ranked) - index
	if index < 1 || pos < 0 {
		return domain.RankedEntry{}, fmt.Errorf("no item %d: %w", index, application.ErrNotFound)
	}
	return ranked[pos], nil
}

// DisplayIndex is the inverse of EntryAtIndex: the 1-based rank of the
// entry at position pos in an ascending listing.
func DisplayIndex(rankedLen, pos int) int {
	return rankedLen - pos
}
