package commands

import (
	"context"

	"versus/internal/domain"
	"versus/internal/ports"
)

// ShowCommand resolves one entry by its 1-based rank index (1 = best).
type ShowCommand struct {
	repo  ports.EntryStore
	Index int
}

// NewShowCommand creates a new ShowCommand.
func NewShowCommand(repo ports.EntryStore, index int) *ShowCommand {
	return &ShowCommand{repo: repo, Index: index}
}

// Execute runs the show command against the live standings.
func (c *ShowCommand) Execute(ctx context.Context) (domain.RankedEntry, error) {
	ranked, err := NewRankCommand(c.repo, false).Execute(ctx)
	if err != nil {
		return domain.RankedEntry{}, err
	}
	return EntryAtIndex(ranked, c.Index)
}
