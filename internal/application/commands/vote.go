package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"versus/internal/domain"
	"versus/internal/ports"
)

// VoteLoopCommand runs the interactive comparison loop: rank, sample a
// pair, ask the selector which one wins, record the outcome, repeat until
// the user aborts. Standings are recomputed between rounds so each draw
// sees the effect of the previous vote.
type VoteLoopCommand struct {
	repo     ports.EntryStore
	sampler  *domain.Sampler
	selector ports.Selector
	logger   *slog.Logger
}

// NewVoteLoopCommand creates a new VoteLoopCommand.
func NewVoteLoopCommand(repo ports.EntryStore, sampler *domain.Sampler, selector ports.Selector, logger *slog.Logger) *VoteLoopCommand {
	if logger == nil {
		logger = slog.Default()
	}
	return &VoteLoopCommand{
		repo:     repo,
		sampler:  sampler,
		selector: selector,
		logger:   logger,
	}
}

// Execute runs the loop and returns the number of comparisons recorded.
func (c *VoteLoopCommand) Execute(ctx context.Context) (int, error) {
	recorded := 0
	for {
		ranked, err := NewRankCommand(c.repo, false).Execute(ctx)
		if err != nil {
			return recorded, err
		}

		first, second, err := c.sampler.Pair(ranked)
		if err != nil {
			if errors.Is(err, domain.ErrNotEnoughEntries) && recorded > 0 {
				return recorded, nil
			}
			return recorded, err
		}

		choice, ok, err := c.selector.Select([]string{first.Title(), second.Title()})
		if err != nil {
			return recorded, fmt.Errorf("select winner: %w", err)
		}
		if !ok {
			return recorded, nil
		}

		winner, loser := first, second
		if choice == 1 {
			winner, loser = second, first
		}

		if err := NewRecordCommand(c.repo, winner.Path, loser.Path).Execute(ctx); err != nil {
			return recorded, err
		}
		recorded++
		c.logger.Info("comparison recorded", "winner", winner.Path, "loser", loser.Path)
	}
}
