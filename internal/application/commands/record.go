package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"versus/internal/application"
	"versus/internal/ports"
)

// winMagnitude is the outcome the recorder always emits: a unit win for
// the winner side. The log keeps the signed-magnitude column so draws and
// reversed outcomes stay representable.
const winMagnitude = 1

// RecordCommand appends one pairwise outcome to the comparison log.
type RecordCommand struct {
	repo   ports.EntryStore
	Winner string
	Loser  string
}

// NewRecordCommand creates a new RecordCommand.
func NewRecordCommand(repo ports.EntryStore, winner, loser string) *RecordCommand {
	return &RecordCommand{
		repo:   repo,
		Winner: winner,
		Loser:  loser,
	}
}

// Validate checks the command parameters.
func (c *RecordCommand) Validate() error {
	if c.Winner == "" || c.Loser == "" {
		return errors.New("winner and loser paths are required")
	}
	if c.Winner == c.Loser {
		return fmt.Errorf("%s: %w", c.Winner, application.ErrSelfComparison)
	}
	return nil
}

// Execute appends the outcome in a single atomic write.
func (c *RecordCommand) Execute(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.repo.RecordComparison(ctx, c.Winner, c.Loser, winMagnitude, time.Now())
}
