package domain

import "time"

// Outcome classifies a comparison from the winner side's perspective.
type Outcome int

const (
	OutcomeLoss Outcome = iota
	OutcomeDraw
	OutcomeWin
)

// Comparison is one immutable pairwise judgment from the append-only log.
// ID is the log insertion order and breaks ties between equal timestamps
// during replay. Magnitude is signed: positive means the winner side won,
// zero a draw, negative a reversed outcome. The recorder always writes +1;
// the sign convention is kept so the log stays general.
type Comparison struct {
	ID        int64
	Winner    string
	Loser     string
	Magnitude int
	At        time.Time
}

// Outcome classifies the signed magnitude.
func (c Comparison) Outcome() Outcome {
	switch {
	case c.Magnitude > 0:
		return OutcomeWin
	case c.Magnitude < 0:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}
