package domain

import (
	"math"
	"slices"
	"strings"
)

// ComputeRatings replays the comparison log against the current entry set
// and returns a rating for every live entry. Comparisons touching an entry
// that is missing or currently tombstoned are skipped: the user can no
// longer see that content, so it must not shape the standings.
//
// The replay is a fold, not a global solve: comparisons apply strictly in
// (timestamp, log id) order and each updates only its two participants.
// The result is a pure function of the inputs; no state is carried
// between calls.
func ComputeRatings(entries []*Entry, comparisons []Comparison) map[string]Rating {
	ratings := make(map[string]Rating, len(entries))
	for _, e := range entries {
		if !e.Deleted() {
			ratings[e.Path] = NewRating()
		}
	}

	ordered := slices.Clone(comparisons)
	slices.SortStableFunc(ordered, func(a, b Comparison) int {
		if c := a.At.Compare(b.At); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	for _, c := range ordered {
		winner, okW := ratings[c.Winner]
		loser, okL := ratings[c.Loser]
		if !okW || !okL {
			continue
		}
		ratings[c.Winner], ratings[c.Loser] = UpdatePair(winner, loser, c.Outcome())
	}

	return ratings
}

// RankedEntry pairs an entry with its derived rating for listing and
// candidate sampling.
type RankedEntry struct {
	*Entry
	Rating Rating
}

// Rank orders entries by rounded rating ascending, ties broken by path, so
// the last element is the current best. Deleted entries are excluded
// unless includeDeleted is set; when included they carry the prior rating,
// since no comparison involving them replays.
func Rank(entries []*Entry, ratings map[string]Rating, includeDeleted bool) []RankedEntry {
	ranked := make([]RankedEntry, 0, len(entries))
	for _, e := range entries {
		if e.Deleted() && !includeDeleted {
			continue
		}
		rating, ok := ratings[e.Path]
		if !ok {
			rating = NewRating()
		}
		ranked = append(ranked, RankedEntry{Entry: e, Rating: rating})
	}

	slices.SortFunc(ranked, func(a, b RankedEntry) int {
		ra, rb := int64(math.Round(a.Rating.Value)), int64(math.Round(b.Rating.Value))
		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		}
		return strings.Compare(a.Path, b.Path)
	})

	return ranked
}
