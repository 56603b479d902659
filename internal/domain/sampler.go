package domain

import (
	"errors"
	"math/rand"
	"time"
)

// ErrNotEnoughEntries is returned when a pair is requested from fewer than
// two live entries.
var ErrNotEnoughEntries = errors.New("not enough live entries to compare")

// Policy selects how comparison candidates are drawn.
type Policy int

const (
	// PolicyUniform draws two distinct entries uniformly at random.
	PolicyUniform Policy = iota
	// PolicyUncertainty draws without replacement, weighted by rating
	// deviation, so the least settled entries surface first.
	PolicyUncertainty
	// PolicyMixed draws with PolicyUncertainty with probability MixWeight
	// and PolicyUniform otherwise.
	PolicyMixed
)

// DefaultMixWeight is the probability PolicyMixed picks the
// uncertainty-weighted draw.
const DefaultMixWeight = 0.7

// ParsePolicy maps a config string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "uniform":
		return PolicyUniform, nil
	case "uncertainty":
		return PolicyUncertainty, nil
	case "mixed", "":
		return PolicyMixed, nil
	}
	return PolicyMixed, errors.New("unknown sampler policy: " + s)
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithRand sets the random source, letting tests seed deterministically.
func WithRand(rng *rand.Rand) SamplerOption {
	return func(s *Sampler) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithMixWeight sets the uncertainty probability for PolicyMixed.
func WithMixWeight(w float64) SamplerOption {
	return func(s *Sampler) {
		if w >= 0 && w <= 1 {
			s.mixWeight = w
		}
	}
}

// Sampler picks two distinct entries to present for comparison. It carries
// no state between calls beyond its random source; across runs the
// comparison log is the only memory.
type Sampler struct {
	policy    Policy
	mixWeight float64
	rng       *rand.Rand
}

// NewSampler creates a sampler for the given policy.
func NewSampler(policy Policy, opts ...SamplerOption) *Sampler {
	s := &Sampler{
		policy:    policy,
		mixWeight: DefaultMixWeight,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pair returns two distinct candidates from the ranked set.
func (s *Sampler) Pair(ranked []RankedEntry) (RankedEntry, RankedEntry, error) {
	if len(ranked) < 2 {
		return RankedEntry{}, RankedEntry{}, ErrNotEnoughEntries
	}

	policy := s.policy
	if policy == PolicyMixed {
		if s.rng.Float64() < s.mixWeight {
			policy = PolicyUncertainty
		} else {
			policy = PolicyUniform
		}
	}

	switch policy {
	case PolicyUncertainty:
		return s.weightedPair(ranked)
	default:
		return s.uniformPair(ranked)
	}
}

func (s *Sampler) uniformPair(ranked []RankedEntry) (RankedEntry, RankedEntry, error) {
	first := s.rng.Intn(len(ranked))
	second := s.rng.Intn(len(ranked) - 1)
	if second >= first {
		second++
	}
	return ranked[first], ranked[second], nil
}

func (s *Sampler) weightedPair(ranked []RankedEntry) (RankedEntry, RankedEntry, error) {
	first := s.weightedIndex(ranked, -1)
	second := s.weightedIndex(ranked, first)
	return ranked[first], ranked[second], nil
}

// weightedIndex draws one index weighted by rating deviation, skipping the
// excluded index. Falls back to a uniform draw when all weights are zero.
func (s *Sampler) weightedIndex(ranked []RankedEntry, exclude int) int {
	var total float64
	for i, r := range ranked {
		if i == exclude {
			continue
		}
		total += r.Rating.Deviation
	}

	if total <= 0 {
		idx := s.rng.Intn(len(ranked) - btoi(exclude >= 0))
		if exclude >= 0 && idx >= exclude {
			idx++
		}
		return idx
	}

	target := s.rng.Float64() * total
	for i, r := range ranked {
		if i == exclude {
			continue
		}
		target -= r.Rating.Deviation
		if target < 0 {
			return i
		}
	}
	// Float rounding can leave a sliver; take the last eligible index.
	if last := len(ranked) - 1; last != exclude {
		return last
	}
	return len(ranked) - 2
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
