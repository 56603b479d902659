package domain

import "math"

// Glicko-2 constants. Every entry starts from the same prior: neutral
// skill and maximal uncertainty. The system constant tau bounds how fast
// volatility can move; smaller values suit domains with few upsets.
const (
	DefaultRating     = 1500.0
	DefaultDeviation  = 350.0
	DefaultVolatility = 0.06

	glickoScale          = 173.7178
	tau                  = 0.5
	convergenceTolerance = 1e-6
)

// Rating is a derived skill estimate. Value is the Glicko-2 rating on the
// original Glicko scale, Deviation the uncertainty around it.
type Rating struct {
	Value      float64
	Deviation  float64
	Volatility float64
}

// NewRating returns the fixed prior every entry starts from.
func NewRating() Rating {
	return Rating{
		Value:      DefaultRating,
		Deviation:  DefaultDeviation,
		Volatility: DefaultVolatility,
	}
}

// UpdatePair applies one comparison to both participants and returns their
// new ratings. Each side is rated against the other as the sole opponent of
// a one-game rating period. The outcome is seen from the winner side:
// OutcomeWin scores 1 for winner and 0 for loser, OutcomeDraw 0.5 for both.
func UpdatePair(winner, loser Rating, outcome Outcome) (Rating, Rating) {
	var score float64
	switch outcome {
	case OutcomeWin:
		score = 1
	case OutcomeDraw:
		score = 0.5
	case OutcomeLoss:
		score = 0
	}
	return updateOne(winner, loser, score), updateOne(loser, winner, 1-score)
}

// updateOne runs the Glicko-2 update for one player against one opponent.
func updateOne(player, opponent Rating, score float64) Rating {
	mu := (player.Value - DefaultRating) / glickoScale
	phi := player.Deviation / glickoScale
	muJ := (opponent.Value - DefaultRating) / glickoScale
	phiJ := opponent.Deviation / glickoScale

	gJ := impact(phiJ)
	e := expect(mu, muJ, phiJ)

	v := 1 / (gJ * gJ * e * (1 - e))
	delta := v * gJ * (score - e)

	sigma := nextVolatility(phi, v, delta, player.Volatility)
	phiStar := math.Sqrt(phi*phi + sigma*sigma)
	phiNew := 1 / math.Sqrt(1/(phiStar*phiStar)+1/v)
	muNew := mu + phiNew*phiNew*gJ*(score-e)

	return Rating{
		Value:      DefaultRating + glickoScale*muNew,
		Deviation:  glickoScale * phiNew,
		Volatility: sigma,
	}
}

// impact is the g function: it dampens an opponent's influence by their
// own uncertainty.
func impact(phi float64) float64 {
	return 1 / math.Sqrt(1+3*phi*phi/(math.Pi*math.Pi))
}

// expect is the E function: the expected score against the opponent.
func expect(mu, muJ, phiJ float64) float64 {
	return 1 / (1 + math.Exp(-impact(phiJ)*(mu-muJ)))
}

// nextVolatility solves for the new volatility with the Illinois variant
// of regula falsi, as prescribed by the Glicko-2 paper.
func nextVolatility(phi, v, delta, sigma float64) float64 {
	a := math.Log(sigma * sigma)
	f := func(x float64) float64 {
		ex := math.Exp(x)
		num := ex * (delta*delta - phi*phi - v - ex)
		den := 2 * (phi*phi + v + ex) * (phi*phi + v + ex)
		return num/den - (x-a)/(tau*tau)
	}

	lo := a
	var hi float64
	if delta*delta > phi*phi+v {
		hi = math.Log(delta*delta - phi*phi - v)
	} else {
		k := 1.0
		for f(a-k*tau) < 0 {
			k++
		}
		hi = a - k*tau
	}

	fLo, fHi := f(lo), f(hi)
	for math.Abs(hi-lo) > convergenceTolerance {
		mid := lo + (lo-hi)*fLo/(fHi-fLo)
		fMid := f(mid)
		if fMid*fHi <= 0 {
			lo, fLo = hi, fHi
		} else {
			fLo /= 2
		}
		hi, fHi = mid, fMid
	}

	return math.Exp(lo / 2)
}
