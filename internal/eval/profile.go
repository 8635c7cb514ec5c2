// Package eval scores chess positions for the automated player.
//
// Scores are in pawn-ish units where a positive value favours white. Each
// game gets its own slightly randomised Profile so that the automated player
// does not repeat itself from game to game.
package eval

import (
	"math/rand"

	"github.com/rbridson/DadChess/internal/chess"
)

// DefaultJitter is the jitter ratio applied to the base constants.
const DefaultJitter = 0.05

// DefaultFuzz is the width of the uniform noise added to each board score.
const DefaultFuzz = 0.25

// Base constants, indexed by Kind.
var (
	basePieceValue   = [chess.NumKinds]float64{0, 1, 10, 12, 20, 30, 1000}
	baseDepthFactor  = [chess.NumKinds]float64{0, -0.2, -0.1, -0.1, 0, 0, 0.1}
	baseCenterFactor = [chess.NumKinds]float64{0, 1.2, 1.1, 1.05, 1.02, 1.01, 0.99}
)

const baseDangerFactor = 0.8

// Profile holds the scoring constants for one game.
// A Profile is never modified after NewProfile returns.
type Profile struct {
	// PieceValue is positive for white pieces and the exact negation for
	// the matching black piece. Empty is 0.
	PieceValue [chess.NumPieces]float64

	// DepthFactor rewards (or penalises) advancing, shared by both colours.
	DepthFactor [chess.NumKinds]float64

	// CenterFactor scales the depth term by closeness to the centre files.
	CenterFactor [chess.NumKinds]float64

	// DangerFactor is the fraction of a piece's value lost when it has more
	// attackers than supporters.
	DangerFactor float64
}

// NewProfile builds a profile by jittering the base constants with the given
// ratio. A ratio of 0 yields the base constants exactly.
func NewProfile(rng *rand.Rand, ratio float64) *Profile {
	p := &Profile{}
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		value := basePieceValue[kind] * scale(rng, ratio)
		p.PieceValue[chess.W(kind)] = value
		p.PieceValue[chess.B(kind)] = -value
		p.DepthFactor[kind] = baseDepthFactor[kind] + uniform(rng, -ratio, ratio)
		p.CenterFactor[kind] = 1 + (baseCenterFactor[kind]-1)*scale(rng, ratio)
	}
	p.DangerFactor = baseDangerFactor * scale(rng, ratio)
	return p
}

// BaseProfile returns the unjittered constants.
func BaseProfile() *Profile {
	return NewProfile(nil, 0)
}

// scale draws from U(1-ratio, 1+ratio).
func scale(rng *rand.Rand, ratio float64) float64 {
	return uniform(rng, 1-ratio, 1+ratio)
}

// uniform draws from U(lo, hi). With no generator, or an empty interval, it
// returns the midpoint.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if rng == nil || lo == hi {
		return (lo + hi) / 2
	}
	return lo + (hi-lo)*rng.Float64()
}
