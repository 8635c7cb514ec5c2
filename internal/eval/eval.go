package eval

import (
	"math"
	"math/rand"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/engine"
)

// boardCentre is the midpoint of the file and rank ranges.
const boardCentre = 3.5

// ScorePiece scores the piece on sq, 0 if the square is empty.
//
// The score is the piece value plus a positional term that grows with the
// distance from the middle ranks and is amplified toward the centre files.
// A piece with more enemy attackers than friendly supporters loses
// DangerFactor of its value.
func ScorePiece(board *chess.Board, sq chess.Square, profile *Profile) float64 {
	piece := board.Get(sq)
	if piece == chess.Empty {
		return 0
	}
	kind := piece.Kind()

	score := profile.PieceValue[piece]
	centre := boardCentre - math.Abs(float64(sq.File)-boardCentre)
	score += (float64(sq.Rank) - boardCentre) * profile.DepthFactor[kind] *
		math.Pow(profile.CenterFactor[kind], centre)

	supporters, attackers := 0, 0
	for _, p := range engine.AttackersOf(board, sq) {
		if p.Colour() == piece.Colour() {
			supporters++
		} else {
			attackers++
		}
	}
	if attackers > supporters {
		score -= profile.DangerFactor * profile.PieceValue[piece]
	}
	return score
}

// StaticScore sums ScorePiece over every square.
func StaticScore(board *chess.Board, profile *Profile) float64 {
	var total float64
	for file := chess.FirstFile; file <= chess.LastFile; file++ {
		for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
			total += ScorePiece(board, chess.Sq(file, rank), profile)
		}
	}
	return total
}

// Evaluator scores whole boards with a fixed profile plus a little noise,
// so that equally good moves are not always chosen in the same order.
type Evaluator struct {
	profile *Profile
	rng     *rand.Rand
	fuzz    float64
}

// NewEvaluator creates an evaluator. A nil rng or a fuzz of 0 disables
// the noise.
func NewEvaluator(profile *Profile, rng *rand.Rand, fuzz float64) *Evaluator {
	return &Evaluator{profile: profile, rng: rng, fuzz: fuzz}
}

// Profile returns the evaluator's scoring profile.
func (e *Evaluator) Profile() *Profile {
	return e.profile
}

// ScoreBoard returns StaticScore plus one draw from U[0, fuzz).
func (e *Evaluator) ScoreBoard(board *chess.Board) float64 {
	score := StaticScore(board, e.profile)
	if e.rng != nil && e.fuzz > 0 {
		score += e.fuzz * e.rng.Float64()
	}
	return score
}
