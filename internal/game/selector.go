package game

import (
	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/engine"
)

// Scorer scores a position; positive favours white.
type Scorer interface {
	ScoreBoard(board *chess.Board) float64
}

// Candidate is a move together with the score of the position it leads to.
type Candidate struct {
	Move  chess.Move
	Score float64
}

// BestMove picks the move for colour whose resulting position scores best:
// highest for white, lowest for black. Moves are tried in AllLegalMoves
// order and the first of equally scored moves is kept.
// ok is false when colour has no legal move.
func BestMove(board *chess.Board, colour chess.Colour, scorer Scorer) (chess.Move, bool) {
	best, ok := selectMove(board, colour, scorer, nil)
	return best.Move, ok
}

// selectMove is BestMove with an optional observer called for every
// candidate, in the order they are scored.
func selectMove(board *chess.Board, colour chess.Colour, scorer Scorer, observe func(Candidate)) (Candidate, bool) {
	var best Candidate
	found := false

	for _, from := range board.Pieces(colour) {
		for _, to := range engine.LegalMoves(board, from) {
			next, _ := engine.ApplyMove(board, from, to)
			c := Candidate{Move: chess.Move{From: from, To: to}, Score: scorer.ScoreBoard(&next)}
			if observe != nil {
				observe(c)
			}
			if !found || better(c.Score, best.Score, colour) {
				best = c
				found = true
			}
		}
	}
	return best, found
}

// better reports whether score strictly improves on current for colour.
func better(score, current float64, colour chess.Colour) bool {
	if colour == chess.White {
		return score > current
	}
	return score < current
}
