package engine

import "github.com/rbridson/DadChess/internal/chess"

// Status classifies a position from the point of view of the side to move.
type Status int

const (
	InPlay Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "InPlay"
	}
}

// PositionStatus reports whether colour, to move on board, is in check,
// checkmated, stalemated, or simply has moves.
func PositionStatus(board *chess.Board, colour chess.Colour) Status {
	inCheck := IsInCheck(board, colour)
	if !HasLegalMoves(board, colour) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if inCheck {
		return Check
	}
	return InPlay
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
