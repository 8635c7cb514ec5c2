package engine

import "github.com/rbridson/DadChess/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king counts as check, so a position that lost its
// king can never look safe.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := FindKing(board, colour)
	if !ok {
		return true
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if board.At(file, rank) == king {
				return chess.Sq(file, rank), true
			}
		}
	}
	return chess.Square{}, false
}
