package engine

import "github.com/rbridson/DadChess/internal/chess"

// LegalMoves returns the destinations from sq that do not leave the mover's
// own king in check, followed by any castling destinations for a king.
// If the answer is empty, this piece cannot be moved.
func LegalMoves(board *chess.Board, sq chess.Square) []chess.Square {
	piece := board.Get(sq)
	if piece == chess.Empty {
		return nil
	}
	colour := piece.Colour()

	var moves []chess.Square
	for _, to := range PseudoMoves(board, sq) {
		if tryMove(board, sq, to, colour) {
			moves = append(moves, to)
		}
	}

	if piece.Kind() == chess.King {
		moves = append(moves, castleDestinations(board, sq, colour)...)
	}
	return moves
}

// AllLegalMoves returns every legal move for the colour in selection order:
// origins file-major (files 0..7 outer, ranks 0..7 inner), destinations in
// LegalMoves order.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Pieces(colour) {
		for _, to := range LegalMoves(board, from) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Pieces(colour) {
		if len(LegalMoves(board, from)) > 0 {
			return true
		}
	}
	return false
}

// tryMove makes a move on a copy of the board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	next, _ := ApplyMove(board, from, to)
	return !IsInCheck(&next, colour)
}
