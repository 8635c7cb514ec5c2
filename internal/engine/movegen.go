package engine

import "github.com/rbridson/DadChess/internal/chess"

// PseudoMoves returns the destinations the piece on sq can reach by its
// movement geometry alone, ignoring whether its own king is left in check.
// Castling is not included. An empty square yields no moves.
func PseudoMoves(board *chess.Board, sq chess.Square) []chess.Square {
	piece := board.Get(sq)
	if piece == chess.Empty {
		return nil
	}
	colour := piece.Colour()

	switch piece.Kind() {
	case chess.Pawn:
		return pawnMoves(board, sq, colour)
	case chess.Knight:
		return stepMoves(board, sq, colour, knightDirs[:])
	case chess.King:
		return stepMoves(board, sq, colour, kingDirs[:])
	case chess.Bishop:
		return slidingMoves(board, sq, colour, true, false)
	case chess.Rook:
		return slidingMoves(board, sq, colour, false, true)
	case chess.Queen:
		return slidingMoves(board, sq, colour, true, true)
	}
	return nil
}

// pawnMoves generates single and double pushes and diagonal captures.
func pawnMoves(board *chess.Board, sq chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := colour.Forward()

	ahead := sq.Offset(0, dir)
	if !ahead.Valid() {
		return nil
	}
	if board.Get(ahead) == chess.Empty {
		moves = append(moves, ahead)
		// Double push from the starting rank
		if sq.Rank == colour.PawnRank() {
			twoAhead := sq.Offset(0, 2*dir)
			if board.Get(twoAhead) == chess.Empty {
				moves = append(moves, twoAhead)
			}
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		target := sq.Offset(df, dir)
		if target.Valid() && board.Get(target).Is(colour.Opposite()) {
			moves = append(moves, target)
		}
	}
	return moves
}

// stepMoves generates single-step moves for knights and kings.
func stepMoves(board *chess.Board, sq chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, offset := range offsets {
		target := sq.Offset(offset[0], offset[1])
		if target.Valid() && !board.Get(target).Is(colour) {
			moves = append(moves, target)
		}
	}
	return moves
}

// slidingMoves walks each ray until blocked, including an enemy blocker.
func slidingMoves(board *chess.Board, sq chess.Square, colour chess.Colour, diagonal, straight bool) []chess.Square {
	var dirs [][2]int
	if diagonal {
		dirs = append(dirs, diagonalDirs[:]...)
	}
	if straight {
		dirs = append(dirs, straightDirs[:]...)
	}

	var moves []chess.Square
	for _, dir := range dirs {
		for target := sq.Offset(dir[0], dir[1]); target.Valid(); target = target.Offset(dir[0], dir[1]) {
			p := board.Get(target)
			if p.Is(colour) {
				break
			}
			moves = append(moves, target)
			if p != chess.Empty {
				break // Blocked
			}
		}
	}
	return moves
}
