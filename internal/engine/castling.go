package engine

import "github.com/rbridson/DadChess/internal/chess"

// Files involved in castling. The king starts on the e-file and the rooks in
// the corners of the same rank.
const (
	kingHomeFile      = 4
	kingsideRookFile  = chess.LastFile
	queensideRookFile = chess.FirstFile
	kingsideKingFile  = 6
	queensideKingFile = 2
)

// castleDestinations returns the castling landing squares for the king on sq.
// A side is available when its right is still held, the rook is in its
// corner, every square between king and rook is empty, and none of the
// king's start, transit and landing squares is attacked by the opponent.
func castleDestinations(board *chess.Board, sq chess.Square, colour chess.Colour) []chess.Square {
	home := chess.Sq(kingHomeFile, colour.HomeRank())
	if sq != home {
		return nil
	}

	var moves []chess.Square
	for _, kingside := range [2]bool{false, true} {
		if canCastle(board, colour, kingside) {
			moves = append(moves, chess.Sq(castleKingFile(kingside), home.Rank))
		}
	}
	return moves
}

// canCastle checks the castling conditions for one side.
func canCastle(board *chess.Board, colour chess.Colour, kingside bool) bool {
	if !board.Castle.Has(colour, kingside) {
		return false
	}
	rank := colour.HomeRank()
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	if board.At(castleRookFile(kingside), rank) != rook {
		return false
	}

	// Are there any pieces in between king and rook?
	lo, hi := queensideRookFile+1, kingHomeFile-1
	if kingside {
		lo, hi = kingHomeFile+1, kingsideRookFile-1
	}
	for file := lo; file <= hi; file++ {
		if board.At(file, rank) != chess.Empty {
			return false
		}
	}

	// Is the king's position or any square it passes through under attack?
	lo, hi = queensideKingFile, kingHomeFile
	if kingside {
		lo, hi = kingHomeFile, kingsideKingFile
	}
	for file := lo; file <= hi; file++ {
		if IsSquareAttacked(board, chess.Sq(file, rank), colour.Opposite()) {
			return false
		}
	}
	return true
}

// castleKingFile returns the file the king lands on.
func castleKingFile(kingside bool) int {
	if kingside {
		return kingsideKingFile
	}
	return queensideKingFile
}

// castleRookFile returns the home file of the rook on that side.
func castleRookFile(kingside bool) int {
	if kingside {
		return kingsideRookFile
	}
	return queensideRookFile
}

// updateCastlingRights removes the right tied to a rook home square when a
// move starts or ends there, which covers the rook moving and being captured.
func updateCastlingRights(rights *chess.CastleRights, sq chess.Square) {
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if sq.Rank != colour.HomeRank() {
			continue
		}
		switch sq.File {
		case kingsideRookFile:
			rights.Clear(colour, true)
		case queensideRookFile:
			rights.Clear(colour, false)
		}
	}
}
