package engine

import "github.com/rbridson/DadChess/internal/chess"

// ApplyMove returns the board after moving the piece on from to to, together
// with the piece that stood on to beforehand (Empty if none). The input board
// is never modified.
//
// A king moving two files castles: the rook from that side's corner lands on
// the square the king passed over. Moving a king clears both of its colour's
// castling rights, and any move from or to a rook home square clears that
// rook's right. A pawn reaching its farthest rank becomes a queen.
func ApplyMove(board *chess.Board, from, to chess.Square) (chess.Board, chess.Piece) {
	next := *board
	piece := next.Get(from)

	if piece.Kind() == chess.King {
		if df := to.File - from.File; abs(df) == 2 {
			kingside := df > 0
			rookFrom := chess.Sq(castleRookFile(kingside), from.Rank)
			rookTo := chess.Sq(from.File+df/2, from.Rank)
			next.Set(rookTo, next.Get(rookFrom))
			next.Set(rookFrom, chess.Empty)
		}
		next.Castle.ClearColour(piece.Colour())
	}

	// Disallow future castling if the move touches a rook's home square
	updateCastlingRights(&next.Castle, from)
	updateCastlingRights(&next.Castle, to)

	if piece.Kind() == chess.Pawn && to.Rank == piece.Colour().PromotionRank() {
		piece = chess.MakeColouredPiece(piece.Colour(), chess.Queen)
	}

	captured := next.Get(to)
	next.Set(to, piece)
	next.Set(from, chess.Empty)
	return next, captured
}
