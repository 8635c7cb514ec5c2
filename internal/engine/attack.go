package engine

import "github.com/rbridson/DadChess/internal/chess"

// AttackersOf returns every piece, of either colour, that could capture on sq
// if an enemy piece stood there. Whose turn it is and check are ignored, and
// en passant is not modelled. Callers should only test membership and colour;
// the order is generation order.
func AttackersOf(board *chess.Board, sq chess.Square) []chess.Piece {
	var attackers []chess.Piece

	// Pawns attack diagonally forward, so look one rank behind sq for each colour.
	for _, colour := range [2]chess.Colour{chess.Black, chess.White} {
		pawn := chess.MakeColouredPiece(colour, chess.Pawn)
		rank := sq.Rank - colour.Forward()
		if rank < chess.FirstRank || rank > chess.LastRank {
			continue
		}
		if sq.File > chess.FirstFile && board.At(sq.File-1, rank) == pawn {
			attackers = append(attackers, pawn)
		}
		if sq.File < chess.LastFile && board.At(sq.File+1, rank) == pawn {
			attackers = append(attackers, pawn)
		}
	}

	for _, d := range knightDirs {
		from := sq.Offset(d[0], d[1])
		if !from.Valid() {
			continue
		}
		if p := board.Get(from); p.Kind() == chess.Knight {
			attackers = append(attackers, p)
		}
	}

	attackers = appendRayAttackers(attackers, board, sq, diagonalDirs, chess.Bishop)
	attackers = appendRayAttackers(attackers, board, sq, straightDirs, chess.Rook)

	return attackers
}

// appendRayAttackers scans outward from sq along each direction. The first
// occupied square attacks if it holds a slider of the given kind or a queen,
// or a king when it is adjacent to sq.
func appendRayAttackers(attackers []chess.Piece, board *chess.Board, sq chess.Square, dirs [4][2]int, slider chess.Kind) []chess.Piece {
	for _, dir := range dirs {
		first := true
		for cur := sq.Offset(dir[0], dir[1]); cur.Valid(); cur = cur.Offset(dir[0], dir[1]) {
			p := board.Get(cur)
			if p == chess.Empty {
				first = false
				continue
			}
			if k := p.Kind(); k == slider || k == chess.Queen || (first && k == chess.King) {
				attackers = append(attackers, p)
			}
			break
		}
	}
	return attackers
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, p := range AttackersOf(board, sq) {
		if p.Colour() == byColour {
			return true
		}
	}
	return false
}
