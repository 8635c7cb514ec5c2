package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece type.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// NewBoardFromFEN creates a board from a FEN string and reports the side to
// move. En passant and clock fields are accepted but ignored: the engine
// models neither.
func NewBoardFromFEN(fen string) (chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Board{}, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(&board, parts[0]); err != nil {
		return chess.Board{}, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return chess.Board{}, chess.White, err
	}

	if err := parseCastlingRights(&board, parts); err != nil {
		return chess.Board{}, chess.White, err
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN lists rank 8 first, which is rank index 0 on our board.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.FirstRank
	file := chess.FirstFile

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement",
					Expected: "8 squares per rank", Got: fmt.Sprintf("%d", file)}
			}
			rank++
			file = chess.FirstFile
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind := ConvertFENCharToKind(byte(c))
			if kind == chess.NoKind {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement",
					Got: fmt.Sprintf("piece character %q", c)}
			}
			if file > chess.LastFile || rank > chess.LastRank {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement",
					Got: "position out of bounds"}
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(chess.Sq(file, rank), chess.MakeColouredPiece(colour, kind))
			file++
		}
	}
	if rank != chess.LastRank || file != chess.BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement",
			Expected: "8 ranks of 8 squares"}
	}
	return nil
}

// parseSideToMove parses the side to move field; white when absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "side to move",
			Expected: "w or b", Got: parts[1]}
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castle = chess.CastleRights{}

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castle.WhiteKingside = true
		case 'Q':
			board.Castle.WhiteQueenside = true
		case 'k':
			board.Castle.BlackKingside = true
		case 'q':
			board.Castle.BlackQueenside = true
		default:
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling",
				Expected: "KQkq or -", Got: parts[2]}
		}
	}
	return nil
}

// BoardToFEN converts a board to a FEN string. The en passant field is
// always "-" and the clocks are written as "0 1".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board.Castle)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		emptyCount := 0
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			piece := board.At(file, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.LastRank {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastleRights) {
	if rights == (chess.CastleRights{}) {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if rights.BlackKingside {
		sb.WriteByte('k')
	}
	if rights.BlackQueenside {
		sb.WriteByte('q')
	}
}
