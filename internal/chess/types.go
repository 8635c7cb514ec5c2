// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/rbridson/DadChess/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank delta of a pawn step for the colour.
// White advances toward rank 0, black toward rank 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return LastRank
	}
	return FirstRank
}

// PawnRank returns the rank index pawns of the colour start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Forward()
}

// PromotionRank returns the farthest rank for the colour's pawns.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece or Empty. The zero value is Empty.
type Piece int

// Empty is the piece found on unoccupied squares.
const Empty Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// NumPieces bounds every Piece value; tables indexed by Piece use it as length.
const NumPieces = int(NumKinds) << PieceShift

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, kind Kind) Piece {
	return Piece((int(kind) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakeColouredPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakeColouredPiece(Black, kind)
}

// Colour extracts the colour from a coloured piece. Meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Kind extracts the piece type from a coloured piece.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// IsEmpty reports whether p is the Empty sentinel.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether p is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p != Empty && p.Colour() == colour
}

// Swapped returns the same kind in the other colour.
func (p Piece) Swapped() Piece {
	if p == Empty {
		return Empty
	}
	return MakeColouredPiece(p.Colour().Opposite(), p.Kind())
}

// Letter returns the FEN letter: uppercase for white, lowercase for black.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	l := p.Kind().Letter()
	if p.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Kind().String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	FirstFile = 0
	LastFile  = BoardSize - 1
	FirstRank = 0
	LastRank  = BoardSize - 1
)

// Square is a zero-based (file, rank) pair. Rank 0 is black's back rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= FirstFile && s.File <= LastFile && s.Rank >= FirstRank && s.Rank <= LastRank
}

// Offset returns the square df files and dr ranks away; it may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns algebraic notation, e.g. "e2" for {4, 6}.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('8' - s.Rank)})
}

// ParseSquare converts algebraic notation ("e2") to a Square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	file, rank := text[0], text[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return Square{File: int(file - 'a'), Rank: int('8' - rank)}, nil
}

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// String returns long algebraic notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove converts long algebraic notation ("e2e4") to a Move.
// A trailing promotion letter is accepted and ignored: promotion is always to a queen.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q", text)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q", text)
	}
	return Move{From: from, To: to}, nil
}
