package chess

// CastleRights holds the four independent castling flags.
type CastleRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastleRights has every flag set, as at the start of a game.
var AllCastleRights = CastleRights{
	WhiteKingside:  true,
	WhiteQueenside: true,
	BlackKingside:  true,
	BlackQueenside: true,
}

// Has reports whether the colour may still castle on the given side.
func (c CastleRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return c.WhiteKingside
	case colour == White:
		return c.WhiteQueenside
	case kingside:
		return c.BlackKingside
	default:
		return c.BlackQueenside
	}
}

// Clear removes the right for the colour on the given side.
func (c *CastleRights) Clear(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		c.WhiteKingside = false
	case colour == White:
		c.WhiteQueenside = false
	case kingside:
		c.BlackKingside = false
	default:
		c.BlackQueenside = false
	}
}

// ClearColour removes both rights of the colour.
func (c *CastleRights) ClearColour(colour Colour) {
	c.Clear(colour, true)
	c.Clear(colour, false)
}

// Board is an 8x8 grid of pieces plus castling rights.
// It is a value type: assigning a Board copies every square, so a Board
// handed to another function can never be changed behind the caller's back.
type Board struct {
	// Squares[file][rank]; rank 0 is black's back rank.
	Squares [BoardSize][BoardSize]Piece

	Castle CastleRights
}

// NewBoard creates an empty board with no castling rights.
func NewBoard() Board {
	return Board{}
}

// backRank lists the back-rank pieces from file a to file h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][White.HomeRank()] = W(backRank[file])
		b.Squares[file][White.PawnRank()] = W(Pawn)
		b.Squares[file][Black.PawnRank()] = B(Pawn)
		b.Squares[file][Black.HomeRank()] = B(backRank[file])
	}
	b.Castle = AllCastleRights
}

// Get returns the piece on the square, Empty if none.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq.File][sq.Rank]
}

// At returns the piece at the given file and rank.
func (b *Board) At(file, rank int) Piece {
	return b.Squares[file][rank]
}

// Set places a piece on the square. Only used while a board is being built.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq.File][sq.Rank] = piece
}

// Pieces returns the occupied squares holding the colour's pieces, in
// file-major order (files 0..7 outer, ranks 0..7 inner).
func (b *Board) Pieces(colour Colour) []Square {
	var squares []Square
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank].Is(colour) {
				squares = append(squares, Square{File: file, Rank: rank})
			}
		}
	}
	return squares
}

// Mirrored returns the board with every colour swapped and ranks reversed.
// Castling rights swap colour with the pieces.
func (b *Board) Mirrored() Board {
	var m Board
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			m.Squares[file][LastRank-rank] = b.Squares[file][rank].Swapped()
		}
	}
	m.Castle = CastleRights{
		WhiteKingside:  b.Castle.BlackKingside,
		WhiteQueenside: b.Castle.BlackQueenside,
		BlackKingside:  b.Castle.WhiteKingside,
		BlackQueenside: b.Castle.WhiteQueenside,
	}
	return m
}
