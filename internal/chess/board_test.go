package chess

import (
	"testing"

	"github.com/rbridson/DadChess/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			for rank := 0; rank < BoardSize; rank++ {
				if got := b.At(file, rank); got != Empty {
					t.Errorf("At(%d, %d) = %v; want Empty", file, rank, got)
				}
			}
		}
	})

	t.Run("no castling rights", func(t *testing.T) {
		if b.Castle != (CastleRights{}) {
			t.Errorf("Castle = %+v; want none", b.Castle)
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn a7", "a7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		// Empty squares
		{"empty e3", "e3", Empty},
		{"empty d4", "d4", Empty},
		{"empty f5", "f5", Empty},
		{"empty c6", "c6", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, err := ParseSquare(tt.sq)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.sq, err)
			}
			if got := b.Get(sq); got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	t.Run("orientation", func(t *testing.T) {
		// White sits on the high ranks and pushes toward rank 0.
		if got := b.At(4, 7); got != W(King) {
			t.Errorf("At(4, 7) = %v; want white king", got)
		}
		if got := b.At(4, 0); got != B(King) {
			t.Errorf("At(4, 0) = %v; want black king", got)
		}
		if White.Forward() != -1 || Black.Forward() != 1 {
			t.Errorf("Forward() = (%d, %d); want (-1, 1)", White.Forward(), Black.Forward())
		}
		if White.PromotionRank() != 0 || Black.PromotionRank() != 7 {
			t.Errorf("PromotionRank() = (%d, %d); want (0, 7)", White.PromotionRank(), Black.PromotionRank())
		}
	})

	t.Run("castling rights", func(t *testing.T) {
		if b.Castle != AllCastleRights {
			t.Errorf("Castle = %+v; want all rights", b.Castle)
		}
	})
}

func TestPieceEncoding(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for kind := Pawn; kind < NumKinds; kind++ {
			p := MakeColouredPiece(colour, kind)
			if p == Empty {
				t.Fatalf("MakeColouredPiece(%v, %v) = Empty", colour, kind)
			}
			if int(p) >= NumPieces {
				t.Errorf("%v encodes to %d; want < %d", p, p, NumPieces)
			}
			if p.Colour() != colour || p.Kind() != kind {
				t.Errorf("%v decodes to (%v, %v)", p, p.Colour(), p.Kind())
			}
			if !p.Is(colour) || p.Is(colour.Opposite()) {
				t.Errorf("%v.Is() is wrong", p)
			}
			if p.Swapped().Colour() != colour.Opposite() || p.Swapped().Kind() != kind {
				t.Errorf("%v.Swapped() = %v", p, p.Swapped())
			}
		}
	}

	if Empty.Kind() != NoKind {
		t.Errorf("Empty.Kind() = %v; want NoKind", Empty.Kind())
	}
	if Empty.Is(White) || Empty.Is(Black) {
		t.Error("Empty must not belong to a colour")
	}
	if W(Knight).Letter() != 'N' || B(Knight).Letter() != 'n' {
		t.Errorf("Letter() = %c/%c; want N/n", W(Knight).Letter(), B(Knight).Letter())
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		text    string
		want    Square
		wantErr bool
	}{
		{"a8", Sq(0, 0), false},
		{"h1", Sq(7, 7), false},
		{"e2", Sq(4, 6), false},
		{"E4", Sq(4, 4), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a", Square{}, true},
		{"", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSquare(tt.text)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
			if tt.text == "E4" {
				return
			}
			if got.String() != tt.text {
				t.Errorf("String() = %q; want %q", got.String(), tt.text)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove error: %v", err)
	}
	if m.From != Sq(4, 6) || m.To != Sq(4, 4) {
		t.Errorf("ParseMove(e2e4) = %+v", m)
	}
	if m.String() != "e2e4" {
		t.Errorf("String() = %q; want e2e4", m.String())
	}

	if _, err := ParseMove("a7a8q"); err != nil {
		t.Errorf("ParseMove with promotion suffix: %v", err)
	}
	for _, bad := range []string{"e2", "e2e9", "z1a1", "e2e4e5"} {
		if _, err := ParseMove(bad); !errors.Is(err, errors.ErrInvalidMove) {
			t.Errorf("ParseMove(%q) error = %v; want ErrInvalidMove", bad, err)
		}
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	original := NewInitialBoard()
	copied := original

	copied.Set(Sq(4, 4), W(Pawn))
	copied.Castle.ClearColour(White)

	if got := original.At(4, 4); got != Empty {
		t.Errorf("original At(4, 4) = %v after copy modification; want Empty", got)
	}
	if !original.Castle.WhiteKingside || !original.Castle.WhiteQueenside {
		t.Error("original castling rights changed after copy modification")
	}
}

func TestCastleRights(t *testing.T) {
	c := AllCastleRights
	c.Clear(Black, false)

	tests := []struct {
		colour   Colour
		kingside bool
		want     bool
	}{
		{White, true, true},
		{White, false, true},
		{Black, true, true},
		{Black, false, false},
	}
	for _, tt := range tests {
		if got := c.Has(tt.colour, tt.kingside); got != tt.want {
			t.Errorf("Has(%v, kingside=%v) = %v; want %v", tt.colour, tt.kingside, got, tt.want)
		}
	}
}

func TestPiecesOrder(t *testing.T) {
	b := NewInitialBoard()
	squares := b.Pieces(Black)
	if len(squares) != 16 {
		t.Fatalf("len(Pieces(Black)) = %d; want 16", len(squares))
	}
	if squares[0] != Sq(0, 0) || squares[1] != Sq(0, 1) || squares[2] != Sq(1, 0) {
		t.Errorf("Pieces(Black) not file-major: %v", squares[:3])
	}
}

func TestMirrored(t *testing.T) {
	b := NewInitialBoard()
	b.Castle.WhiteQueenside = false
	m := b.Mirrored()

	if m.Squares != b.Squares {
		t.Error("initial position should be its own mirror")
	}
	if m.Castle.BlackQueenside || !m.Castle.WhiteQueenside {
		t.Errorf("Mirrored castle = %+v; rights should swap colour", m.Castle)
	}
}
