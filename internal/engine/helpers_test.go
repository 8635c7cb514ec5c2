package engine

import (
	"testing"

	"github.com/rbridson/DadChess/internal/chess"
)

// mustBoard parses a FEN string, failing the test on error.
func mustBoard(t testing.TB, fen string) chess.Board {
	t.Helper()
	board, _, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// sq parses algebraic square text, failing the test on error.
func sq(t testing.TB, text string) chess.Square {
	t.Helper()
	s, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", text, err)
	}
	return s
}

// squareNames renders squares in algebraic notation for stable comparison.
func squareNames(squares []chess.Square) map[string]bool {
	names := make(map[string]bool, len(squares))
	for _, s := range squares {
		names[s.String()] = true
	}
	return names
}

// containsSquare reports whether text names one of squares.
func containsSquare(squares []chess.Square, text string) bool {
	return squareNames(squares)[text]
}
