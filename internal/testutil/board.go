package testutil

import (
	"testing"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/engine"
)

// MustBoard parses a FEN string and returns the board.
// It calls t.Fatal if the FEN is invalid.
func MustBoard(t testing.TB, fen string) chess.Board {
	t.Helper()
	board, _, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// MustSquare parses algebraic square text such as "e2".
func MustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", text, err)
	}
	return sq
}

// MustSquares parses a list of algebraic squares.
func MustSquares(t testing.TB, texts ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(texts))
	for _, text := range texts {
		squares = append(squares, MustSquare(t, text))
	}
	return squares
}
