package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/config"
	"github.com/rbridson/DadChess/internal/game"
)

// glyphs maps pieces to chess symbols.
var glyphs = map[chess.Piece]rune{
	chess.W(chess.Pawn): '♙', chess.W(chess.Knight): '♘', chess.W(chess.Bishop): '♗',
	chess.W(chess.Rook): '♖', chess.W(chess.Queen): '♕', chess.W(chess.King): '♔',
	chess.B(chess.Pawn): '♟', chess.B(chess.Knight): '♞', chess.B(chess.Bishop): '♝',
	chess.B(chess.Rook): '♜', chess.B(chess.Queen): '♛', chess.B(chess.King): '♚',
}

// renderer draws the board with white at the bottom, the white pieces
// taken by black above it and the black pieces taken by white below.
type renderer struct {
	disp *config.DisplayConfig

	light, dark   *color.Color
	selected      *color.Color
	destination   *color.Color
	lastMove      *color.Color
	label, status *color.Color
}

func newRenderer(disp *config.DisplayConfig) *renderer {
	r := &renderer{
		disp:        disp,
		light:       color.New(color.FgBlack, color.BgHiWhite),
		dark:        color.New(color.FgBlack, color.BgGreen),
		selected:    color.New(color.FgBlack, color.BgHiYellow),
		destination: color.New(color.FgBlack, color.BgHiCyan),
		lastMove:    color.New(color.FgBlack, color.BgYellow),
		label:       color.New(color.Bold),
		status:      color.New(color.Bold, color.FgHiRed),
	}
	if !disp.Colour {
		for _, c := range []*color.Color{r.light, r.dark, r.selected, r.destination, r.lastMove, r.label, r.status} {
			c.DisableColor()
		}
	}
	return r
}

// render writes the whole game view to w.
func (r *renderer) render(w io.Writer, g *game.Game) {
	board := g.Board()
	highlight := r.highlights(g)

	fmt.Fprintln(w, r.taken(g.TakenWhite()))
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		var sb strings.Builder
		if r.disp.ShowCoordinates {
			sb.WriteString(r.label.Sprintf("%d ", chess.BoardSize-rank))
		}
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sq := chess.Sq(file, rank)
			cell := fmt.Sprintf(" %c ", r.symbol(board.Get(sq)))
			sb.WriteString(r.squareColour(sq, highlight).Sprint(cell))
		}
		fmt.Fprintln(w, sb.String())
	}
	if r.disp.ShowCoordinates {
		var sb strings.Builder
		sb.WriteString("  ")
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sb.WriteString(fmt.Sprintf(" %c ", 'a'+file))
		}
		fmt.Fprintln(w, r.label.Sprint(sb.String()))
	}
	fmt.Fprintln(w, r.taken(g.TakenBlack()))
	fmt.Fprintln(w, r.status.Sprint(g.Status()))
}

// highlights returns the colour override for highlighted squares.
func (r *renderer) highlights(g *game.Game) map[chess.Square]*color.Color {
	hl := make(map[chess.Square]*color.Color)
	if m, ok := g.LastAutomatedMove(); ok {
		hl[m.From] = r.lastMove
		hl[m.To] = r.lastMove
	}
	if sel, dests, ok := g.Selection(); ok {
		hl[sel] = r.selected
		for _, d := range dests {
			hl[d] = r.destination
		}
	}
	return hl
}

func (r *renderer) squareColour(sq chess.Square, highlight map[chess.Square]*color.Color) *color.Color {
	if c, ok := highlight[sq]; ok {
		return c
	}
	if (sq.File+sq.Rank)%2 == 0 {
		return r.light
	}
	return r.dark
}

// symbol returns the character drawn for a piece.
func (r *renderer) symbol(p chess.Piece) rune {
	if p == chess.Empty {
		if r.disp.Colour {
			return ' '
		}
		return '.'
	}
	if r.disp.Unicode {
		return glyphs[p]
	}
	return rune(p.Letter())
}

// taken lists captured pieces in capture order.
func (r *renderer) taken(pieces []chess.Piece) string {
	var sb strings.Builder
	sb.WriteString("Taken:")
	for _, p := range pieces {
		sb.WriteByte(' ')
		sb.WriteRune(r.symbol(p))
	}
	return sb.String()
}
