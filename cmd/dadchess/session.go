package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/config"
	"github.com/rbridson/DadChess/internal/engine"
	"github.com/rbridson/DadChess/internal/eval"
	"github.com/rbridson/DadChess/internal/game"
	"github.com/rbridson/DadChess/internal/storage"
)

// session connects one game to a line-oriented terminal.
type session struct {
	cfg      *config.Config
	out      io.Writer
	game     *game.Game
	store    *storage.Storage
	renderer *renderer

	started  time.Time
	recorded bool
}

// newSession starts a game, from fen when it is not empty.
func newSession(cfg *config.Config, store *storage.Storage, fen string) (*session, error) {
	s := &session{
		cfg:      cfg,
		out:      cfg.OutputFile,
		store:    store,
		renderer: newRenderer(cfg.Display),
		started:  time.Now(),
	}
	if fen == "" {
		s.game = game.New(cfg)
	} else {
		board, toMove, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			return nil, err
		}
		s.game = game.NewFromBoard(cfg, board, toMove)
	}
	s.recordIfOver()
	return s, nil
}

// run reads commands until quit or end of input.
func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	s.renderer.render(s.out, s.game)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "%v (type 'help' for commands)\n", err)
			continue
		}
		if s.handle(cmd) {
			return nil
		}
	}
}

// handle executes one command and reports whether the session should end.
func (s *session) handle(cmd command) bool {
	switch cmd.kind {
	case cmdQuit:
		return true
	case cmdHelp:
		fmt.Fprint(s.out, helpText)
	case cmdRedraw:
		s.renderer.render(s.out, s.game)
	case cmdSquare:
		s.clickSquare(cmd.square)
	case cmdMove:
		before := s.game.Plies()
		if s.game.PlayMove(cmd.move) {
			s.afterUserMove(before)
		} else {
			fmt.Fprintf(s.out, "Illegal move %v.\n", cmd.move)
		}
	case cmdRestart:
		s.game.Restart(cmd.colour)
		s.started = time.Now()
		s.recorded = false
		s.renderer.render(s.out, s.game)
	case cmdMoves:
		s.listMoves(cmd.square)
	case cmdEval:
		board := s.game.Board()
		fmt.Fprintf(s.out, "Evaluation: %+.2f\n", eval.StaticScore(&board, s.game.Profile()))
	case cmdFEN:
		board := s.game.Board()
		fmt.Fprintln(s.out, engine.BoardToFEN(&board, s.game.ToMove()))
	case cmdStats:
		s.printStats()
	}
	return false
}

// clickSquare mirrors clicking on the board: with a piece selected, a
// destination moves it and any other square drops the selection; with
// nothing selected the square is selected.
func (s *session) clickSquare(sq chess.Square) {
	if _, _, ok := s.game.Selection(); ok {
		before := s.game.Plies()
		if s.game.AttemptUserMove(sq) {
			s.afterUserMove(before)
			return
		}
		fmt.Fprintln(s.out, "Selection cleared.")
		s.renderer.render(s.out, s.game)
		return
	}
	if len(s.game.SelectSquare(sq)) == 0 {
		fmt.Fprintf(s.out, "Nothing to move on %v.\n", sq)
		return
	}
	s.renderer.render(s.out, s.game)
}

// afterUserMove reports the reply, if the automated side made one.
func (s *session) afterUserMove(before int) {
	if m, ok := s.game.LastAutomatedMove(); ok && s.game.Plies() > before+1 {
		fmt.Fprintf(s.out, "Computer plays %v.\n", m)
	}
	s.renderer.render(s.out, s.game)
	s.recordIfOver()
}

func (s *session) listMoves(sq chess.Square) {
	board := s.game.Board()
	moves := engine.LegalMoves(&board, sq)
	if len(moves) == 0 {
		fmt.Fprintf(s.out, "No legal moves from %v.\n", sq)
		return
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintf(s.out, "%v: %s\n", sq, strings.Join(names, " "))
}

// recordIfOver stores a finished game once.
func (s *session) recordIfOver() {
	result := s.game.Result()
	if !result.Over() || s.recorded {
		return
	}
	s.recorded = true
	if s.store == nil {
		return
	}

	winner, decisive := result.Winner()
	board := s.game.Board()
	err := s.store.RecordGame(storage.GameResult{
		Won:        decisive && winner == s.game.UserColour(),
		Draw:       !decisive,
		UserColour: s.game.UserColour(),
		Moves:      (s.game.Plies() + 1) / 2,
		FinalFEN:   engine.BoardToFEN(&board, s.game.ToMove()),
		Duration:   time.Since(s.started),
	})
	if err != nil {
		fmt.Fprintf(s.out, "Could not record the result: %v\n", err)
	}
}

func (s *session) printStats() {
	if s.store == nil {
		fmt.Fprintln(s.out, "Statistics are off; start with -stats DIR to record results.")
		return
	}
	stats, err := s.store.LoadStats()
	if err != nil {
		fmt.Fprintf(s.out, "Could not read statistics: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Played %d: won %d, lost %d, drawn %d (%.0f%%). Best streak %d.\n",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws, stats.WinRate(), stats.LongestWinStrk)
}
