package main

import (
	"fmt"
	"strings"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/errors"
)

// commandKind identifies a line of user input.
type commandKind int

const (
	cmdRedraw commandKind = iota
	cmdSquare
	cmdMove
	cmdRestart
	cmdMoves
	cmdEval
	cmdFEN
	cmdStats
	cmdHelp
	cmdQuit
)

// command is one parsed line of user input.
type command struct {
	kind   commandKind
	square chess.Square
	move   chess.Move
	colour chess.Colour
}

// parseCommand parses a line such as "e2e4", "e2", "restart black" or "quit".
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: cmdRedraw}, nil
	}

	word, args := fields[0], fields[1:]
	switch word {
	case "quit", "exit", "q":
		return command{kind: cmdQuit}, nil
	case "help", "?":
		return command{kind: cmdHelp}, nil
	case "eval":
		return command{kind: cmdEval}, nil
	case "fen":
		return command{kind: cmdFEN}, nil
	case "stats":
		return command{kind: cmdStats}, nil
	case "board":
		return command{kind: cmdRedraw}, nil
	case "restart", "new":
		colour := chess.White
		if len(args) > 0 {
			c, err := parseColour(args[0])
			if err != nil {
				return command{}, fmt.Errorf("restart: %w", err)
			}
			colour = c
		}
		return command{kind: cmdRestart, colour: colour}, nil
	case "moves":
		if len(args) != 1 {
			return command{}, errors.Wrap(errors.ErrInvalidSquare, "moves needs one square")
		}
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			return command{}, err
		}
		return command{kind: cmdMoves, square: sq}, nil
	}

	if len(fields) != 1 {
		return command{}, fmt.Errorf("unknown command %q", line)
	}
	switch len(word) {
	case 2:
		sq, err := chess.ParseSquare(word)
		if err != nil {
			return command{}, err
		}
		return command{kind: cmdSquare, square: sq}, nil
	case 4, 5:
		m, err := chess.ParseMove(word)
		if err != nil {
			return command{}, err
		}
		return command{kind: cmdMove, move: m}, nil
	default:
		return command{}, fmt.Errorf("unknown command %q", line)
	}
}

const helpText = `Commands:
  e2e4            move a piece
  e2 then e4      select a piece, then its destination
  moves e2        list the legal moves of the piece on e2
  restart [white|black]
                  start a new game
  eval            show the static evaluation (positive favours white)
  fen             show the position as FEN
  stats           show recorded results
  quit            leave
`
