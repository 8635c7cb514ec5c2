package game

import "github.com/rbridson/DadChess/internal/chess"

// Outcome is the result of a game. The zero value means the game is still
// being played.
type Outcome int

const (
	InProgress Outcome = iota
	WhiteWins
	BlackWins
	Stalemate
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "WhiteWins"
	case BlackWins:
		return "BlackWins"
	case Stalemate:
		return "Stalemate"
	default:
		return "InProgress"
	}
}

// Over reports whether the game has finished.
func (o Outcome) Over() bool {
	return o != InProgress
}

// Winner returns the winning colour, false for a draw or unfinished game.
func (o Outcome) Winner() (chess.Colour, bool) {
	switch o {
	case WhiteWins:
		return chess.White, true
	case BlackWins:
		return chess.Black, true
	default:
		return chess.White, false
	}
}

// winFor returns the outcome in which colour wins.
func winFor(colour chess.Colour) Outcome {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Phase says whose turn the state machine is waiting on.
type Phase int

const (
	UserTurn Phase = iota
	AutomatedTurn
	Finished
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case UserTurn:
		return "UserTurn"
	case AutomatedTurn:
		return "AutomatedTurn"
	default:
		return "Finished"
	}
}

// Status lines shown to the user.
const (
	StatusReady     = "Ready."
	StatusCheck     = "Check."
	StatusUserLost  = "Checkmate: you lost. :-("
	StatusUserWon   = "Checkmate: you win!"
	StatusStalemate = "Stalemate."
)
