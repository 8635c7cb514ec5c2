// Package game runs a session between a human and the automated player.
//
// A Game is a small state machine. The user selects one of their pieces,
// then a destination; a legal move is applied and the automated player
// replies immediately, so control returns to the user with the position
// already updated. Once a game is over only Restart changes it.
package game

import (
	"math/rand"

	"golang.org/x/exp/slices"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/config"
	"github.com/rbridson/DadChess/internal/engine"
	"github.com/rbridson/DadChess/internal/eval"
)

// Game holds the state of one session.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	evaluator *eval.Evaluator

	board      chess.Board
	userColour chess.Colour
	phase      Phase
	result     Outcome
	status     string

	// selection is the user's selected piece; destinations are its legal moves.
	selection    *chess.Square
	destinations []chess.Square

	// Pieces removed from the board, in capture order.
	takenWhite []chess.Piece
	takenBlack []chess.Piece

	lastAutomatedMove *chess.Move

	// plies counts moves applied since the game started.
	plies int
}

// New starts a game from the standard position with the user playing
// cfg.UserColour. When the user plays black the automated player opens.
func New(cfg *config.Config) *Game {
	g := newGame(cfg)
	g.Restart(g.cfg.UserColour)
	return g
}

// NewFromBoard starts a game from an arbitrary position. If toMove is the
// automated side it replies at once; otherwise a user who has no legal move
// finishes the game immediately.
func NewFromBoard(cfg *config.Config, board chess.Board, toMove chess.Colour) *Game {
	g := newGame(cfg)
	g.reset(g.cfg.UserColour, board)
	if toMove != g.userColour {
		g.phase = AutomatedTurn
		g.RunAutomatedTurn()
	} else {
		g.checkUserCanMove()
	}
	return g
}

func newGame(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Game{cfg: cfg, rng: cfg.Rand()}
}

// Restart throws the current game away and starts again from the standard
// position with a fresh scoring profile.
func (g *Game) Restart(userColour chess.Colour) {
	g.reset(userColour, chess.NewInitialBoard())
	if userColour == chess.Black {
		g.phase = AutomatedTurn
		g.RunAutomatedTurn()
	}
}

// reset installs board and a new profile, clearing all other state.
func (g *Game) reset(userColour chess.Colour, board chess.Board) {
	profile := eval.NewProfile(g.rng, g.cfg.Scoring.Jitter)
	g.evaluator = eval.NewEvaluator(profile, g.rng, g.cfg.Scoring.Fuzz)

	g.board = board
	g.userColour = userColour
	g.phase = UserTurn
	g.result = InProgress
	g.status = StatusReady
	g.clearSelection()
	g.takenWhite = nil
	g.takenBlack = nil
	g.lastAutomatedMove = nil
	g.plies = 0

	g.cfg.Logf(1, "new game: user plays %v, piece values P%.3f N%.3f B%.3f R%.3f Q%.3f, danger %.3f",
		userColour,
		profile.PieceValue[chess.W(chess.Pawn)], profile.PieceValue[chess.W(chess.Knight)],
		profile.PieceValue[chess.W(chess.Bishop)], profile.PieceValue[chess.W(chess.Rook)],
		profile.PieceValue[chess.W(chess.Queen)], profile.DangerFactor)
}

// SelectSquare selects the user's piece on sq and returns where it may move.
// The result is empty, and nothing is selected, if the square is empty,
// holds an opponent piece, the piece cannot move, or the game is over.
func (g *Game) SelectSquare(sq chess.Square) []chess.Square {
	g.clearSelection()
	if g.phase != UserTurn || !sq.Valid() {
		return nil
	}
	if !g.board.Get(sq).Is(g.userColour) {
		return nil
	}
	moves := engine.LegalMoves(&g.board, sq)
	if len(moves) == 0 {
		return nil
	}
	g.selection = &sq
	g.destinations = moves
	return slices.Clone(moves)
}

// AttemptUserMove moves the selected piece to `to` if that is one of its
// legal destinations, then lets the automated player reply. Otherwise the
// selection is dropped and false is returned.
func (g *Game) AttemptUserMove(to chess.Square) bool {
	if g.selection == nil || g.phase != UserTurn || !slices.Contains(g.destinations, to) {
		g.clearSelection()
		return false
	}
	move := chess.Move{From: *g.selection, To: to}
	g.clearSelection()

	g.apply(move)
	g.cfg.Logf(1, "user move %v", move)

	g.phase = AutomatedTurn
	g.RunAutomatedTurn()
	return true
}

// PlayMove selects move.From and attempts move.To in one call.
func (g *Game) PlayMove(move chess.Move) bool {
	if len(g.SelectSquare(move.From)) == 0 {
		return false
	}
	return g.AttemptUserMove(move.To)
}

// RunAutomatedTurn plays the automated player's reply, or finishes the game
// if it has no legal move. It does nothing unless the game is waiting on
// the automated player.
func (g *Game) RunAutomatedTurn() {
	if g.phase != AutomatedTurn || g.result.Over() {
		return
	}
	g.clearSelection()
	automated := g.userColour.Opposite()

	var observe func(Candidate)
	if g.cfg.Verbosity >= 2 {
		observe = func(c Candidate) {
			g.cfg.Logf(2, "  candidate %v score %.3f", c.Move, c.Score)
		}
	}
	best, ok := selectMove(&g.board, automated, g.evaluator, observe)
	if !ok {
		if engine.IsInCheck(&g.board, automated) {
			g.finish(winFor(g.userColour), StatusUserWon)
		} else {
			g.finish(Stalemate, StatusStalemate)
		}
		return
	}

	g.apply(best.Move)
	g.lastAutomatedMove = &best.Move
	g.cfg.Logf(1, "automated move %v score %.3f", best.Move, best.Score)

	g.phase = UserTurn
	g.checkUserCanMove()
}

// checkUserCanMove finishes the game when the user has no legal move and
// otherwise sets the status for the user's turn.
func (g *Game) checkUserCanMove() {
	inCheck := engine.IsInCheck(&g.board, g.userColour)
	if !engine.HasLegalMoves(&g.board, g.userColour) {
		if inCheck {
			g.finish(winFor(g.userColour.Opposite()), StatusUserLost)
		} else {
			g.finish(Stalemate, StatusStalemate)
		}
		return
	}
	if inCheck {
		g.status = StatusCheck
	} else {
		g.status = StatusReady
	}
}

// apply plays move on the board and records any capture.
func (g *Game) apply(move chess.Move) {
	next, captured := engine.ApplyMove(&g.board, move.From, move.To)
	g.board = next
	g.plies++
	if captured == chess.Empty {
		return
	}
	if captured.Colour() == chess.White {
		g.takenWhite = append(g.takenWhite, captured)
	} else {
		g.takenBlack = append(g.takenBlack, captured)
	}
}

func (g *Game) finish(result Outcome, status string) {
	g.result = result
	g.status = status
	g.phase = Finished
	g.clearSelection()
	g.cfg.Logf(1, "game over: %v", result)
}

func (g *Game) clearSelection() {
	g.selection = nil
	g.destinations = nil
}

// Board returns a copy of the current position.
func (g *Game) Board() chess.Board {
	return g.board
}

// TakenWhite returns the captured white pieces in capture order.
func (g *Game) TakenWhite() []chess.Piece {
	return slices.Clone(g.takenWhite)
}

// TakenBlack returns the captured black pieces in capture order.
func (g *Game) TakenBlack() []chess.Piece {
	return slices.Clone(g.takenBlack)
}

// Result returns the outcome, InProgress until the game ends.
func (g *Game) Result() Outcome {
	return g.result
}

// Phase returns whose turn the game is waiting on.
func (g *Game) Phase() Phase {
	return g.phase
}

// Status returns the status line for the user.
func (g *Game) Status() string {
	return g.status
}

// LastAutomatedMove returns the automated player's most recent move.
func (g *Game) LastAutomatedMove() (chess.Move, bool) {
	if g.lastAutomatedMove == nil {
		return chess.Move{}, false
	}
	return *g.lastAutomatedMove, true
}

// Selection returns the selected square and its legal destinations.
func (g *Game) Selection() (chess.Square, []chess.Square, bool) {
	if g.selection == nil {
		return chess.Square{}, nil, false
	}
	return *g.selection, slices.Clone(g.destinations), true
}

// Plies returns the number of moves played by both sides.
func (g *Game) Plies() int {
	return g.plies
}

// UserColour returns the colour the user plays.
func (g *Game) UserColour() chess.Colour {
	return g.userColour
}

// ToMove returns the colour whose move it is.
func (g *Game) ToMove() chess.Colour {
	if g.phase == AutomatedTurn {
		return g.userColour.Opposite()
	}
	return g.userColour
}

// Profile returns the scoring profile of the current game.
func (g *Game) Profile() *eval.Profile {
	return g.evaluator.Profile()
}
