// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/config"
	"github.com/rbridson/DadChess/internal/errors"
)

var (
	// Game options
	userColour = flag.String("colour", "white", "Side you play: white or black")
	seed       = flag.Int64("seed", 0, "Random seed (0 = seed from the clock)")
	startFEN   = flag.String("fen", "", "Start from this FEN position instead of the standard one")

	// Automated player
	jitter = flag.Float64("jitter", 0.05, "Per-game randomisation of the scoring constants, in [0,1)")
	fuzz   = flag.Float64("fuzz", 0.25, "Width of the noise added to each position score")

	// Display
	noColour = flag.Bool("nocolour", false, "Disable ANSI colours")
	unicode  = flag.Bool("unicode", false, "Draw pieces with chess glyphs")
	noCoords = flag.Bool("nocoords", false, "Hide file and rank labels")

	// Statistics
	statsDir = flag.String("stats", "", "Record results in this directory ('auto' = platform data directory)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 0, "Diagnostic level: 0=none, 1=game events, 2=candidate scores")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	colour, err := parseColour(*userColour)
	if err != nil {
		return err
	}
	cfg.UserColour = colour
	cfg.Seed = *seed
	cfg.Verbosity = *verbosity

	applyScoringFlags(cfg)
	applyDisplayFlags(cfg)
	applyStatsFlags(cfg)
	return nil
}

// applyScoringFlags configures the automated player.
func applyScoringFlags(cfg *config.Config) {
	cfg.Scoring.Jitter = *jitter
	cfg.Scoring.Fuzz = *fuzz
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Colour = !*noColour
	cfg.Display.Unicode = *unicode
	cfg.Display.ShowCoordinates = !*noCoords
}

// applyStatsFlags configures statistics recording.
func applyStatsFlags(cfg *config.Config) {
	cfg.StatsDir = *statsDir
}

// parseColour accepts "white"/"black" or their first letters.
func parseColour(text string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("colour %q: %w", text, errors.ErrInvalidConfig)
	}
}
