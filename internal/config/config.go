// Package config provides configuration for DadChess.
package config

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// UserColour is the side the human plays.
	UserColour chess.Colour

	// Seed makes a session reproducible; 0 seeds from the clock.
	Seed int64

	Verbosity int // 0=nothing, 1=game events, 2=every candidate score

	// Scoring tunes the automated player.
	Scoring *ScoringConfig

	// Display tunes the terminal board.
	Display *DisplayConfig

	// StatsDir is where results are recorded; empty disables statistics.
	StatsDir string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		UserColour: chess.White,
		Verbosity:  0,
		Scoring:    NewScoringConfig(),
		Display:    NewDisplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.UserColour != chess.White && c.UserColour != chess.Black {
		return fmt.Errorf("user colour %d: %w", c.UserColour, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Scoring == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing scoring settings")
	}
	return c.Scoring.Validate()
}

// Rand returns a generator seeded from Seed, or from the clock when Seed is 0.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
