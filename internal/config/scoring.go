package config

import (
	"fmt"

	"github.com/rbridson/DadChess/internal/errors"
)

// ScoringConfig holds settings for the automated player's evaluation.
type ScoringConfig struct {
	// Jitter is the ratio by which each game's scoring constants are
	// randomised, in [0, 1).
	Jitter float64

	// Fuzz is the width of the noise added to every board score.
	Fuzz float64
}

// NewScoringConfig creates a ScoringConfig with default values.
func NewScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		Jitter: 0.05,
		Fuzz:   0.25,
	}
}

// Validate checks the ranges of the scoring settings.
func (s *ScoringConfig) Validate() error {
	if s.Jitter < 0 || s.Jitter >= 1 {
		return fmt.Errorf("jitter %v not in [0,1): %w", s.Jitter, errors.ErrInvalidConfig)
	}
	if s.Fuzz < 0 {
		return fmt.Errorf("fuzz %v is negative: %w", s.Fuzz, errors.ErrInvalidConfig)
	}
	return nil
}
