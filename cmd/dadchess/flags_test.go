package main

import (
	"testing"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/config"
	"github.com/rbridson/DadChess/internal/errors"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreFloat(ptr *float64, val float64) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Colour
		wantErr bool
	}{
		{"white", chess.White, false},
		{"White", chess.White, false},
		{"w", chess.White, false},
		{"black", chess.Black, false},
		{" B ", chess.Black, false},
		{"red", chess.White, true},
		{"", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseColour(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseColour(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("parseColour(%q) error = %v, want ErrInvalidConfig", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseColour(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags() error = %v", err)
		}
		if cfg.UserColour != chess.White {
			t.Errorf("UserColour = %v, want White", cfg.UserColour)
		}
		if cfg.Scoring.Jitter != 0.05 || cfg.Scoring.Fuzz != 0.25 {
			t.Errorf("Scoring = %+v, want defaults", *cfg.Scoring)
		}
		if !cfg.Display.Colour || !cfg.Display.ShowCoordinates {
			t.Errorf("Display = %+v, want colour and coordinates", *cfg.Display)
		}
	})

	t.Run("black without colour", func(t *testing.T) {
		defer saveRestoreString(userColour, "black")()
		defer saveRestoreBool(noColour, true)()
		defer saveRestoreFloat(jitter, 0)()
		defer saveRestoreString(statsDir, "auto")()

		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags() error = %v", err)
		}
		if cfg.UserColour != chess.Black {
			t.Errorf("UserColour = %v, want Black", cfg.UserColour)
		}
		if cfg.Display.Colour {
			t.Error("Display.Colour should be false")
		}
		if cfg.Scoring.Jitter != 0 {
			t.Errorf("Jitter = %v, want 0", cfg.Scoring.Jitter)
		}
		if cfg.StatsDir != "auto" {
			t.Errorf("StatsDir = %q, want auto", cfg.StatsDir)
		}
	})

	t.Run("bad colour", func(t *testing.T) {
		defer saveRestoreString(userColour, "green")()
		if err := applyFlags(config.NewConfig()); err == nil {
			t.Error("applyFlags() should reject an unknown colour")
		}
	})

	t.Run("out of range jitter fails validation", func(t *testing.T) {
		defer saveRestoreFloat(jitter, 2)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags() error = %v", err)
		}
		if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
		}
	})
}
