// dadchess plays chess against a simple automated opponent in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rbridson/DadChess/internal/config"
	"github.com/rbridson/DadChess/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("dadchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	store := openStats(cfg)
	if store != nil {
		defer store.Close()
	}

	s, err := newSession(cfg, store, *startFEN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := s.run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// openStats opens the statistics store if one was requested. A store that
// cannot be opened is reported and the game carries on without it.
func openStats(cfg *config.Config) *storage.Storage {
	if cfg.StatsDir == "" {
		return nil
	}
	dir := cfg.StatsDir
	if dir == "auto" {
		dir = ""
	}
	store, err := storage.Open(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: statistics disabled: %v\n", err)
		return nil
	}
	return store
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dadchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against the computer. Type 'help' in the game for commands.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
