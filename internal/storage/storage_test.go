package storage

import (
	"os"
	"testing"
	"time"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/testutil"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGameStats(t *testing.T) {
	t.Run("NewGameStats", func(t *testing.T) {
		stats := NewGameStats()
		if stats.GamesPlayed != 0 {
			t.Errorf("Expected 0 games played")
		}
		if stats.WinRate() != 0 {
			t.Errorf("Expected 0 win rate")
		}
	})

	t.Run("WinRate", func(t *testing.T) {
		stats := &GameStats{GamesPlayed: 10, Wins: 5, Losses: 3, Draws: 2}
		if rate := stats.WinRate(); rate != 50 {
			t.Errorf("Expected 50%% win rate, got %.2f%%", rate)
		}
	})
}

func TestStorage_LoadStatsEmpty(t *testing.T) {
	s := openTemp(t)

	stats, err := s.LoadStats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats, NewGameStats())
}

func TestStorage_RecordGame(t *testing.T) {
	s := openTemp(t)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	results := []GameResult{
		{Won: true, UserColour: chess.White, Moves: 30, Duration: time.Minute, Finished: start},
		{Won: true, UserColour: chess.Black, Moves: 41, Duration: time.Minute, Finished: start.Add(time.Hour)},
		{Draw: true, UserColour: chess.White, Moves: 60, Duration: time.Minute, Finished: start.Add(2 * time.Hour)},
		{UserColour: chess.Black, Moves: 12, Duration: time.Minute, Finished: start.Add(3 * time.Hour)},
	}
	for _, r := range results {
		testutil.AssertNoError(t, s.RecordGame(r))
	}

	stats, err := s.LoadStats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *stats, GameStats{
		GamesPlayed:    4,
		Wins:           2,
		Losses:         1,
		Draws:          1,
		WinsAsWhite:    1,
		WinsAsBlack:    1,
		TotalPlayTime:  4 * time.Minute,
		LongestWinStrk: 2,
		CurrentStreak:  0,
	})

	recent, err := s.RecentGames(2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(recent), 2)
	testutil.AssertEqual(t, recent[0].Moves, 12)
	testutil.AssertEqual(t, recent[1].Moves, 60)
}

func TestStorage_PersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.RecordGame(GameResult{Won: true, UserColour: chess.White}))
	testutil.AssertNoError(t, s.Close())

	s, err = Open(dir)
	testutil.AssertNoError(t, err)
	defer s.Close()

	stats, err := s.LoadStats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.Wins, 1)
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	dbDir, err := DatabaseDir()
	if err != nil {
		t.Fatalf("DatabaseDir failed: %v", err)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}
}
