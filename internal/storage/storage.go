package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/rbridson/DadChess/internal/chess"
	"github.com/rbridson/DadChess/internal/errors"
)

// Storage keys
const (
	keyStats      = "stats"
	keyGamePrefix = "game/"
)

// GameStats summarises every recorded game from the user's point of view.
type GameStats struct {
	GamesPlayed    int           `json:"games_played"`
	Wins           int           `json:"wins"`
	Losses         int           `json:"losses"`
	Draws          int           `json:"draws"`
	WinsAsWhite    int           `json:"wins_as_white"`
	WinsAsBlack    int           `json:"wins_as_black"`
	TotalPlayTime  time.Duration `json:"total_play_time"`
	LongestWinStrk int           `json:"longest_win_streak"`
	CurrentStreak  int           `json:"current_streak"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{}
}

// WinRate returns the win rate as a percentage (0-100)
func (s *GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// GameResult is one finished game.
type GameResult struct {
	Won        bool          `json:"won"`
	Draw       bool          `json:"draw"`
	UserColour chess.Colour  `json:"user_colour"`
	Moves      int           `json:"moves"`
	FinalFEN   string        `json:"final_fen"`
	Duration   time.Duration `json:"duration"`
	Finished   time.Time     `json:"finished"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir. An empty dir selects
// DatabaseDir.
func Open(dir string) (*Storage, error) {
	if dir == "" {
		var err error
		if dir, err = DatabaseDir(); err != nil {
			return nil, errors.Wrapf(errors.ErrStorage, "locating data directory: %v", err)
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %v: %w", dir, err, errors.ErrStorage)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordGame stores the game and folds it into the statistics.
func (s *Storage) RecordGame(result GameResult) error {
	if result.Finished.IsZero() {
		result.Finished = time.Now()
	}

	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	switch {
	case result.Draw:
		stats.Draws++
		stats.CurrentStreak = 0
	case result.Won:
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
		if result.UserColour == chess.White {
			stats.WinsAsWhite++
		} else {
			stats.WinsAsBlack++
		}
	default:
		stats.Losses++
		stats.CurrentStreak = 0
	}

	statsData, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	gameData, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyStats), statsData); err != nil {
			return err
		}
		return txn.Set(gameKey(result.Finished), gameData)
	})
}

// RecentGames returns up to n recorded games, most recent first.
func (s *Storage) RecentGames(n int) ([]GameResult, error) {
	var games []GameResult

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyGamePrefix)
		// Reverse iteration seeks to the last key <= the seek key.
		seek := append(append([]byte{}, prefix...), 0xff)
		for it.Seek(seek); it.ValidForPrefix(prefix) && len(games) < n; it.Next() {
			var g GameResult
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &g)
			}); err != nil {
				return err
			}
			games = append(games, g)
		}
		return nil
	})

	return games, err
}

// gameKey orders games by finish time.
func gameKey(finished time.Time) []byte {
	return []byte(fmt.Sprintf("%s%020d", keyGamePrefix, finished.UnixNano()))
}
