// Package storage provides SQLite-based persistence for finished FreeCell deals.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only outcomes are stored. A game in progress is never written to disk.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// GameRecord is the outcome of one deal.
type GameRecord struct {
	ID         string // UUID assigned by SaveGame
	DeckID     string
	Player     string // Local user or SSH username
	Moves      int
	Undos      int
	Foundation int  // Cards on foundations when the game ended
	Won        bool
	Duration   time.Duration
	CreatedAt  time.Time
}

// Stats aggregates all recorded games.
type Stats struct {
	Played     int
	Won        int
	WinRate    float64 // 0..1
	BestMoves  int     // Fewest moves in a won game, 0 if none won
	AvgMoves   float64 // Over won games
	LongestWin int     // Longest run of consecutive wins
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			deck_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL DEFAULT 0,
			undos INTEGER NOT NULL DEFAULT 0,
			foundation INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_deck_id ON games(deck_id);
		CREATE INDEX IF NOT EXISTS idx_games_best ON games(won, moves);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records the outcome of a deal and returns its generated ID.
// A zero CreatedAt is replaced with the current time.
func (s *Store) SaveGame(rec GameRecord) (string, error) {
	if rec.DeckID == "" {
		return "", errors.New("storage: cannot save game without a deck id")
	}

	id := uuid.NewString()
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO games (id, deck_id, player, moves, undos, foundation, won, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rec.DeckID, rec.Player, rec.Moves, rec.Undos, rec.Foundation,
		rec.Won, rec.Duration.Milliseconds(), createdAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}
	return id, nil
}

const selectGames = `SELECT id, deck_id, player, moves, undos, foundation, won, duration_ms, created_at FROM games`

// RecentGames returns the most recently played games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(selectGames+` ORDER BY created_at DESC, seq DESC LIMIT ?`, limit)
}

// BestGames returns won games ordered by fewest moves, then fewest undos.
func (s *Store) BestGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectGames+` WHERE won = 1 ORDER BY moves ASC, undos ASC, created_at ASC LIMIT ?`, limit)
}

// GamesForDeck returns every game played on the given deck, newest first.
func (s *Store) GamesForDeck(deckID string) ([]GameRecord, error) {
	return s.query(selectGames+` WHERE deck_id = ? ORDER BY created_at DESC, seq DESC`, deckID)
}

// GameByID returns one game record. It returns nil without error when no
// game has that ID.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	games, err := s.query(selectGames+` WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

func (s *Store) query(q string, args ...any) ([]GameRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var (
			g          GameRecord
			durationMS int64
			createdAt  int64
		)
		if err := rows.Scan(&g.ID, &g.DeckID, &g.Player, &g.Moves, &g.Undos,
			&g.Foundation, &g.Won, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.Duration = time.Duration(durationMS) * time.Millisecond
		g.CreatedAt = time.UnixMilli(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return games, nil
}

// Stats aggregates all recorded games.
func (s *Store) Stats() (Stats, error) {
	var (
		st        Stats
		bestMoves sql.NullInt64
		avgMoves  sql.NullFloat64
		last      sql.NullInt64
	)

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        MIN(CASE WHEN won = 1 THEN moves END),
		        AVG(CASE WHEN won = 1 THEN moves END),
		        MAX(created_at)
		 FROM games`,
	).Scan(&st.Played, &st.Won, &bestMoves, &avgMoves, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if st.Played > 0 {
		st.WinRate = float64(st.Won) / float64(st.Played)
	}
	if bestMoves.Valid {
		st.BestMoves = int(bestMoves.Int64)
	}
	if avgMoves.Valid {
		st.AvgMoves = avgMoves.Float64
	}
	if last.Valid {
		st.LastPlayed = time.UnixMilli(last.Int64)
	}

	st.LongestWin, err = s.longestWinStreak()
	if err != nil {
		return Stats{}, err
	}
	return st, nil
}

func (s *Store) longestWinStreak() (int, error) {
	rows, err := s.db.Query(`SELECT won FROM games ORDER BY created_at ASC, seq ASC`)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query streak: %w", err)
	}
	defer rows.Close()

	longest, current := 0, 0
	for rows.Next() {
		var won bool
		if err := rows.Scan(&won); err != nil {
			return 0, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if won {
			current++
			longest = max(longest, current)
		} else {
			current = 0
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return longest, nil
}

// ClearGames deletes every recorded game.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}
