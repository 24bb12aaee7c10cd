// Package storage provides SQLite-based persistence for rounds and player profiles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPlayer names rounds recorded without a player.
const DefaultPlayer = "player"

// ErrNegativeScore is returned when a round carries a negative score.
var ErrNegativeScore = errors.New("storage: negative score")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID            int64
	Player        string
	Score         int
	PipeSpeed     float64
	PipesPerBreak int
	CreatedAt     time.Time
}

// Player is a player's cumulative profile.
type Player struct {
	Name      string
	Points    int64 // sum of all round scores
	HighScore int
	Rounds    int
	UpdatedAt time.Time
}

// RecordResult describes what RecordRound changed.
type RecordResult struct {
	RoundID      int64
	Player       Player
	PreviousHigh int
	NewHigh      bool
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
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
	// One writer at a time; the syncer submits from several goroutines.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			pipe_speed REAL NOT NULL DEFAULT 0,
			pipes_per_break INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);

		CREATE TABLE IF NOT EXISTS players (
			name TEXT PRIMARY KEY,
			points INTEGER NOT NULL DEFAULT 0,
			high_score INTEGER NOT NULL DEFAULT 0,
			rounds INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_players_high ON players(high_score DESC);
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

// RecordRound inserts the round, adds its score to the player's points and
// raises the player's high score if the round beat it.
func (s *Store) RecordRound(r Round) (RecordResult, error) {
	if r.Score < 0 {
		return RecordResult{}, ErrNegativeScore
	}
	if r.Player == "" {
		r.Player = DefaultPlayer
	}

	tx, err := s.db.Begin()
	if err != nil {
		return RecordResult{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	var res RecordResult
	err = tx.QueryRow("SELECT high_score FROM players WHERE name = ?", r.Player).Scan(&res.PreviousHigh)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return RecordResult{}, fmt.Errorf("storage: cannot query player: %w", err)
	}

	result, err := tx.Exec(
		"INSERT INTO rounds (player, score, pipe_speed, pipes_per_break) VALUES (?, ?, ?, ?)",
		r.Player, r.Score, r.PipeSpeed, r.PipesPerBreak,
	)
	if err != nil {
		return RecordResult{}, fmt.Errorf("storage: cannot save round: %w", err)
	}
	res.RoundID, err = result.LastInsertId()
	if err != nil {
		return RecordResult{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO players (name, points, high_score, rounds, updated_at)
		 VALUES (?, ?, ?, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   points = points + excluded.points,
		   high_score = MAX(high_score, excluded.high_score),
		   rounds = rounds + 1,
		   updated_at = CURRENT_TIMESTAMP`,
		r.Player, r.Score, r.Score,
	)
	if err != nil {
		return RecordResult{}, fmt.Errorf("storage: cannot update player: %w", err)
	}

	p, err := scanPlayer(tx.QueryRow(
		"SELECT name, points, high_score, rounds, updated_at FROM players WHERE name = ?",
		r.Player,
	))
	if err != nil {
		return RecordResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecordResult{}, fmt.Errorf("storage: cannot commit round: %w", err)
	}

	res.Player = p
	res.NewHigh = r.Score > res.PreviousHigh
	return res, nil
}

// TopScores retrieves the top rounds, for one player or for everyone when
// player is empty. Results are ordered by score descending.
func (s *Store) TopScores(player string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, player, score, pipe_speed, pipes_per_break, created_at FROM rounds`
	args := []any{}
	if player != "" {
		query += ` WHERE player = ?`
		args = append(args, player)
	}
	query += ` ORDER BY score DESC, id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.PipeSpeed, &r.PipesPerBreak, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Leaderboard returns player profiles ordered by high score, then points.
func (s *Store) Leaderboard(limit int) ([]Player, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT name, points, high_score, rounds, updated_at
		 FROM players
		 ORDER BY high_score DESC, points DESC, name ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return players, nil
}

// Player returns a player's profile, or nil if the player has no rounds.
func (s *Store) Player(name string) (*Player, error) {
	p, err := scanPlayer(s.db.QueryRow(
		"SELECT name, points, high_score, rounds, updated_at FROM players WHERE name = ?",
		name,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// HighScore returns the player's best score, or the overall best when name
// is empty. Returns 0 if no rounds exist.
func (s *Store) HighScore(name string) (int, error) {
	var score sql.NullInt64
	var err error
	if name == "" {
		err = s.db.QueryRow("SELECT MAX(high_score) FROM players").Scan(&score)
	} else {
		err = s.db.QueryRow("SELECT high_score FROM players WHERE name = ?", name).Scan(&score)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearPlayer deletes a player's rounds and profile.
func (s *Store) ClearPlayer(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM rounds WHERE player = ?", name); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM players WHERE name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot clear player: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (Player, error) {
	var p Player
	var updatedAt any
	if err := row.Scan(&p.Name, &p.Points, &p.HighScore, &p.Rounds, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Player{}, err
		}
		return Player{}, fmt.Errorf("storage: cannot scan player: %w", err)
	}
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
