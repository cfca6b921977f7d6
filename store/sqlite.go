package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"wrapsnake/game/manager"
)

// SQLite persists the high score and a log of every finished game.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens the database at path. ":memory:" gives a private
// in-memory database.
func NewSQLite(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection, so ":memory:" is a single database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Migrate creates the tables if they do not exist
func (s *SQLite) Migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

func (s *SQLite) LoadHighScore(ctx context.Context) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx, `SELECT score FROM high_score WHERE id = 1`).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}
	return score, nil
}

func (s *SQLite) SaveHighScore(ctx context.Context, score int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		score, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

func (s *SQLite) RecordGame(ctx context.Context, rec manager.GameRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (id, score, length, ticks, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Score, rec.Length, int64(rec.Ticks), rec.StartedAt.UTC(), rec.EndedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}
	return nil
}

// TopScores returns up to n games, best score first
func (s *SQLite) TopScores(ctx context.Context, n int) ([]manager.GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, score, length, ticks, started_at, ended_at
		FROM games ORDER BY score DESC, ended_at ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []manager.GameRecord
	for rows.Next() {
		var rec manager.GameRecord
		var ticks int64
		if err := rows.Scan(&rec.ID, &rec.Score, &rec.Length, &ticks, &rec.StartedAt, &rec.EndedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		rec.Ticks = uint64(ticks)
		games = append(games, rec)
	}
	return games, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
