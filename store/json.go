package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"wrapsnake/game/manager"
)

const maxScoreHistory = 50

type fileStats struct {
	HighScore    int   `json:"highScore"`
	ScoreHistory []int `json:"scoreHistory"`
}

// JSONFile keeps the high score and recent scores in a small JSON document.
// A missing file reads as a zero high score.
type JSONFile struct {
	mu   sync.Mutex
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (f *JSONFile) load() (fileStats, error) {
	var stats fileStats

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	if err := json.Unmarshal(data, &stats); err != nil {
		return stats, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	return stats, nil
}

func (f *JSONFile) save(stats fileStats) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(f.path, data, 0644)
}

func (f *JSONFile) LoadHighScore(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats, err := f.load()
	return stats.HighScore, err
}

func (f *JSONFile) SaveHighScore(ctx context.Context, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats, err := f.load()
	if err != nil {
		return err
	}
	stats.HighScore = score
	return f.save(stats)
}

// ScoreHistory returns the most recent scores, oldest first
func (f *JSONFile) ScoreHistory() ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats, err := f.load()
	return stats.ScoreHistory, err
}

// RecordGame appends the finished game's score to the rolling history
func (f *JSONFile) RecordGame(ctx context.Context, rec manager.GameRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addToHistory(rec.Score)
}

func (f *JSONFile) addToHistory(score int) error {
	stats, err := f.load()
	if err != nil {
		return err
	}

	stats.ScoreHistory = append(stats.ScoreHistory, score)
	if len(stats.ScoreHistory) > maxScoreHistory {
		stats.ScoreHistory = stats.ScoreHistory[len(stats.ScoreHistory)-maxScoreHistory:]
	}
	return f.save(stats)
}

func (f *JSONFile) Close() error {
	return nil
}
