package store

import (
	"context"
	"sync"

	"wrapsnake/game/manager"
)

// Memory keeps the high score and game log in process. Nothing survives a
// restart; it backs tests and -store=memory.
type Memory struct {
	mu        sync.Mutex
	highScore int
	games     []manager.GameRecord
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadHighScore(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highScore, nil
}

func (m *Memory) SaveHighScore(ctx context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highScore = score
	return nil
}

func (m *Memory) RecordGame(ctx context.Context, rec manager.GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games = append(m.games, rec)
	return nil
}

func (m *Memory) Games() []manager.GameRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]manager.GameRecord, len(m.games))
	copy(out, m.games)
	return out
}

func (m *Memory) Close() error {
	return nil
}
