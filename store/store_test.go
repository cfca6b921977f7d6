package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapsnake/game/manager"
)

func record(id string, score int) manager.GameRecord {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return manager.GameRecord{
		ID:        id,
		Score:     score,
		Length:    3 + score/10,
		Ticks:     uint64(score * 4),
		StartedAt: start,
		EndedAt:   start.Add(time.Duration(score) * time.Second),
	}
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())
	// migrations are idempotent
	require.NoError(t, db.Migrate())

	score, err := db.LoadHighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	require.NoError(t, db.SaveHighScore(ctx, 120))
	require.NoError(t, db.SaveHighScore(ctx, 340))
	score, err = db.LoadHighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 340, score)

	require.NoError(t, db.RecordGame(ctx, record("a", 40)))
	require.NoError(t, db.RecordGame(ctx, record("b", 90)))
	require.NoError(t, db.RecordGame(ctx, record("c", 10)))

	top, err := db.TopScores(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].ID)
	assert.Equal(t, 90, top[0].Score)
	assert.Equal(t, uint64(360), top[0].Ticks)
	assert.Equal(t, 90*time.Second, top[0].Duration())
	assert.Equal(t, "a", top[1].ID)

	assert.Error(t, db.RecordGame(ctx, record("a", 50)), "duplicate id")
}

func TestJSONFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "stats.json")
	f := NewJSONFile(path)

	score, err := f.LoadHighScore(ctx)
	require.NoError(t, err, "missing file reads as zero")
	assert.Equal(t, 0, score)

	require.NoError(t, f.SaveHighScore(ctx, 75))
	for i := 0; i < maxScoreHistory+5; i++ {
		require.NoError(t, f.RecordGame(ctx, record("g", i)))
	}

	reopened := NewJSONFile(path)
	score, err = reopened.LoadHighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75, score)

	history, err := reopened.ScoreHistory()
	require.NoError(t, err)
	require.Len(t, history, maxScoreHistory)
	assert.Equal(t, 5, history[0])
	assert.Equal(t, maxScoreHistory+4, history[len(history)-1])
}

func TestJSONFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewJSONFile(path).LoadHighScore(context.Background())
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.SaveHighScore(ctx, 30))
	require.NoError(t, m.RecordGame(ctx, record("x", 30)))

	score, err := m.LoadHighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, score)

	games := m.Games()
	require.Len(t, games, 1)
	games[0].Score = 0
	assert.Equal(t, 30, m.Games()[0].Score)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	for _, kind := range []string{"sqlite", "json", "memory"} {
		t.Run(kind, func(t *testing.T) {
			s, err := Open(kind, filepath.Join(dir, "snake."+kind))
			require.NoError(t, err)
			defer s.Close()

			sm := manager.NewStateManager(context.Background(), s)
			assert.True(t, sm.Finish(context.Background(), record(kind, 60)))

			score, err := s.LoadHighScore(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 60, score)
		})
	}

	_, err := Open("redis", "")
	assert.Error(t, err)
}

func TestSQLiteCreatesDataDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "wrapsnake.db")

	s, err := Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, s.SaveHighScore(ctx, 42))
	require.NoError(t, s.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	reopened, err := Open("sqlite", path)
	require.NoError(t, err)
	defer reopened.Close()

	score, err := reopened.LoadHighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, score)
}

func TestOpenOrMemoryFallsBack(t *testing.T) {
	// a regular file where the data directory should be
	blocker := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	s := OpenOrMemory("sqlite", filepath.Join(blocker, "wrapsnake.db"))
	defer s.Close()
	assert.IsType(t, &Memory{}, s)

	sm := manager.NewStateManager(context.Background(), s)
	assert.Equal(t, 0, sm.HighScore())
	assert.True(t, sm.Finish(context.Background(), record("fallback", 10)))

	_, isMemory := OpenOrMemory("redis", "").(*Memory)
	assert.True(t, isMemory)
}
