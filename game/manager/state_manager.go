package manager

import (
	"context"
	"log"
	"sort"
	"time"
)

const maxHistory = 50

// HighScoreStore persists the best score across runs
type HighScoreStore interface {
	LoadHighScore(ctx context.Context) (int, error)
	SaveHighScore(ctx context.Context, score int) error
}

// GameRecorder is implemented by stores that keep a log of finished games
type GameRecorder interface {
	RecordGame(ctx context.Context, rec GameRecord) error
}

// GameRecord describes one finished game
type GameRecord struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
	Ticks     uint64    `json:"ticks"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
}

func (r GameRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// StateManager owns the high score and the session's score history. Store
// failures are logged and swallowed: a broken store never ends a game.
type StateManager struct {
	store        HighScoreStore
	highScore    int
	scoreHistory []int
	durations    []time.Duration
}

func NewStateManager(ctx context.Context, store HighScoreStore) *StateManager {
	sm := &StateManager{
		store:        store,
		scoreHistory: make([]int, 0),
	}

	if store == nil {
		return sm
	}

	score, err := store.LoadHighScore(ctx)
	if err != nil {
		log.Printf("high score unavailable, starting from 0: %v", err)
		return sm
	}
	sm.highScore = score
	return sm
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

// Finish books a completed game and reports whether it set a new high score
func (sm *StateManager) Finish(ctx context.Context, rec GameRecord) bool {
	sm.addToHistory(rec.Score, rec.Duration())

	if recorder, ok := sm.store.(GameRecorder); ok {
		if err := recorder.RecordGame(ctx, rec); err != nil {
			log.Printf("failed to record game %s: %v", rec.ID, err)
		}
	}

	if rec.Score <= sm.highScore {
		return false
	}

	sm.highScore = rec.Score
	if sm.store != nil {
		if err := sm.store.SaveHighScore(ctx, rec.Score); err != nil {
			log.Printf("failed to save high score: %v", err)
		}
	}
	return true
}

func (sm *StateManager) addToHistory(score int, d time.Duration) {
	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
		sm.durations = sm.durations[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
	sm.durations = append(sm.durations, d)
}

func (sm *StateManager) History() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

func (sm *StateManager) GamesPlayed() int {
	return len(sm.scoreHistory)
}

func (sm *StateManager) AverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}

	sum := 0
	for _, score := range sm.scoreHistory {
		sum += score
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}

func (sm *StateManager) MedianScore() float64 {
	n := len(sm.scoreHistory)
	if n == 0 {
		return 0
	}

	scores := sm.History()
	sort.Ints(scores)
	if n%2 == 0 {
		return float64(scores[n/2-1]+scores[n/2]) / 2
	}
	return float64(scores[n/2])
}

// SessionBest is the best score in the retained history, which may be below
// the persisted high score.
func (sm *StateManager) SessionBest() int {
	best := 0
	for _, score := range sm.scoreHistory {
		best = max(best, score)
	}
	return best
}

func (sm *StateManager) AverageDuration() time.Duration {
	if len(sm.durations) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range sm.durations {
		total += d
	}
	return total / time.Duration(len(sm.durations))
}
