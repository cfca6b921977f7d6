package store

import (
	"fmt"
	"io"
	"log"

	"wrapsnake/game/manager"
)

// Store is what the game host needs from a persistence backend.
type Store interface {
	manager.HighScoreStore
	manager.GameRecorder
	io.Closer
}

// Open returns the backend named by kind: "sqlite", "json" or "memory".
// path is ignored for memory.
func Open(kind, path string) (Store, error) {
	switch kind {
	case "sqlite":
		db, err := NewSQLite(path)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	case "json":
		return NewJSONFile(path), nil
	case "memory", "":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}

// OpenOrMemory is Open, falling back to an in-process store when the backend
// is unavailable. The game then runs with a high score of 0.
func OpenOrMemory(kind, path string) Store {
	st, err := Open(kind, path)
	if err != nil {
		log.Printf("failed to open %s store at %s, high scores will not be kept: %v", kind, path, err)
		return NewMemory()
	}
	return st
}
