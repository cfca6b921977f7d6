package game

import (
	"errors"
	"fmt"
	"time"

	"wrapsnake/game/entity"
	"wrapsnake/game/manager"
	"wrapsnake/game/types"
)

var ErrInvalidGrid = errors.New("invalid grid")

// Config holds the tuning fixed for the lifetime of a session. The grid is
// not part of it: board size comes from the viewport and is handed to Start.
type Config struct {
	TickBase      time.Duration
	TickMin       time.Duration
	SpeedRate     time.Duration
	MaxFruits     int
	Catalog       entity.Catalog
	Bombs         manager.BombConfig
	SpawnAttempts int
	InitialLength int
	// TailVacates lets the head enter the cell the tail is leaving this
	// tick. Off by default: the pre-move body, tail included, is lethal.
	TailVacates bool
}

func DefaultConfig() Config {
	return Config{
		TickBase:      types.BaseTickInterval,
		TickMin:       types.MinTickInterval,
		SpeedRate:     types.SpeedRate,
		MaxFruits:     types.MaxFruits,
		Catalog:       entity.DefaultCatalog,
		Bombs:         manager.DefaultBombConfig(),
		SpawnAttempts: types.SpawnAttempts,
		InitialLength: types.InitialSnakeLength,
	}
}

func (c Config) Validate() error {
	if err := c.Catalog.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.TickBase <= 0 || c.TickMin <= 0 {
		return fmt.Errorf("config: tick intervals must be positive")
	}
	if c.MaxFruits < 1 || c.SpawnAttempts < 1 {
		return fmt.Errorf("config: fruit cap and spawn attempts must be positive")
	}
	return nil
}

func validGrid(grid types.Grid) error {
	if !grid.Valid() {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, grid.Width, grid.Height)
	}
	return nil
}
