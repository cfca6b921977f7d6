package types

import (
	"time"

	"golang.org/x/exp/rand"
)

// Cell is a position on the game grid
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum of two cells
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are set
func (g Grid) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

func (g Grid) Area() int {
	return g.Width * g.Height
}

func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap folds a cell back onto the board. The board is a torus: leaving one
// edge re-enters from the opposite one.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: mod(c.X, g.Width), Y: mod(c.Y, g.Height)}
}

// Step moves one cell in direction d, wrapping at the edges
func (g Grid) Step(c Cell, d Direction) Cell {
	return g.Wrap(c.Add(d.Delta()))
}

// Distance is the Manhattan distance between two cells, taking the shorter
// way round on each axis.
func (g Grid) Distance(a, b Cell) int {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)

	if dx > g.Width/2 {
		dx = g.Width - dx
	}
	if dy > g.Height/2 {
		dy = g.Height - dy
	}

	return dx + dy
}

// Rand is the randomness the simulation consumes. *rand.Rand from
// golang.org/x/exp/rand satisfies it; tests inject scripted values.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seedable PCG-backed generator
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Game constants
const (
	BaseTickInterval     = 150 * time.Millisecond
	MinTickInterval      = 55 * time.Millisecond
	SpeedRate            = time.Millisecond // interval shaved off per effective point
	MaxFruits            = 5
	InitialBombCapacity  = 3
	SpawnAttempts        = 100
	BaseBombSpawnChance  = 0.35
	MinBombSpawnChance   = 0.05
	MaxBombDespawnChance = 0.30
	InitialSnakeLength   = 3
)

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
