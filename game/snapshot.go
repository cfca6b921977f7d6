package game

import (
	"time"

	"wrapsnake/game/entity"
	"wrapsnake/game/manager"
	"wrapsnake/game/types"
)

// Snapshot is a read-only copy of everything a renderer needs after a
// frame. Mutating it has no effect on the game.
type Snapshot struct {
	ID    string
	State State
	Grid  types.Grid
	// Snake is head first. Prev holds the body before the latest tick; it is
	// one shorter after growth and longer after a shrink.
	Snake     []types.Cell
	Prev      []types.Cell
	Fruits    []entity.Fruit
	Bombs     []entity.Bomb
	Direction types.Direction
	Color     entity.Color
	// Alpha is the progress through the current tick, in [0,1).
	Alpha        float64
	Interval     time.Duration
	Score        int
	HighScore    int
	NewHighScore bool
	AverageScore float64
	GamesPlayed  int
	Collision    manager.CollisionType
	// Continue turns false once the game has ended; the host may stop
	// scheduling frames.
	Continue bool
}

func (g *Game) Snapshot() Snapshot {
	w := &g.world
	snap := Snapshot{
		ID:           g.ID,
		State:        g.state,
		Grid:         g.grid,
		Fruits:       append([]entity.Fruit(nil), w.Fruits...),
		Bombs:        append([]entity.Bomb(nil), w.Bombs...),
		Direction:    w.Direction,
		Color:        w.Color,
		Alpha:        g.alpha,
		Interval:     g.TickInterval(),
		Score:        w.Score,
		HighScore:    g.stateMgr.HighScore(),
		NewHighScore: g.newHigh,
		AverageScore: g.stateMgr.AverageScore(),
		GamesPlayed:  g.stateMgr.GamesPlayed(),
		Collision:    g.collision,
		Continue:     g.state != Ended,
	}
	if w.Snake != nil {
		snap.Snake = append([]types.Cell(nil), w.Snake.Body...)
	}
	if w.Prev != nil {
		snap.Prev = append([]types.Cell(nil), w.Prev.Body...)
	}
	return snap
}

// Head returns the snake's head, or false before the first game
func (s Snapshot) Head() (types.Cell, bool) {
	if len(s.Snake) == 0 {
		return types.Cell{}, false
	}
	return s.Snake[0], true
}

// Point is a position in cell units with fractional progress between cells.
type Point struct {
	X, Y float64
}

// Segments places every body segment between its previous and current cell
// at the snapshot's Alpha. A segment that wrapped across an edge this tick
// is drawn at its current cell rather than sliding across the board.
func (s Snapshot) Segments() []Point {
	out := make([]Point, len(s.Snake))
	for i, cur := range s.Snake {
		from := cur
		switch {
		case i < len(s.Prev):
			from = s.Prev[i]
		case len(s.Prev) > 0:
			from = s.Prev[len(s.Prev)-1]
		}

		if !s.slides(i, from, cur) {
			out[i] = Point{X: float64(cur.X), Y: float64(cur.Y)}
			continue
		}
		out[i] = Point{
			X: float64(from.X) + float64(cur.X-from.X)*s.Alpha,
			Y: float64(from.Y) + float64(cur.Y-from.Y)*s.Alpha,
		}
	}
	return out
}

// slides reports whether segment i moved from one cell to the next without
// crossing an edge. The head's heading settles it exactly. Body segments only
// have their two cells, which on an axis two cells long cannot tell a wrap
// from a plain step, so those snap.
func (s Snapshot) slides(i int, from, cur types.Cell) bool {
	if from == cur {
		return true
	}
	if i == 0 && s.Direction != types.None {
		return from.Add(s.Direction.Delta()) == cur
	}

	dx, dy := cur.X-from.X, cur.Y-from.Y
	switch {
	case dy == 0 && (dx == 1 || dx == -1):
		return s.Grid.Width > 2
	case dx == 0 && (dy == 1 || dy == -1):
		return s.Grid.Height > 2
	default:
		return false
	}
}
