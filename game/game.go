package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wrapsnake/game/clock"
	"wrapsnake/game/entity"
	"wrapsnake/game/manager"
	"wrapsnake/game/types"
)

type State int

const (
	Ready State = iota
	Running
	Paused
	Ended
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// World is the full simulation state of one game. It is only mutated by
// Step, one tick at a time.
type World struct {
	Snake *entity.Snake
	// Prev is the snake as it was before the latest tick, for interpolation.
	Prev      *entity.Snake
	Fruits    []entity.Fruit
	Bombs     []entity.Bomb
	Direction types.Direction
	Queued    types.Direction
	Score     int
	// Baseline is subtracted from Score when computing speed.
	Baseline int
	Color    entity.Color
	Ticks    uint64
}

func (w *World) EffectiveScore() int {
	return w.Score - w.Baseline
}

type Game struct {
	ID    string
	ctx   context.Context
	cfg   Config
	rng   types.Rand
	grid  types.Grid
	state State
	world World

	collisionMgr *manager.CollisionManager
	fruitMgr     *manager.FruitManager
	bombMgr      *manager.BombManager
	stateMgr     *manager.StateManager
	clock        *clock.Clock

	alpha     float64
	resync    bool
	collision manager.CollisionType
	newHigh   bool
	startTime time.Time
	now       func() time.Time
}

// New builds a game in the Ready state. The StateManager carries the high
// score across games; nil gets an in-memory one.
func New(ctx context.Context, cfg Config, rng types.Rand, stateMgr *manager.StateManager) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if stateMgr == nil {
		stateMgr = manager.NewStateManager(ctx, nil)
	}

	g := &Game{
		ctx:      ctx,
		cfg:      cfg,
		rng:      rng,
		state:    Ready,
		stateMgr: stateMgr,
		now:      time.Now,
	}
	g.clock = clock.New(g.TickInterval)
	return g, nil
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}

// SetTimeSource replaces the wall clock used to stamp game records. Hosts
// driving Frame from a virtual clock pass a matching source so recorded
// durations follow simulated time.
func (g *Game) SetTimeSource(now func() time.Time) {
	g.now = now
}

// Collision is the cause of the last game over
func (g *Game) Collision() manager.CollisionType {
	return g.collision
}

// Start begins a new game on a board of the given size. It is accepted from
// Ready and Ended only. An unset board is a programming error.
func (g *Game) Start(grid types.Grid) bool {
	if g.state != Ready && g.state != Ended {
		return false
	}
	if err := validGrid(grid); err != nil {
		panic(fmt.Sprintf("game: Start: %v", err))
	}

	g.state = Ready
	g.grid = grid
	g.collisionMgr = manager.NewCollisionManager(grid, g.cfg.TailVacates)
	g.fruitMgr = manager.NewFruitManager(g.cfg.Catalog, g.cfg.MaxFruits, g.cfg.SpawnAttempts, g.collisionMgr)
	g.bombMgr = manager.NewBombManager(g.cfg.Bombs, g.cfg.SpawnAttempts, g.collisionMgr)

	length := g.cfg.InitialLength
	if length > grid.Width {
		length = grid.Width
	}
	head := types.Cell{X: grid.Width / 2, Y: grid.Height / 2}
	snake := entity.NewSnake(head, types.Right, length, grid)

	g.world = World{
		Snake:     snake,
		Prev:      snake.Clone(),
		Direction: types.Right,
		Queued:    types.Right,
		Color:     entity.DefaultSnakeColor,
	}
	g.world.Fruits = g.fruitMgr.Fill(g.rng, snake, nil, nil)

	g.ID = uuid.New().String()
	g.collision = manager.NoCollision
	g.newHigh = false
	g.alpha = 0
	g.resync = true
	g.startTime = g.now()
	g.state = Running
	return true
}

// SetDirection queues a turn for the next tick. Only one turn is held; a
// later request overwrites an earlier one. A request reversing the active
// direction is dropped, as is any request outside Running.
func (g *Game) SetDirection(d types.Direction) {
	if g.state != Running || d == types.None {
		return
	}
	if g.world.Direction.IsReverse(d) {
		return
	}
	g.world.Queued = d
}

// TogglePause flips between Running and Paused. The clock is resynced on
// the next frame after a resume so the paused time is never simulated.
func (g *Game) TogglePause() {
	switch g.state {
	case Running:
		g.state = Paused
	case Paused:
		g.state = Running
		g.resync = true
	}
}

// TickInterval is the current tick length, shrinking as the effective
// score grows.
func (g *Game) TickInterval() time.Duration {
	return clock.SpeedInterval(g.cfg.TickBase, g.cfg.TickMin, g.cfg.SpeedRate, g.world.EffectiveScore())
}

// Frame is the per-frame entry point for the host. now must be monotonic.
func (g *Game) Frame(now time.Duration) Snapshot {
	if g.state == Running {
		if g.resync {
			g.clock.Reset(now)
			g.resync = false
		}
		g.alpha = g.clock.Advance(now, g.Step)
	}
	return g.Snapshot()
}

// Step advances the simulation by one tick and reports whether the game is
// still going.
func (g *Game) Step() bool {
	if g.state != Running {
		return g.state != Ended
	}
	w := &g.world
	if w.Snake == nil {
		panic("game: Step before Start")
	}

	w.Direction = w.Queued
	w.Prev = w.Snake.Clone()
	w.Ticks++

	next := g.collisionMgr.Next(w.Snake.Head(), w.Direction)
	if c := g.collisionMgr.Check(next, w.Snake, w.Bombs); c != manager.NoCollision {
		g.end(c)
		return false
	}

	oldLen := w.Snake.Len()
	w.Snake.PushHead(next)

	i := g.collisionMgr.FruitAt(next, w.Fruits)
	if i < 0 {
		w.Snake.RemoveTail()
		return true
	}

	fruit := w.Fruits[i]
	w.Fruits = g.fruitMgr.Remove(w.Fruits, i)
	w.Score += fruit.Kind.Points
	w.Color = fruit.Kind.Color
	g.applyEffect(fruit.Kind.Effect, oldLen)
	g.restock()
	return true
}

func (g *Game) applyEffect(effect entity.Effect, oldLen int) {
	w := &g.world

	switch effect {
	case entity.EffectSpeedReset:
		w.Baseline = w.Score
		g.bombMgr.Grow()
		w.Snake.RemoveTail()
	case entity.EffectShrink:
		w.Snake.Truncate(max(1, oldLen/2))
		g.bombMgr.Grow()
	}
}

// restock runs after a fruit is eaten: one replacement fruit, then a bomb
// spawn and despawn roll.
func (g *Game) restock() {
	w := &g.world
	w.Fruits, _ = g.fruitMgr.Spawn(g.rng, w.Snake, w.Fruits, w.Bombs)
	w.Bombs = g.bombMgr.Update(g.rng, w.Snake, w.Fruits, w.Bombs)
}

func (g *Game) end(c manager.CollisionType) {
	g.state = Ended
	g.collision = c
	g.newHigh = g.stateMgr.Finish(g.ctx, manager.GameRecord{
		ID:        g.ID,
		Score:     g.world.Score,
		Length:    g.world.Snake.Len(),
		Ticks:     g.world.Ticks,
		StartedAt: g.startTime,
		EndedAt:   g.now(),
	})
}
