// Package autopilot steers the snake without a player. It reads the same
// snapshot a renderer does and picks one of the three non-reversing turns.
package autopilot

import (
	"math"

	"wrapsnake/game"
	"wrapsnake/game/types"
)

const (
	// fruitReward is added when the next cell holds a fruit
	fruitReward = 1.0
	// approachReward and retreatPenalty score moving closer or further from
	// the nearest fruit
	approachReward = 0.5
	retreatPenalty = -0.3
	// crampedPenalty is applied per blocked neighbour of the next cell
	crampedPenalty = -0.2
)

// Pilot is a greedy steering policy. It is stateless between calls.
type Pilot struct{}

func New() *Pilot {
	return &Pilot{}
}

// Next returns the direction to queue for the coming tick. When every turn
// is lethal it keeps the current heading.
func (p *Pilot) Next(snap game.Snapshot) types.Direction {
	head, ok := snap.Head()
	if !ok || !snap.Grid.Valid() {
		return snap.Direction
	}

	blocked := blockedCells(snap)
	current := snap.Direction
	if current == types.None {
		current = types.Right
	}

	best := current
	bestValue := math.Inf(-1)
	for _, d := range []types.Direction{current, current.TurnLeft(), current.TurnRight()} {
		v, safe := p.evaluate(snap, blocked, head, d)
		if !safe {
			continue
		}
		if v > bestValue {
			best, bestValue = d, v
		}
	}
	return best
}

// evaluate scores moving one cell in d. A lethal move is reported unsafe.
func (p *Pilot) evaluate(snap game.Snapshot, blocked map[types.Cell]bool, head types.Cell, d types.Direction) (float64, bool) {
	grid := snap.Grid
	next := grid.Step(head, d)
	if blocked[next] {
		return 0, false
	}

	value := 0.0
	target, found := nearestFruit(snap, head)
	if found {
		if next == target {
			value += fruitReward
		}
		switch before, after := grid.Distance(head, target), grid.Distance(next, target); {
		case after < before:
			value += approachReward
		case after > before:
			value += retreatPenalty
		}
	}

	for _, n := range types.Directions {
		if blocked[grid.Step(next, n)] {
			value += crampedPenalty
		}
	}
	return value, true
}

// blockedCells holds every body segment and bomb. The tail counts: the
// pilot does not know whether the game lets the head follow it.
func blockedCells(snap game.Snapshot) map[types.Cell]bool {
	blocked := make(map[types.Cell]bool, len(snap.Snake)+len(snap.Bombs))
	for _, c := range snap.Snake {
		blocked[c] = true
	}
	for _, b := range snap.Bombs {
		blocked[b.Cell] = true
	}
	return blocked
}

// nearestFruit picks the closest fruit by wrapped distance, higher points
// breaking ties.
func nearestFruit(snap game.Snapshot, from types.Cell) (types.Cell, bool) {
	var best types.Cell
	bestDist, bestPoints := math.MaxInt, 0
	for _, f := range snap.Fruits {
		d := snap.Grid.Distance(from, f.Cell)
		if d < bestDist || (d == bestDist && f.Kind.Points > bestPoints) {
			best, bestDist, bestPoints = f.Cell, d, f.Kind.Points
		}
	}
	return best, bestDist != math.MaxInt
}
