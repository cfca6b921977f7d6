package manager

import (
	"wrapsnake/game/entity"
	"wrapsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	BombCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case BombCollision:
		return "bomb"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
	// tailVacates lets the head move into the cell the tail leaves this tick.
	tailVacates bool
}

func NewCollisionManager(grid types.Grid, tailVacates bool) *CollisionManager {
	return &CollisionManager{
		grid:        grid,
		tailVacates: tailVacates,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// Next returns the cell the head enters when moving in dir
func (cm *CollisionManager) Next(head types.Cell, dir types.Direction) types.Cell {
	return cm.grid.Step(head, dir)
}

// Check tests a candidate head against bombs and the pre-move body
func (cm *CollisionManager) Check(pos types.Cell, snake *entity.Snake, bombs []entity.Bomb) CollisionType {
	for _, b := range bombs {
		if b.Cell == pos {
			return BombCollision
		}
	}

	if cm.tailVacates {
		if snake.ContainsExceptTail(pos) {
			return SelfCollision
		}
	} else if snake.Contains(pos) {
		return SelfCollision
	}

	return NoCollision
}

// FruitAt returns the index of the fruit on pos, or -1
func (cm *CollisionManager) FruitAt(pos types.Cell, fruits []entity.Fruit) int {
	for i, f := range fruits {
		if f.Cell == pos {
			return i
		}
	}
	return -1
}

// Occupied reports whether anything already sits on pos
func (cm *CollisionManager) Occupied(pos types.Cell, snake *entity.Snake, fruits []entity.Fruit, bombs []entity.Bomb) bool {
	if snake != nil && snake.Contains(pos) {
		return true
	}
	if cm.FruitAt(pos, fruits) >= 0 {
		return true
	}
	for _, b := range bombs {
		if b.Cell == pos {
			return true
		}
	}
	return false
}

// FindFreeCell draws uniform random cells until one is free. It gives up
// after attempts draws, so a crowded board can come back empty-handed.
func (cm *CollisionManager) FindFreeCell(rng types.Rand, snake *entity.Snake, fruits []entity.Fruit, bombs []entity.Bomb, attempts int) (types.Cell, bool) {
	for i := 0; i < attempts; i++ {
		pos := types.Cell{
			X: rng.Intn(cm.grid.Width),
			Y: rng.Intn(cm.grid.Height),
		}

		if !cm.Occupied(pos, snake, fruits, bombs) {
			return pos, true
		}
	}
	return types.Cell{}, false
}
