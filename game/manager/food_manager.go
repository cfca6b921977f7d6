package manager

import (
	"wrapsnake/game/entity"
	"wrapsnake/game/types"
)

// FruitManager picks and places fruit. It holds no fruit itself; the slice
// lives in the simulation state and is passed in and returned.
type FruitManager struct {
	catalog      entity.Catalog
	max          int
	attempts     int
	collisionMgr *CollisionManager
}

func NewFruitManager(catalog entity.Catalog, max, attempts int, collisionMgr *CollisionManager) *FruitManager {
	return &FruitManager{
		catalog:      catalog,
		max:          max,
		attempts:     attempts,
		collisionMgr: collisionMgr,
	}
}

func (fm *FruitManager) Max() int {
	return fm.max
}

// Pick samples a fruit kind by weight. The last kind absorbs any rounding
// left over at the top of the cumulative range.
func (fm *FruitManager) Pick(rng types.Rand) entity.FruitKind {
	u := rng.Float64()

	var cumulative float64
	for _, kind := range fm.catalog {
		cumulative += kind.Weight
		if u < cumulative {
			return kind
		}
	}
	return fm.catalog[len(fm.catalog)-1]
}

// Spawn adds one fruit if the cap allows and a free cell turns up
func (fm *FruitManager) Spawn(rng types.Rand, snake *entity.Snake, fruits []entity.Fruit, bombs []entity.Bomb) ([]entity.Fruit, bool) {
	if len(fruits) >= fm.max {
		return fruits, false
	}

	kind := fm.Pick(rng)
	pos, ok := fm.collisionMgr.FindFreeCell(rng, snake, fruits, bombs, fm.attempts)
	if !ok {
		return fruits, false
	}

	return append(fruits, entity.Fruit{Cell: pos, Kind: kind}), true
}

// Fill spawns until the cap is reached or a spawn fails
func (fm *FruitManager) Fill(rng types.Rand, snake *entity.Snake, fruits []entity.Fruit, bombs []entity.Bomb) []entity.Fruit {
	for len(fruits) < fm.max {
		var ok bool
		fruits, ok = fm.Spawn(rng, snake, fruits, bombs)
		if !ok {
			break
		}
	}
	return fruits
}

// Remove drops fruit i, keeping the order of the rest
func (fm *FruitManager) Remove(fruits []entity.Fruit, i int) []entity.Fruit {
	if i < 0 || i >= len(fruits) {
		return fruits
	}
	return append(fruits[:i], fruits[i+1:]...)
}
