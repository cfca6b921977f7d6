package manager

import (
	"wrapsnake/game/entity"
	"wrapsnake/game/types"
)

// BombConfig tunes bomb placement. With Dynamic set, spawn and despawn
// chances follow the bomb density count/capacity; otherwise BaseSpawn and
// MaxDespawn are used as fixed chances.
type BombConfig struct {
	Capacity   int
	BaseSpawn  float64
	MinSpawn   float64
	MaxDespawn float64
	Dynamic    bool
}

func DefaultBombConfig() BombConfig {
	return BombConfig{
		Capacity:   types.InitialBombCapacity,
		BaseSpawn:  types.BaseBombSpawnChance,
		MinSpawn:   types.MinBombSpawnChance,
		MaxDespawn: types.MaxBombDespawnChance,
		Dynamic:    true,
	}
}

type BombManager struct {
	cfg          BombConfig
	capacity     int
	attempts     int
	collisionMgr *CollisionManager
}

func NewBombManager(cfg BombConfig, attempts int, collisionMgr *CollisionManager) *BombManager {
	bm := &BombManager{
		cfg:          cfg,
		attempts:     attempts,
		collisionMgr: collisionMgr,
	}
	bm.Reset()
	return bm
}

func (bm *BombManager) Capacity() int {
	return bm.capacity
}

// Grow raises the bomb cap by one for the rest of the game
func (bm *BombManager) Grow() {
	bm.capacity++
}

func (bm *BombManager) Reset() {
	bm.capacity = bm.cfg.Capacity
	if bm.capacity < 1 {
		bm.capacity = 1
	}
}

func (bm *BombManager) density(count int) float64 {
	return float64(count) / float64(bm.capacity)
}

func (bm *BombManager) SpawnChance(count int) float64 {
	if !bm.cfg.Dynamic {
		return clamp01(bm.cfg.BaseSpawn)
	}
	d := bm.density(count)
	return clamp01(bm.cfg.BaseSpawn - d*(bm.cfg.BaseSpawn-bm.cfg.MinSpawn))
}

func (bm *BombManager) DespawnChance(count int) float64 {
	if !bm.cfg.Dynamic {
		return clamp01(bm.cfg.MaxDespawn)
	}
	return clamp01(bm.density(count) * bm.cfg.MaxDespawn)
}

// Update runs after a fruit is eaten. Spawn and despawn are rolled
// independently; both chances come from the density before either applies.
func (bm *BombManager) Update(rng types.Rand, snake *entity.Snake, fruits []entity.Fruit, bombs []entity.Bomb) []entity.Bomb {
	count := len(bombs)
	spawn := rng.Float64() < bm.SpawnChance(count)
	despawn := rng.Float64() < bm.DespawnChance(count)

	if spawn && count < bm.capacity {
		if pos, ok := bm.collisionMgr.FindFreeCell(rng, snake, fruits, bombs, bm.attempts); ok {
			bombs = append(bombs, entity.Bomb{Cell: pos})
		}
	}

	if despawn && len(bombs) > 0 {
		i := rng.Intn(len(bombs))
		bombs = append(bombs[:i], bombs[i+1:]...)
	}

	return bombs
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
