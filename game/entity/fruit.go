package entity

import (
	"errors"
	"fmt"
	"math"

	"wrapsnake/game/types"
)

// Effect is the special behaviour a fruit triggers when eaten
type Effect int

const (
	EffectNone Effect = iota
	// EffectSpeedReset rebases the speed baseline to the current score and
	// does not grow the snake.
	EffectSpeedReset
	// EffectShrink halves the snake, keeping the head end.
	EffectShrink
)

func (e Effect) String() string {
	switch e {
	case EffectSpeedReset:
		return "speed-reset"
	case EffectShrink:
		return "shrink"
	default:
		return "none"
	}
}

type Shape int

const (
	Circle Shape = iota
	Square
	Triangle
	Diamond
	Star
	Hexagon
)

// FruitKind is one entry of the fruit catalog
type FruitKind struct {
	Name   string
	Shape  Shape
	Points int
	Color  Color
	Weight float64
	Effect Effect
}

type Fruit struct {
	Cell types.Cell
	Kind FruitKind
}

type Bomb struct {
	Cell types.Cell
}

// Catalog is a weighted list of fruit kinds. Weights sum to 1.
type Catalog []FruitKind

var ErrInvalidCatalog = errors.New("invalid fruit catalog")

var DefaultCatalog = Catalog{
	{Name: "cherry", Shape: Circle, Points: 10, Color: Color{R: 230, G: 41, B: 55}, Weight: 0.40},
	{Name: "lime", Shape: Square, Points: 20, Color: Color{R: 0, G: 228, B: 48}, Weight: 0.25},
	{Name: "banana", Shape: Triangle, Points: 30, Color: Color{R: 253, G: 249, B: 0}, Weight: 0.15},
	{Name: "grape", Shape: Diamond, Points: 50, Color: Color{R: 135, G: 60, B: 190}, Weight: 0.10},
	{Name: "clock", Shape: Hexagon, Points: 15, Color: Color{R: 102, G: 191, B: 255}, Weight: 0.05, Effect: EffectSpeedReset},
	{Name: "scissors", Shape: Star, Points: 25, Color: Color{R: 255, G: 161, B: 0}, Weight: 0.05, Effect: EffectShrink},
}

func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: no fruit kinds", ErrInvalidCatalog)
	}

	var total float64
	for _, kind := range c {
		if kind.Weight < 0 {
			return fmt.Errorf("%w: %q has negative weight", ErrInvalidCatalog, kind.Name)
		}
		total += kind.Weight
	}

	if math.Abs(total-1) > 1e-6 {
		return fmt.Errorf("%w: weights sum to %f", ErrInvalidCatalog, total)
	}
	return nil
}
