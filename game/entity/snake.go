package entity

import (
	"wrapsnake/game/types"
)

type Color struct {
	R, G, B uint8
}

var DefaultSnakeColor = Color{R: 80, G: 200, B: 120}

// Snake is an ordered body, head first. It always keeps at least one segment.
type Snake struct {
	Body []types.Cell
}

// NewSnake lays out a snake of the given length with its head at head and
// the rest of the body trailing behind, opposite to dir.
func NewSnake(head types.Cell, dir types.Direction, length int, grid types.Grid) *Snake {
	if length < 1 {
		length = 1
	}

	body := make([]types.Cell, 0, length)
	body = append(body, grid.Wrap(head))
	back := dir.Opposite()
	for len(body) < length {
		body = append(body, grid.Step(body[len(body)-1], back))
	}

	return &Snake{Body: body}
}

func (s *Snake) Head() types.Cell {
	return s.Body[0]
}

func (s *Snake) Tail() types.Cell {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Contains(c types.Cell) bool {
	for _, part := range s.Body {
		if part == c {
			return true
		}
	}
	return false
}

// ContainsExceptTail ignores the last segment, which a moving snake is
// about to vacate.
func (s *Snake) ContainsExceptTail(c types.Cell) bool {
	for _, part := range s.Body[:len(s.Body)-1] {
		if part == c {
			return true
		}
	}
	return false
}

func (s *Snake) PushHead(c types.Cell) {
	s.Body = append(s.Body, types.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = c
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Truncate keeps the first n segments from the head end
func (s *Snake) Truncate(n int) {
	if n < 1 {
		n = 1
	}
	if n < len(s.Body) {
		s.Body = s.Body[:n]
	}
}

func (s *Snake) Clone() *Snake {
	body := make([]types.Cell, len(s.Body))
	copy(body, s.Body)
	return &Snake{Body: body}
}
