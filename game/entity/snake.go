package entity

import (
	"slices"

	"snake-classic/game/types"
)

// Snake keeps its body head first, tail last.
type Snake struct {
	body []types.Point
}

// NewSnake copies body so the caller's slice is never shared between games.
func NewSnake(body ...types.Point) *Snake {
	if len(body) == 0 {
		panic("entity: snake needs at least one segment")
	}
	return &Snake{body: slices.Clone(body)}
}

// StartingSnake returns the four-segment snake laid out left of centre, heading right.
func StartingSnake(grid types.Grid) *Snake {
	x, y := grid.Width/2, grid.Height/2-1
	return NewSnake(
		types.Point{X: x + 2, Y: y},
		types.Point{X: x + 1, Y: y},
		types.Point{X: x, Y: y},
		types.Point{X: x - 1, Y: y},
	)
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Tail() types.Point {
	return s.body[len(s.body)-1]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments.
func (s *Snake) Body() []types.Point {
	return slices.Clone(s.body)
}

func (s *Snake) Contains(p types.Point) bool {
	return slices.Contains(s.body, p)
}

// Move advances one cell keeping the length constant.
func (s *Snake) Move(newHead types.Point) {
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
}

// Grow advances one cell keeping the tail in place.
func (s *Snake) Grow(newHead types.Point) {
	s.body = slices.Insert(s.body, 0, newHead)
}
