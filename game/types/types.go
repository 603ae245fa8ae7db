package types

import "time"

// Board and display constants
const (
	GridSize   = 32 // Cells per side
	PixelSize  = 8  // Canvas pixels per cell
	BorderSize = 32 // Canvas pixels around the play area
)

// Speed ramp
const (
	InitialSpeed = 250 * time.Millisecond
	SpeedStep    = 10 * time.Millisecond
	MinSpeed     = 50 * time.Millisecond
)

// Point is a cell on the grid.
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid returns the square board the game is played on.
func DefaultGrid() Grid {
	return Grid{Width: GridSize, Height: GridSize}
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds p back onto the grid, joining opposite edges.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Direction is a cardinal direction
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Delta returns the one-cell movement vector for d.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Phase is the engine state. GameOver doubles as "not started yet".
type Phase int

const (
	PhaseGameOver Phase = iota
	PhasePlaying
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseGameOver:
		return "game_over"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}
