package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"
)

const (
	titleText    = "SNAKE"
	pausedText   = "PAUSED"
	gameOverText = "PRESS SPACE TO START"
)

// Layout converts grid cells into canvas pixels.
type Layout struct {
	Grid       types.Grid
	PixelSize  int
	BorderSize int
}

func DefaultLayout() Layout {
	return Layout{
		Grid:       types.DefaultGrid(),
		PixelSize:  types.PixelSize,
		BorderSize: types.BorderSize,
	}
}

// CanvasSize returns the canvas width and height in pixels.
func (l Layout) CanvasSize() (int, int) {
	return l.Grid.Width*l.PixelSize + l.BorderSize*2,
		l.Grid.Height*l.PixelSize + l.BorderSize*2
}

// Cell returns the top-left canvas pixel of p.
func (l Layout) Cell(p types.Point) (int, int) {
	return p.X*l.PixelSize + l.BorderSize, p.Y*l.PixelSize + l.BorderSize
}

// Renderer paints snapshots. It keeps no game state of its own.
type Renderer struct {
	surface Surface
	layout  Layout
}

func NewRenderer(surface Surface, layout Layout) *Renderer {
	return &Renderer{
		surface: surface,
		layout:  layout,
	}
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.surface.BeginFrame()
	defer r.surface.EndFrame()

	r.drawFrame(s)

	switch s.Phase {
	case types.PhaseGameOver:
		r.drawOverlay(gameOverText)
	case types.PhasePaused:
		r.drawOverlay(pausedText)
	default:
		r.drawGame(s)
	}
}

func (r *Renderer) drawFrame(s game.Snapshot) {
	w, h := r.layout.CanvasSize()
	b := r.layout.BorderSize

	r.surface.Clear(Background)
	r.surface.StrokeRect(b, b, w-b*2, h-b*2, Foreground)

	r.surface.Text(titleText, b, b-4, AlignLeft, Foreground)
	r.surface.Text(fmt.Sprintf("SCORE: %d", s.Score), b, h-16, AlignLeft, Foreground)
	r.surface.Text(fmt.Sprintf("HI: %d", s.HighScore), w-b, h-16, AlignRight, Foreground)
}

func (r *Renderer) drawGame(s game.Snapshot) {
	for _, segment := range s.Snake {
		r.fillCell(segment)
	}
	r.fillCell(s.Food)
}

func (r *Renderer) drawOverlay(msg string) {
	w, h := r.layout.CanvasSize()
	r.surface.Text(msg, w/2, h/2, AlignCenter, Foreground)
}

func (r *Renderer) fillCell(p types.Point) {
	x, y := r.layout.Cell(p)
	r.surface.FillRect(x, y, r.layout.PixelSize, r.layout.PixelSize, Foreground)
}
