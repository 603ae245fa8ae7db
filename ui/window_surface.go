package ui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 16 // canvas pixels, about 12pt

var _ Surface = (*WindowSurface)(nil)

// WindowSurface draws the canvas into a resizable raylib window. The canvas
// is scaled to fit the window and centred in it.
type WindowSurface struct {
	layout Layout
	view   Viewport
}

// OpenWindow creates the game window at scale times the canvas size. Only one
// window may be open at a time.
func OpenWindow(title string, layout Layout, scale, fps int) (*WindowSurface, error) {
	w, h := layout.CanvasSize()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w*scale), int32(h*scale), title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("%w: could not create %dx%d window", ErrSurfaceUnavailable, w*scale, h*scale)
	}
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(int32(fps))

	ws := &WindowSurface{layout: layout}
	ws.fit()
	return ws, nil
}

func (ws *WindowSurface) Close() {
	rl.CloseWindow()
}

// ShouldClose reports whether the user asked to close the window.
func (ws *WindowSurface) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (ws *WindowSurface) BeginFrame() {
	if rl.IsWindowResized() {
		ws.fit()
	}
	rl.BeginDrawing()
}

func (ws *WindowSurface) EndFrame() {
	rl.EndDrawing()
}

func (ws *WindowSurface) Clear(c Color) {
	rl.ClearBackground(rlColor(c))
}

func (ws *WindowSurface) FillRect(x, y, w, h int, c Color) {
	rl.DrawRectangleRec(ws.rect(x, y, w, h), rlColor(c))
}

func (ws *WindowSurface) StrokeRect(x, y, w, h int, c Color) {
	rl.DrawRectangleLinesEx(ws.rect(x, y, w, h), max(ws.view.Scale, 1), rlColor(c))
}

func (ws *WindowSurface) Text(s string, x, y int, align Align, c Color) {
	size := max(int32(fontSize*ws.view.Scale), 1)
	fx, fy := ws.view.Apply(x, y)
	left := int32(fx)
	switch align {
	case AlignCenter:
		left -= rl.MeasureText(s, size) / 2
	case AlignRight:
		left -= rl.MeasureText(s, size)
	}
	// raylib anchors text at its top edge.
	rl.DrawText(s, left, int32(fy)-size, size, rlColor(c))
}

func (ws *WindowSurface) fit() {
	ws.view = FitViewport(rl.GetScreenWidth(), rl.GetScreenHeight(), ws.layout)
}

func (ws *WindowSurface) rect(x, y, w, h int) rl.Rectangle {
	fx, fy := ws.view.Apply(x, y)
	return rl.NewRectangle(fx, fy, float32(w)*ws.view.Scale, float32(h)*ws.view.Scale)
}

func rlColor(c Color) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
