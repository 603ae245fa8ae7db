package ui

import "errors"

// ErrSurfaceUnavailable is returned when the drawing surface cannot be opened.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

type Color struct {
	R, G, B uint8
}

var (
	Background = Color{R: 0x77, G: 0xEE, B: 0x33}
	Foreground = Color{R: 0x00, G: 0x00, B: 0x00}
)

// Align anchors text horizontally on its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is a fixed-size canvas addressed in canvas pixels. Text y is the baseline.
type Surface interface {
	BeginFrame()
	EndFrame()
	Clear(c Color)
	FillRect(x, y, w, h int, c Color)
	StrokeRect(x, y, w, h int, c Color)
	Text(s string, x, y int, align Align, c Color)
}
