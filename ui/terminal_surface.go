package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var _ Surface = (*TerminalSurface)(nil)

// TerminalSurface draws the canvas into a terminal. A grid cell is two
// columns wide and one row high so cells look roughly square.
type TerminalSurface struct {
	screen    tcell.Screen
	pixelSize int
	bg        Color
}

// OpenTerminal takes over the controlling terminal.
func OpenTerminal(pixelSize int) (*TerminalSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	screen.HideCursor()
	return NewTerminalSurface(screen, pixelSize), nil
}

// NewTerminalSurface wraps an initialised screen.
func NewTerminalSurface(screen tcell.Screen, pixelSize int) *TerminalSurface {
	return &TerminalSurface{
		screen:    screen,
		pixelSize: pixelSize,
		bg:        Background,
	}
}

func (t *TerminalSurface) Screen() tcell.Screen {
	return t.screen
}

func (t *TerminalSurface) Close() {
	t.screen.Fini()
}

// MinSize returns the terminal size in cells needed to show the whole canvas.
func (t *TerminalSurface) MinSize(layout Layout) (int, int) {
	w, h := layout.CanvasSize()
	return t.col(w), t.row(h)
}

// Fits reports whether the screen is at least MinSize.
func (t *TerminalSurface) Fits(layout Layout) bool {
	cols, rows := t.MinSize(layout)
	sw, sh := t.screen.Size()
	return sw >= cols && sh >= rows
}

// ShowTooSmall replaces the frame with a notice asking for a larger terminal.
func (t *TerminalSurface) ShowTooSmall(layout Layout) {
	cols, rows := t.MinSize(layout)
	sw, sh := t.screen.Size()
	msg := fmt.Sprintf("ENLARGE TERMINAL TO %dx%d (NOW %dx%d)", cols, rows, sw, sh)

	t.screen.Clear()
	for i, r := range []rune(msg) {
		t.screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
	t.screen.Show()
}

func (t *TerminalSurface) BeginFrame() {}

func (t *TerminalSurface) EndFrame() {
	t.screen.Show()
}

func (t *TerminalSurface) Clear(c Color) {
	t.bg = c
	t.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(c)))
}

func (t *TerminalSurface) FillRect(x, y, w, h int, c Color) {
	style := tcell.StyleDefault.Background(tcellColor(c))
	for row := t.row(y); row < t.row(y+h); row++ {
		for col := t.col(x); col < t.col(x+w); col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// StrokeRect draws a box just outside the rectangle so it never covers filled cells.
func (t *TerminalSurface) StrokeRect(x, y, w, h int, c Color) {
	style := t.textStyle(c)
	top, bottom := t.row(y)-1, t.row(y+h)
	left, right := t.col(x)-1, t.col(x+w)

	for col := left + 1; col < right; col++ {
		t.screen.SetContent(col, top, tcell.RuneHLine, nil, style)
		t.screen.SetContent(col, bottom, tcell.RuneHLine, nil, style)
	}
	for row := top + 1; row < bottom; row++ {
		t.screen.SetContent(left, row, tcell.RuneVLine, nil, style)
		t.screen.SetContent(right, row, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// Text puts s on the row above its baseline.
func (t *TerminalSurface) Text(s string, x, y int, align Align, c Color) {
	runes := []rune(s)
	col := t.col(x)
	switch align {
	case AlignCenter:
		col -= len(runes) / 2
	case AlignRight:
		col -= len(runes)
	}
	row := t.row(y) - 1

	style := t.textStyle(c)
	for i, r := range runes {
		t.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (t *TerminalSurface) col(x int) int {
	return x * 2 / t.pixelSize
}

func (t *TerminalSurface) row(y int) int {
	return y / t.pixelSize
}

func (t *TerminalSurface) textStyle(c Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(c)).Background(tcellColor(t.bg))
}

func tcellColor(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
