package ui

// Viewport places the canvas inside a window: canvas pixels are multiplied by
// Scale and shifted by the offsets.
type Viewport struct {
	Scale   float32
	OffsetX float32
	OffsetY float32
}

// FitViewport scales the canvas to the largest size that fits a screenW by
// screenH window and centres it along the longer side.
func FitViewport(screenW, screenH int, layout Layout) Viewport {
	w, h := layout.CanvasSize()
	if screenW <= 0 || screenH <= 0 || w <= 0 || h <= 0 {
		return Viewport{Scale: 1}
	}

	scale := min(float32(screenW)/float32(w), float32(screenH)/float32(h))
	return Viewport{
		Scale:   scale,
		OffsetX: (float32(screenW) - float32(w)*scale) / 2,
		OffsetY: (float32(screenH) - float32(h)*scale) / 2,
	}
}

// Apply maps a canvas coordinate to window pixels.
func (v Viewport) Apply(x, y int) (float32, float32) {
	return v.OffsetX + float32(x)*v.Scale, v.OffsetY + float32(y)*v.Scale
}
