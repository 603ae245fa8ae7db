package ui

import "testing"

func TestFitViewport(t *testing.T) {
	layout := DefaultLayout() // 320x320 canvas

	tests := []struct {
		name    string
		screenW int
		screenH int
		want    Viewport
	}{
		{"Exact fit", 320, 320, Viewport{Scale: 1}},
		{"Double", 640, 640, Viewport{Scale: 2}},
		{"Wide window centres horizontally", 800, 640, Viewport{Scale: 2, OffsetX: 80}},
		{"Tall window centres vertically", 320, 480, Viewport{Scale: 1, OffsetY: 80}},
		{"Shrunk below canvas", 160, 200, Viewport{Scale: 0.5, OffsetY: 20}},
		{"Minimised window", 0, 0, Viewport{Scale: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitViewport(tt.screenW, tt.screenH, layout); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestViewportApply(t *testing.T) {
	v := Viewport{Scale: 2, OffsetX: 80}
	x, y := v.Apply(32, 304)
	if x != 144 || y != 608 {
		t.Errorf("Expected (144, 608), got (%v, %v)", x, y)
	}
}
