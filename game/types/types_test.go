package types

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Opposite(); got != tt.want {
				t.Errorf("Expected opposite of %v to be %v, got %v", tt.dir, tt.want, got)
			}
			d, o := tt.dir.Delta(), tt.want.Delta()
			if d.X != -o.X || d.Y != -o.Y {
				t.Errorf("Expected deltas %v and %v to cancel out", d, o)
			}
		})
	}
}

func TestGridWrap(t *testing.T) {
	g := DefaultGrid()
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"Inside", Point{X: 5, Y: 7}, Point{X: 5, Y: 7}},
		{"Off left edge", Point{X: -1, Y: 3}, Point{X: GridSize - 1, Y: 3}},
		{"Off right edge", Point{X: GridSize, Y: 3}, Point{X: 0, Y: 3}},
		{"Off top edge", Point{X: 3, Y: -1}, Point{X: 3, Y: GridSize - 1}},
		{"Off bottom edge", Point{X: 3, Y: GridSize}, Point{X: 3, Y: 0}},
		{"Corner", Point{X: -1, Y: -1}, Point{X: GridSize - 1, Y: GridSize - 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Wrap(tt.in)
			if got != tt.want {
				t.Errorf("Expected %v to wrap to %v, got %v", tt.in, tt.want, got)
			}
			if !g.Contains(got) {
				t.Errorf("Expected wrapped point %v to be on the grid", got)
			}
		})
	}
}

func TestGridCells(t *testing.T) {
	if got := (Grid{Width: 4, Height: 3}).Cells(); got != 12 {
		t.Errorf("Expected 12 cells, got %d", got)
	}
}
