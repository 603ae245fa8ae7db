package ui

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"snake-classic/game"
	"snake-classic/game/types"
)

// recorder logs every call as a line of text.
type recorder struct {
	ops []string
}

func (r *recorder) BeginFrame() { r.ops = append(r.ops, "begin") }
func (r *recorder) EndFrame()   { r.ops = append(r.ops, "end") }
func (r *recorder) Clear(c Color) {
	r.ops = append(r.ops, fmt.Sprintf("clear %02x%02x%02x", c.R, c.G, c.B))
}
func (r *recorder) FillRect(x, y, w, h int, c Color) {
	r.ops = append(r.ops, fmt.Sprintf("fill %d,%d %dx%d", x, y, w, h))
}
func (r *recorder) StrokeRect(x, y, w, h int, c Color) {
	r.ops = append(r.ops, fmt.Sprintf("stroke %d,%d %dx%d", x, y, w, h))
}
func (r *recorder) Text(s string, x, y int, align Align, c Color) {
	r.ops = append(r.ops, fmt.Sprintf("text %q %d,%d/%d", s, x, y, align))
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func snapshot(phase types.Phase) game.Snapshot {
	return game.Snapshot{
		Grid:      types.DefaultGrid(),
		Snake:     []types.Point{{X: 18, Y: 15}, {X: 17, Y: 15}},
		Food:      types.Point{X: 0, Y: 31},
		Phase:     phase,
		Score:     7,
		HighScore: 12,
		Speed:     types.InitialSpeed,
	}
}

func TestLayoutCanvasSize(t *testing.T) {
	w, h := DefaultLayout().CanvasSize()
	if w != 320 || h != 320 {
		t.Errorf("Expected 320x320 canvas, got %dx%d", w, h)
	}
}

func TestDrawFrame(t *testing.T) {
	rec := &recorder{}
	NewRenderer(rec, DefaultLayout()).Draw(snapshot(types.PhasePlaying))

	if rec.ops[0] != "begin" || rec.ops[len(rec.ops)-1] != "end" {
		t.Errorf("Expected drawing bracketed by begin/end, got %v", rec.ops)
	}
	want := []string{
		"clear 77ee33",
		"stroke 32,32 256x256",
		`text "SNAKE" 32,28/0`,
		`text "SCORE: 7" 32,304/0`,
		`text "HI: 12" 288,304/2`,
	}
	for _, op := range want {
		if !slices.Contains(rec.ops, op) {
			t.Errorf("Expected %q in %v", op, rec.ops)
		}
	}
}

func TestDrawByPhase(t *testing.T) {
	tests := []struct {
		name      string
		phase     types.Phase
		wantText  string
		wantFills int
	}{
		{"Game over", types.PhaseGameOver, `text "PRESS SPACE TO START" 160,160/1`, 0},
		{"Paused", types.PhasePaused, `text "PAUSED" 160,160/1`, 0},
		{"Playing", types.PhasePlaying, "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			NewRenderer(rec, DefaultLayout()).Draw(snapshot(tt.phase))

			if tt.wantText != "" && !slices.Contains(rec.ops, tt.wantText) {
				t.Errorf("Expected %q in %v", tt.wantText, rec.ops)
			}
			if got := rec.count("fill"); got != tt.wantFills {
				t.Errorf("Expected %d filled cells, got %d", tt.wantFills, got)
			}
		})
	}
}

func TestDrawPlacesCells(t *testing.T) {
	rec := &recorder{}
	NewRenderer(rec, DefaultLayout()).Draw(snapshot(types.PhasePlaying))

	for _, op := range []string{
		"fill 176,152 8x8", // head (18,15)
		"fill 168,152 8x8", // (17,15)
		"fill 32,280 8x8",  // food (0,31)
	} {
		if !slices.Contains(rec.ops, op) {
			t.Errorf("Expected %q in %v", op, rec.ops)
		}
	}
}
