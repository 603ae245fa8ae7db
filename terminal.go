package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/input"
	"snake-classic/internal/config"
	"snake-classic/ui"
)

// runTerminal drives the game from a frame ticker. Key events are pumped from
// tcell on their own goroutine but only this loop touches the game.
func runTerminal(ctx context.Context, g *game.Game, cfg config.Config, logger *slog.Logger) error {
	surface, err := ui.OpenTerminal(types.PixelSize)
	if err != nil {
		return err
	}
	defer surface.Close()
	screen := surface.Screen()

	layout := ui.DefaultLayout()
	renderer := ui.NewRenderer(surface, layout)
	adapter := input.NewAdapter(g)

	cols, rows := surface.MinSize(layout)
	logger.Info("terminal opened", "fps", cfg.TargetFPS, "min_cols", cols, "min_rows", rows)

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TargetFPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !adapter.Handle(input.FromTerminal(ev)) {
				return nil
			}

		case now := <-ticker.C:
			// The board cannot be seen, so a running game waits paused.
			if !surface.Fits(layout) {
				if g.Phase() == types.PhasePlaying {
					g.TogglePause()
				}
				surface.ShowTooSmall(layout)
				continue
			}
			g.Advance(now)
			renderer.Draw(g.Snapshot())
		}
	}
}
