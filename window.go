package main

import (
	"context"
	"log/slog"
	"time"

	"snake-classic/game"
	"snake-classic/input"
	"snake-classic/internal/config"
	"snake-classic/ui"
)

const windowTitle = "SNAKE"

// runWindow drives the game from the raylib frame loop. The loop is paced by
// SetTargetFPS; Advance decides on its own whether a tick is due.
func runWindow(ctx context.Context, g *game.Game, cfg config.Config, logger *slog.Logger) error {
	layout := ui.DefaultLayout()
	surface, err := ui.OpenWindow(windowTitle, layout, cfg.Scale, cfg.TargetFPS)
	if err != nil {
		return err
	}
	defer surface.Close()

	renderer := ui.NewRenderer(surface, layout)
	adapter := input.NewAdapter(g)
	logger.Info("window opened", "scale", cfg.Scale, "fps", cfg.TargetFPS)

	for !surface.ShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		for _, key := range input.PollWindow() {
			if !adapter.Handle(key) {
				return nil
			}
		}

		g.Advance(time.Now())
		renderer.Draw(g.Snapshot())
	}
	return nil
}
