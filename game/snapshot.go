package game

import (
	"time"

	"snake-classic/game/types"
)

// Snapshot is a read-only copy of the game state for renderers.
type Snapshot struct {
	SessionID string
	Grid      types.Grid
	Snake     []types.Point // head first
	Food      types.Point
	Direction types.Direction
	Phase     types.Phase
	Score     int
	HighScore int
	Speed     time.Duration
}

// Snapshot copies the current state; later moves do not affect it.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID: g.sessionID,
		Grid:      g.Grid,
		Snake:     g.snake.Body(),
		Food:      g.food,
		Direction: g.direction,
		Phase:     g.stateMgr.Phase(),
		Score:     g.stateMgr.GetScore(),
		HighScore: g.stateMgr.GetHighScore(),
		Speed:     g.stateMgr.GetSpeed(),
	}
}
