package game

import (
	"log/slog"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game owns the whole game state. It is not safe for concurrent use; the
// frame loop is its only caller.
type Game struct {
	Grid types.Grid

	sessionID     string
	snake         *entity.Snake
	food          types.Point
	direction     types.Direction
	nextDirection types.Direction
	lastMove      time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	logger       *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for session events.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSeed makes food placement reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.foodMgr = manager.NewFoodManager(g.Grid, g.collisionMgr, rand.New(rand.NewSource(seed)))
	}
}

// NewGame returns a game waiting for its first Reset.
func NewGame(grid types.Grid, opts ...Option) *Game {
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		Grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr: manager.NewFoodManager(grid, collisionMgr,
			rand.New(rand.NewSource(uint64(time.Now().UnixNano())))),
		stateMgr: manager.NewStateManager(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.snake = entity.StartingSnake(grid)
	g.direction = types.Right
	g.nextDirection = types.Right
	return g
}

// Reset starts a new session from the starting snake.
func (g *Game) Reset() {
	g.sessionID = uuid.NewString()
	g.snake = entity.StartingSnake(g.Grid)
	g.direction = types.Right
	g.nextDirection = types.Right
	g.lastMove = time.Time{}
	g.stateMgr.Start()

	food, ok := g.foodMgr.GenerateFood(g.snake)
	if !ok {
		g.stateMgr.End()
		return
	}
	g.food = food

	g.logger.Debug("game started", "session", g.sessionID, "speed", g.stateMgr.GetSpeed())
}

// Advance moves the snake one cell if a full tick has elapsed since the last
// move. It reports whether the snake moved.
func (g *Game) Advance(now time.Time) bool {
	if !g.stateMgr.Playing() {
		return false
	}
	if !g.lastMove.IsZero() && now.Sub(g.lastMove) < g.stateMgr.GetSpeed() {
		return false
	}
	g.lastMove = now
	g.direction = g.nextDirection

	newHead := g.collisionMgr.NextHead(g.snake.Head(), g.direction)

	switch {
	case g.collisionMgr.CheckCollision(newHead, g.snake):
		g.stateMgr.End()
		g.logger.Debug("game over",
			"session", g.sessionID,
			"score", g.stateMgr.GetScore(),
			"head", newHead)
	case g.collisionMgr.IsFoodCollision(newHead, g.food):
		g.snake.Grow(newHead)
		g.stateMgr.UpdateScore()
		g.logger.Debug("food eaten",
			"session", g.sessionID,
			"score", g.stateMgr.GetScore(),
			"speed", g.stateMgr.GetSpeed())

		food, ok := g.foodMgr.GenerateFood(g.snake)
		if !ok {
			// No cell left for food.
			g.stateMgr.End()
			g.logger.Debug("board full", "session", g.sessionID, "score", g.stateMgr.GetScore())
			break
		}
		g.food = food
	default:
		g.snake.Move(newHead)
	}
	return true
}

// SetDirection queues the direction for the next tick. Requests are dropped
// while paused or over, and when they reverse the current direction.
func (g *Game) SetDirection(dir types.Direction) bool {
	if !g.stateMgr.Playing() || dir == g.direction.Opposite() {
		return false
	}
	g.nextDirection = dir
	return true
}

// TogglePause pauses or resumes a running game.
func (g *Game) TogglePause() bool {
	if !g.stateMgr.TogglePause() {
		return false
	}
	g.logger.Debug("pause toggled", "session", g.sessionID, "phase", g.stateMgr.Phase())
	return true
}

// Phase reports whether the game is running, paused or over.
func (g *Game) Phase() types.Phase {
	return g.stateMgr.Phase()
}

// GameOver is true before the first Reset and once a round has ended.
func (g *Game) GameOver() bool {
	return g.stateMgr.Phase() == types.PhaseGameOver
}

// SessionID identifies the current round; Reset assigns a new one.
func (g *Game) SessionID() string {
	return g.sessionID
}
