package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// MaxPlacementAttempts bounds rejection sampling before falling back to
// scanning the free cells.
const MaxPlacementAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random cell not covered by snake.
// ok is false when the snake fills the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	for i := 0; i < MaxPlacementAttempts; i++ {
		food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	free := fm.FreeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

// FreeCells lists every cell not covered by snake, row by row.
func (fm *FoodManager) FreeCells(snake *entity.Snake) []types.Point {
	free := make([]types.Point, 0, max(fm.grid.Cells()-snake.Len(), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !snake.Contains(p) {
				free = append(free, p)
			}
		}
	}
	return free
}
