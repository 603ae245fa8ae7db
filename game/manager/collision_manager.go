package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead returns the cell one step from head in dir, wrapping at the edges.
func (cm *CollisionManager) NextHead(head types.Point, dir types.Direction) types.Point {
	d := dir.Delta()
	return cm.grid.Wrap(types.Point{X: head.X + d.X, Y: head.Y + d.Y})
}

// CheckCollision reports whether pos hits any current segment, tail included.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) bool {
	return snake.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return cm.grid.Contains(pos) && !snake.Contains(pos)
}
