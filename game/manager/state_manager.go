package manager

import (
	"time"

	"snake-classic/game/types"
)

// StateManager tracks the phase, score and speed ramp of one session.
// The high score lives for the process only.
type StateManager struct {
	phase     types.Phase
	score     int
	speed     time.Duration
	highScore int
}

func NewStateManager() *StateManager {
	return &StateManager{
		phase: types.PhaseGameOver,
		speed: types.InitialSpeed,
	}
}

// Start begins a fresh session. The high score is kept.
func (sm *StateManager) Start() {
	sm.phase = types.PhasePlaying
	sm.score = 0
	sm.speed = types.InitialSpeed
}

// TogglePause flips between playing and paused. It does nothing once the game is over.
func (sm *StateManager) TogglePause() bool {
	switch sm.phase {
	case types.PhasePlaying:
		sm.phase = types.PhasePaused
	case types.PhasePaused:
		sm.phase = types.PhasePlaying
	default:
		return false
	}
	return true
}

func (sm *StateManager) End() {
	sm.phase = types.PhaseGameOver
}

// UpdateScore records an eaten food: one point and a faster tick, floored at MinSpeed.
func (sm *StateManager) UpdateScore() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	sm.speed = max(sm.speed-types.SpeedStep, types.MinSpeed)
}

func (sm *StateManager) Phase() types.Phase {
	return sm.phase
}

func (sm *StateManager) Playing() bool {
	return sm.phase == types.PhasePlaying
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetSpeed() time.Duration {
	return sm.speed
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}
