// Package input turns raw key events into game commands.
package input

import "snake-classic/game/types"

// Key is a game key, independent of the device it came from.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// Controller is the part of the game the adapter drives.
type Controller interface {
	SetDirection(dir types.Direction) bool
	TogglePause() bool
	Reset()
	GameOver() bool
}

type Adapter struct {
	game Controller
}

func NewAdapter(game Controller) *Adapter {
	return &Adapter{game: game}
}

// Handle applies one key. It returns false when the player asked to quit.
func (a *Adapter) Handle(key Key) bool {
	switch key {
	case KeyUp:
		a.game.SetDirection(types.Up)
	case KeyDown:
		a.game.SetDirection(types.Down)
	case KeyLeft:
		a.game.SetDirection(types.Left)
	case KeyRight:
		a.game.SetDirection(types.Right)
	case KeySpace:
		if a.game.GameOver() {
			a.game.Reset()
		} else {
			a.game.TogglePause()
		}
	case KeyQuit:
		return false
	}
	return true
}
