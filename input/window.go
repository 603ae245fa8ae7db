package input

import rl "github.com/gen2brain/raylib-go/raylib"

var windowKeys = []struct {
	code int32
	key  Key
}{
	{rl.KeyUp, KeyUp},
	{rl.KeyDown, KeyDown},
	{rl.KeyLeft, KeyLeft},
	{rl.KeyRight, KeyRight},
	{rl.KeySpace, KeySpace},
	{rl.KeyQ, KeyQuit},
}

// PollWindow returns the keys pressed since the previous frame, in a fixed order.
func PollWindow() []Key {
	var keys []Key
	for _, k := range windowKeys {
		if rl.IsKeyPressed(k.code) {
			keys = append(keys, k.key)
		}
	}
	return keys
}
