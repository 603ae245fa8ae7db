package input

import "github.com/gdamore/tcell/v2"

// FromTerminal maps a tcell event to a key. Non-key events map to KeyNone.
func FromTerminal(ev tcell.Event) Key {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return KeyNone
	}

	switch kev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		return fromRune(kev.Rune())
	}
	return KeyNone
}

// Letter aliases for terminals where arrows are awkward: wasd and hjkl.
func fromRune(r rune) Key {
	switch r {
	case ' ':
		return KeySpace
	case 'q', 'Q':
		return KeyQuit
	case 'w', 'k':
		return KeyUp
	case 's', 'j':
		return KeyDown
	case 'a', 'h':
		return KeyLeft
	case 'd', 'l':
		return KeyRight
	}
	return KeyNone
}
