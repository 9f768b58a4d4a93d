package term

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/snake"
)

// Action is a non-movement key command
type Action int

const (
	ActionNone Action = iota
	ActionNewGame
	ActionPause
	ActionAutopilot
	ActionQuit
)

// KeyDirection maps arrow keys, hjkl and wasd to a direction.
func KeyDirection(key tcell.Key, ch rune) (snake.Direction, bool) {
	switch key {
	case tcell.KeyRight:
		return snake.Right, true
	case tcell.KeyDown:
		return snake.Down, true
	case tcell.KeyLeft:
		return snake.Left, true
	case tcell.KeyUp:
		return snake.Up, true
	case tcell.KeyRune:
		switch ch {
		case 'l', 'd':
			return snake.Right, true
		case 'j', 's':
			return snake.Down, true
		case 'h', 'a':
			return snake.Left, true
		case 'k', 'w':
			return snake.Up, true
		}
	}
	return 0, false
}

// KeyAction maps the remaining command keys. 'a' is a direction, so the
// autopilot toggle is 'o'.
func KeyAction(key tcell.Key, ch rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ch {
		case 'q':
			return ActionQuit
		case 'n':
			return ActionNewGame
		case 'p', ' ':
			return ActionPause
		case 'o':
			return ActionAutopilot
		}
	}
	return ActionNone
}
