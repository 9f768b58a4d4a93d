package snake

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned by Tick once the snake has failed. Reset clears it.
var ErrGameOver = errors.New("snake: game over")

// ErrBoardFull is returned by food placement when every cell is occupied.
var ErrBoardFull = errors.New("snake: no free cell for food")

// ConfigError reports a configuration that cannot start a game.
// It is returned at construction time, before anything is rendered.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("snake: invalid %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
