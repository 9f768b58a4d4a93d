package snake

import (
	"fmt"
	"strings"
)

// Direction selects both the movement offset and the limit set checked on a step.
type Direction int

// Cyclic order matters: it is the wire value and the autopilot's fallback order.
const (
	Right Direction = iota
	Down
	Left
	Up
)

// Directions lists every direction in cyclic order.
var Directions = [...]Direction{Right, Down, Left, Up}

var directionNames = [...]string{"right", "down", "left", "up"}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Right && d <= Up
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts a direction name, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("snake: unknown direction %q", s)
}
