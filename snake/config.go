package snake

import "time"

// Defaults for a new game
const (
	DefaultTotalCells  = 121 // should be a square number: 100, 121, 400
	DefaultCellWidth   = 15
	DefaultSnakeLen    = 3
	DefaultTickerDelay = 500 * time.Millisecond

	DefaultSnakeColor = "green"
	DefaultFoodColor  = "LightGreen"
	DefaultFailColor  = "Crimson"
)

// Colors are the color tags handed to the Renderer
type Colors struct {
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
	Fail  string `yaml:"fail"`
}

// Config describes one game session. Side is derived from TotalCells.
type Config struct {
	TotalCells  int
	CellWidth   int
	SnakeLen    int
	Direction   Direction
	TickerDelay time.Duration
	Colors      Colors

	// StrictBounds additionally fails steps that leave the index range or
	// land on the body. Off by default: only the active direction's limit
	// set is checked and reversing into the body is allowed.
	StrictBounds bool
}

// DefaultConfig returns an 11x11 board with a three cell snake heading right.
func DefaultConfig() Config {
	return Config{
		TotalCells:  DefaultTotalCells,
		CellWidth:   DefaultCellWidth,
		SnakeLen:    DefaultSnakeLen,
		Direction:   Right,
		TickerDelay: DefaultTickerDelay,
		Colors: Colors{
			Snake: DefaultSnakeColor,
			Food:  DefaultFoodColor,
			Fail:  DefaultFailColor,
		},
	}
}

// Validate checks every field and returns a *ConfigError for the first bad one.
func (c Config) Validate() error {
	side, ok := squareRoot(c.TotalCells)
	if !ok {
		return configErrorf("total cells", "%d is not a positive square number", c.TotalCells)
	}
	if c.CellWidth <= 0 {
		return configErrorf("cell width", "%d must be positive", c.CellWidth)
	}
	if c.SnakeLen < 1 || c.SnakeLen > side {
		return configErrorf("snake length", "%d must be between 1 and %d", c.SnakeLen, side)
	}
	if !c.Direction.Valid() {
		return configErrorf("direction", "%d is not a direction", int(c.Direction))
	}
	if c.TickerDelay <= 0 {
		return configErrorf("ticker delay", "%s must be positive", c.TickerDelay)
	}
	if c.Colors.Snake == "" || c.Colors.Food == "" || c.Colors.Fail == "" {
		return configErrorf("colors", "snake, food and fail colors are required")
	}
	return nil
}
