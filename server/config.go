package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"gridsnake/snake"
)

// Server defaults
const (
	ServerPort    = ":8080"
	StaticDir     = "../client"
	WebSocketPath = "/ws"

	// MaxSessions caps concurrent games; every connection owns one
	MaxSessions = 64
	// IPCooldownSec is the minimum gap between connects from one IP
	IPCooldownSec = 2

	ShutdownTimeout = 5 * time.Second
)

// Environment overrides, applied after the optional YAML file
const (
	EnvConfigFile = "GRIDSNAKE_CONFIG"
	EnvAddr       = "GRIDSNAKE_ADDR"
	EnvStaticDir  = "GRIDSNAKE_STATIC_DIR"
	EnvTotalCells = "GRIDSNAKE_TOTAL_CELLS"
	EnvSnakeLen   = "GRIDSNAKE_SNAKE_LEN"
	EnvTickMS     = "GRIDSNAKE_TICK_MS"
	EnvStrict     = "GRIDSNAKE_STRICT"
)

// fileConfig mirrors the YAML layout:
//
//	addr: ":8080"
//	static_dir: ../client
//	max_sessions: 64
//	ip_cooldown_sec: 2
//	game:
//	  total_cells: 121
//	  snake_len: 3
//	  tick_ms: 500
type fileConfig struct {
	Addr          string     `yaml:"addr"`
	StaticDir     string     `yaml:"static_dir"`
	MaxSessions   int        `yaml:"max_sessions"`
	IPCooldownSec int        `yaml:"ip_cooldown_sec"`
	Game          gameConfig `yaml:"game"`
}

type gameConfig struct {
	TotalCells int          `yaml:"total_cells"`
	CellWidth  int          `yaml:"cell_width"`
	SnakeLen   int          `yaml:"snake_len"`
	Direction  string       `yaml:"direction"`
	TickMS     int          `yaml:"tick_ms"`
	Strict     bool         `yaml:"strict"`
	Colors     snake.Colors `yaml:"colors"`
}

// Config is the resolved server configuration
type Config struct {
	Addr        string
	StaticDir   string
	MaxSessions int
	IPCooldown  time.Duration
	Game        snake.Config
}

func defaultFileConfig() fileConfig {
	d := snake.DefaultConfig()
	return fileConfig{
		Addr:          ServerPort,
		StaticDir:     StaticDir,
		MaxSessions:   MaxSessions,
		IPCooldownSec: IPCooldownSec,
		Game: gameConfig{
			TotalCells: d.TotalCells,
			CellWidth:  d.CellWidth,
			SnakeLen:   d.SnakeLen,
			Direction:  d.Direction.String(),
			TickMS:     int(d.TickerDelay / time.Millisecond),
			Colors:     d.Colors,
		},
	}
}

// loadConfig resolves defaults, then the YAML file named by
// GRIDSNAKE_CONFIG, then individual environment overrides.
func loadConfig(getenv func(string) string) (Config, error) {
	fc := defaultFileConfig()

	if path := getenv(EnvConfigFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := getenv(EnvAddr); v != "" {
		fc.Addr = v
	}
	if v := getenv(EnvStaticDir); v != "" {
		fc.StaticDir = v
	}
	for _, o := range []struct {
		key string
		dst *int
	}{
		{EnvTotalCells, &fc.Game.TotalCells},
		{EnvSnakeLen, &fc.Game.SnakeLen},
		{EnvTickMS, &fc.Game.TickMS},
	} {
		v := getenv(o.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", o.key, err)
		}
		*o.dst = n
	}
	if v := getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvStrict, err)
		}
		fc.Game.Strict = strict
	}

	dir, err := snake.ParseDirection(fc.Game.Direction)
	if err != nil {
		return Config{}, err
	}
	game := snake.Config{
		TotalCells:   fc.Game.TotalCells,
		CellWidth:    fc.Game.CellWidth,
		SnakeLen:     fc.Game.SnakeLen,
		Direction:    dir,
		TickerDelay:  time.Duration(fc.Game.TickMS) * time.Millisecond,
		Colors:       fc.Game.Colors,
		StrictBounds: fc.Game.Strict,
	}
	if err := game.Validate(); err != nil {
		return Config{}, err
	}
	if fc.MaxSessions <= 0 {
		return Config{}, fmt.Errorf("max_sessions must be positive, got %d", fc.MaxSessions)
	}

	return Config{
		Addr:        fc.Addr,
		StaticDir:   fc.StaticDir,
		MaxSessions: fc.MaxSessions,
		IPCooldown:  time.Duration(fc.IPCooldownSec) * time.Second,
		Game:        game,
	}, nil
}
