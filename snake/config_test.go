package snake

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
	if cfg.TotalCells != 121 || cfg.SnakeLen != 3 || cfg.TickerDelay != 500*time.Millisecond {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"non-square", func(c *Config) { c.TotalCells = 105 }, "total cells"},
		{"zero cells", func(c *Config) { c.TotalCells = 0 }, "total cells"},
		{"cell width", func(c *Config) { c.CellWidth = 0 }, "cell width"},
		{"short snake", func(c *Config) { c.SnakeLen = 0 }, "snake length"},
		{"long snake", func(c *Config) { c.SnakeLen = 12 }, "snake length"},
		{"direction", func(c *Config) { c.Direction = Direction(4) }, "direction"},
		{"ticker", func(c *Config) { c.TickerDelay = 0 }, "ticker delay"},
		{"colors", func(c *Config) { c.Colors.Fail = "" }, "colors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			var cfgErr *ConfigError
			if err := cfg.Validate(); !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q): got %v, %v", d.String(), got, err)
		}
	}
	if got, err := ParseDirection(" DOWN "); err != nil || got != Down {
		t.Errorf("expected case-insensitive parse, got %v, %v", got, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected an error for an unknown direction")
	}
	if Left.Opposite() != Right || Up.Opposite() != Down {
		t.Error("Opposite is not symmetric")
	}
}
