// Package config loads and validates simulation settings. Settings
// come from an optional TOML file overridden by flags; the resolved
// value is passed explicitly into the constructors that need it
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sondersim/sonder/parameter"
)

// Config is the bounded configuration the core consumes plus the
// collaborator settings (database path, UI mode)
type Config struct {
	WorldWidth    int     `toml:"world_width"`
	WorldHeight   int     `toml:"world_height"`
	TickRate      float64 `toml:"tick_rate"`
	StartEntities int     `toml:"start_entities"`
	MaxTicks      uint64  `toml:"max_ticks"`
	DatabasePath  string  `toml:"database_path"`
	Seed          int64   `toml:"seed"`
	Debug         bool    `toml:"debug"`
}

// Default returns the baseline configuration
func Default() Config {
	return Config{
		WorldWidth:    parameter.DefaultWorldWidth,
		WorldHeight:   parameter.DefaultWorldHeight,
		TickRate:      parameter.DefaultTickRate,
		StartEntities: parameter.DefaultEntities,
		DatabasePath:  "sonder.db",
		Seed:          1,
	}
}

// Load reads a TOML file over the defaults. A missing file with an
// empty path is fine (defaults apply); a named file that cannot be
// read or parsed is a hard error
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the core cannot run with.
// Surfaced immediately at startup, never retried
func (c Config) Validate() error {
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%d", c.WorldWidth, c.WorldHeight)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %v", c.TickRate)
	}
	if c.StartEntities < 0 {
		return fmt.Errorf("start entities must be non-negative, got %d", c.StartEntities)
	}
	return nil
}
