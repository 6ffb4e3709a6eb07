package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Arena      ArenaConfig      `toml:"arena"`
	Simulation SimulationConfig `toml:"simulation"`
	Assets     AssetsConfig     `toml:"assets"`
	Scripting  ScriptingConfig  `toml:"scripting"`
	Logging    LoggingConfig    `toml:"logging"`
}

type ArenaConfig struct {
	Aspect   float32 `toml:"aspect"`   // viewport width / height
	Cutscene bool    `toml:"cutscene"` // invincible, undrawn ship
}

type SimulationConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	Workers  int           `toml:"workers"`   // fan-out of the parallel passes
	Seed     int64         `toml:"seed"`      // 0 = seeded from the clock
	MaxTicks int           `toml:"max_ticks"` // 0 = run until signalled or game over
}

type AssetsConfig struct {
	Manifest string `toml:"manifest"` // empty = bundled manifest
}

type ScriptingConfig struct {
	Dir string `toml:"dir"` // empty = built-in Go rules
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return defaults()
}

func (c *Config) validate() error {
	if c.Arena.Aspect <= 0 {
		return fmt.Errorf("arena.aspect must be positive, got %v", c.Arena.Aspect)
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate must be positive, got %s", c.Simulation.TickRate)
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("simulation.workers must be at least 1, got %d", c.Simulation.Workers)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Arena: ArenaConfig{
			Aspect: 16.0 / 9.0,
		},
		Simulation: SimulationConfig{
			TickRate: 16 * time.Millisecond,
			Workers:  4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
