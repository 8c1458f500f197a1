// Package config loads the settings of the brickfall binary from the environment and the
// command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/deitrix/brickfall/board"
	"github.com/deitrix/brickfall/grid"
	"github.com/deitrix/brickfall/mode"
)

// MinTick is the shortest base tick Validate accepts.
const MinTick = 10 * time.Millisecond

// Config holds the game settings.
type Config struct {
	Width    int           `env:"BRICKFALL_WIDTH"     envDefault:"10"`
	Height   int           `env:"BRICKFALL_HEIGHT"    envDefault:"25"`
	Mode     string        `env:"BRICKFALL_MODE"      envDefault:"classic"`
	Tick     time.Duration `env:"BRICKFALL_TICK"      envDefault:"400ms"`
	TPS      int           `env:"BRICKFALL_TPS"       envDefault:"60"`
	CellSize int           `env:"BRICKFALL_CELL_SIZE" envDefault:"32"`
	Seed     uint64        `env:"BRICKFALL_SEED"`
	Debug    bool          `env:"BRICKFALL_DEBUG"`
}

// Parse reads the environment, then lets flags in args override it.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Width, "width", cfg.Width, "columns of the playing field")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "rows of the playing field, including the two hidden spawn rows")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "game mode: classic, challenge or relax")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "interval between automatic moves at normal speed")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "game updates per second")
	fs.IntVar(&cfg.CellSize, "cell-size", cfg.CellSize, "size of a cell in pixels")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the brick supply (0 picks one at random)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "show the debug overlay")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that can't be used.
func (c Config) Validate() error {
	if c.Width < 4 {
		return fmt.Errorf("width must be at least 4, got %d", c.Width)
	}
	if c.Height < 4+grid.HiddenRows {
		return fmt.Errorf("height must be at least %d, got %d", 4+grid.HiddenRows, c.Height)
	}
	if _, err := mode.Parse(c.Mode); err != nil {
		return err
	}
	if c.Tick < MinTick {
		return fmt.Errorf("tick must be at least %s, got %s", MinTick, c.Tick)
	}
	if c.TPS <= 0 {
		return errors.New("tps must be positive")
	}
	if c.CellSize <= 0 {
		return errors.New("cell size must be positive")
	}
	return nil
}

// GameMode returns the configured mode. It assumes the config is valid.
func (c Config) GameMode() mode.Mode {
	m, _ := mode.Parse(c.Mode)
	return m
}

// BoardOptions returns the board options for the configured field. New bricks appear roughly
// centred; on the default ten-wide field that is board.DefaultSpawnX.
func (c Config) BoardOptions() []board.Option {
	return []board.Option{
		board.WithSize(c.Width, c.Height),
		board.WithSpawn((c.Width-3)/2, board.DefaultSpawnY),
	}
}
