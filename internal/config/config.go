// Package config provides YAML-based configuration loading for the game.
package config

import (
	_ "embed"
	"fmt"

	"tfe/internal/game"
)

//go:embed defaults/tfe.yaml
var defaultYAML []byte

// Config is the full game configuration.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Game     GameConfig     `yaml:"game"`
	Autoplay AutoplayConfig `yaml:"autoplay"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// GameConfig defines the win condition and initial setup.
type GameConfig struct {
	WinValue     int `yaml:"win_value"`     // tile value that counts as a win
	InitialTiles int `yaml:"initial_tiles"` // tiles spawned at game start
}

// AutoplayConfig defines automated play behavior.
type AutoplayConfig struct {
	Enabled bool `yaml:"enabled"`
	Chunk   int  `yaml:"chunk"` // engine moves applied per redraw
}

// Default returns the classic 4x4 configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows: game.DefaultRows,
			Cols: game.DefaultCols,
		},
		Game: GameConfig{
			WinValue:     game.DefaultWinValue,
			InitialTiles: game.DefaultInitialTiles,
		},
		Autoplay: AutoplayConfig{
			Enabled: false,
			Chunk:   1,
		},
	}
}

// Validate checks the configuration for values the engine would reject.
func (c Config) Validate() error {
	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if c.Game.WinValue < 2 || c.Game.WinValue&(c.Game.WinValue-1) != 0 {
		return fmt.Errorf("win_value %d is not a power of 2", c.Game.WinValue)
	}
	if c.Game.InitialTiles < 0 || c.Game.InitialTiles > c.Board.Rows*c.Board.Cols {
		return fmt.Errorf("initial_tiles %d exceeds board capacity %d",
			c.Game.InitialTiles, c.Board.Rows*c.Board.Cols)
	}
	if c.Autoplay.Chunk < 1 {
		return fmt.Errorf("autoplay chunk must be positive, got %d", c.Autoplay.Chunk)
	}
	return nil
}

// EngineConfig maps the configuration onto the engine's parameters.
func (c Config) EngineConfig() game.Config {
	return game.Config{
		Rows:         c.Board.Rows,
		Cols:         c.Board.Cols,
		WinValue:     c.Game.WinValue,
		InitialTiles: c.Game.InitialTiles,
	}
}
