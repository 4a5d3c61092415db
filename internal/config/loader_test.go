package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Rows != 4 || cfg.Board.Cols != 4 {
		t.Errorf("default board = %dx%d, want 4x4", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Game.WinValue != 2048 {
		t.Errorf("default win_value = %d, want 2048", cfg.Game.WinValue)
	}
	if cfg.Game.InitialTiles != 2 {
		t.Errorf("default initial_tiles = %d, want 2", cfg.Game.InitialTiles)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := []byte("board:\n  rows: 16\n  cols: 32\ngame:\n  win_value: 4096\n  initial_tiles: 3\nautoplay:\n  enabled: true\n  chunk: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Rows != 16 || cfg.Board.Cols != 32 {
		t.Errorf("board = %dx%d, want 16x32", cfg.Board.Rows, cfg.Board.Cols)
	}
	if !cfg.Autoplay.Enabled || cfg.Autoplay.Chunk != 50 {
		t.Errorf("autoplay = %+v, want enabled with chunk 50", cfg.Autoplay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate, got %v", err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero rows", func(c *Config) { c.Board.Rows = 0 }, true},
		{"zero cols", func(c *Config) { c.Board.Cols = 0 }, true},
		{"win value not power of two", func(c *Config) { c.Game.WinValue = 100 }, true},
		{"too many initial tiles", func(c *Config) { c.Game.InitialTiles = 17 }, true},
		{"zero chunk", func(c *Config) { c.Autoplay.Chunk = 0 }, true},
		{"huge board", func(c *Config) { c.Board.Rows = 1000; c.Board.Cols = 1000 }, false},
		{"single line board", func(c *Config) { c.Board.Rows = 1; c.Board.Cols = 8 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngineConfigMapping(t *testing.T) {
	cfg := Default()
	cfg.Board.Rows = 9
	cfg.Board.Cols = 7

	ec := cfg.EngineConfig()
	if ec.Rows != 9 || ec.Cols != 7 || ec.WinValue != 2048 || ec.InitialTiles != 2 {
		t.Errorf("EngineConfig() = %+v", ec)
	}
}
