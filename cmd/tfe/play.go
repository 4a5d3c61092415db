package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tfe/internal/config"
	"tfe/internal/platform/tui"
)

var (
	flagConfig       string
	flagRows         int
	flagCols         int
	flagWin          int
	flagInitialTiles int
	flagAuto         bool
	flagAutoChunk    int
)

var playCmd = &cobra.Command{
	Use:   "play [n]",
	Short: "Play a game",
	Long: `Start a game of 2048.

The optional positional argument sets a square board size; --rows and
--cols set the dimensions independently and override it.

Controls:
  h/j/k/l      - Move (vi keys; arrows and WASD also work)
  A            - Toggle autoplay
  R            - Restart (after game over)
  Q/Esc/Ctrl+C - Quit

Examples:
  tfe play
  tfe play 16
  tfe play --rows 2 --cols 2
  tfe play 500 --auto --auto-chunk 250
  tfe play --config ./my-tfe.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (overrides config)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (overrides config)")
	playCmd.Flags().IntVar(&flagWin, "win", 0, "Win tile value (overrides config)")
	playCmd.Flags().IntVar(&flagInitialTiles, "initial-tiles", 0, "Tiles spawned at game start (overrides config)")
	playCmd.Flags().BoolVar(&flagAuto, "auto", false, "Start in autoplay mode")
	playCmd.Flags().IntVar(&flagAutoChunk, "auto-chunk", 0, "Autoplay moves applied per redraw (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return fmt.Errorf("board size must be an integer, got %q", args[0])
		}
		cfg.Board.Rows = n
		cfg.Board.Cols = n
	}
	if flagRows > 0 {
		cfg.Board.Rows = flagRows
	}
	if flagCols > 0 {
		cfg.Board.Cols = flagCols
	}
	if flagWin > 0 {
		cfg.Game.WinValue = flagWin
	}
	if flagInitialTiles > 0 {
		cfg.Game.InitialTiles = flagInitialTiles
	}
	if flagAuto {
		cfg.Autoplay.Enabled = true
	}
	if flagAutoChunk > 0 {
		cfg.Autoplay.Chunk = flagAutoChunk
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts := tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		FPS:    flagFPS,
	}

	// Probe terminal size so the first frame fits before the resize
	// message arrives.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Width = w
		opts.Height = h
	}

	return tui.Run(opts)
}
