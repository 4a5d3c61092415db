// tfe is a terminal 2048 with arbitrary board sizes and an autoplay mode.
//
// Usage:
//
//	tfe play [n]             - Play on an n x n board (default 4x4)
//	tfe play --rows 8 --cols 100 --auto
//	tfe serve                - Serve the game over SSH
//
// Global flags:
//
//	--fps <rate>    - Autoplay frame rate (default: 60)
//	--seed <value>  - RNG seed for reproducible games
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tfe",
	Short: "2048 in your terminal",
	Long: `tfe is a terminal implementation of the 2048 sliding-tile puzzle.

Boards of any size are supported, from 1x1 up to boards far larger than
your terminal, and an autoplay mode plays the game by itself using a
greedy heuristic.

Examples:
  tfe play
  tfe play 16
  tfe play --rows 8 --cols 12 --win 4096
  tfe play 200 --auto --auto-chunk 100
  tfe serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Autoplay frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
