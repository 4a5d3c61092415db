package tui

import (
	"strings"
	"testing"

	"tfe/internal/game"
)

func TestViewportSmallBoardNoScroll(t *testing.T) {
	b := game.NewBoard(4, 4)
	rowOff, colOff := viewport(b, 10, 10)
	if rowOff != 0 || colOff != 0 {
		t.Errorf("viewport on a fitting board = (%d, %d), want (0, 0)", rowOff, colOff)
	}
}

func TestViewportFollowsMaxTile(t *testing.T) {
	b := game.NewBoard(100, 100)
	b.Set(90, 90, 2048)

	rowOff, colOff := viewport(b, 10, 10)
	if rowOff+10 <= 90 || colOff+10 <= 90 {
		t.Errorf("viewport (%d, %d) does not include the max tile at (90, 90)", rowOff, colOff)
	}
	if rowOff > 90 || colOff > 90 {
		t.Errorf("viewport (%d, %d) starts past the max tile", rowOff, colOff)
	}
}

func TestViewportClampedToBoard(t *testing.T) {
	b := game.NewBoard(20, 20)
	b.Set(19, 19, 4) // anchor in the far corner

	rowOff, colOff := viewport(b, 8, 8)
	if rowOff+8 > 20 || colOff+8 > 20 {
		t.Errorf("viewport (%d, %d) extends past the board edge", rowOff, colOff)
	}
}

func TestRenderBoardContainsTiles(t *testing.T) {
	b := game.NewBoard(2, 3)
	b.Set(0, 0, 2)
	b.Set(1, 2, 1024)

	out := renderBoard(b, 120, 40)
	if !strings.Contains(out, "2") {
		t.Error("rendered board missing tile value 2")
	}
	if !strings.Contains(out, "1024") {
		t.Error("rendered board missing tile value 1024")
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Error("rendered board missing grid borders")
	}
}

func TestRenderBoardClipsLargeBoard(t *testing.T) {
	b := game.NewBoard(500, 500)
	b.Set(0, 0, 2)

	out := renderBoard(b, 80, 24)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) > 30 {
		t.Errorf("clipped render produced %d lines for an 80x24 area", len(lines))
	}
	if !strings.Contains(out, "window of 500x500 board") {
		t.Error("clipped render should note the visible window")
	}
}
