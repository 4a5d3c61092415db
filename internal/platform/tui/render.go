package tui

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tfe/internal/game"
)

// tilePalette holds xterm-256 background colors indexed by tile rank
// (log2 of the value). Ranks beyond the palette wrap around.
var tilePalette = []string{
	"226", "46", "208", "33", "135", "130", "125",
	"123", "120", "52", "160", "214", "53", "17", "87", "255",
}

// darkText marks palette entries that need a dark foreground.
var darkText = map[string]bool{
	"226": true, "46": true, "208": true, "123": true,
	"120": true, "214": true, "87": true, "255": true,
}

var (
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hudStyle   = lipgloss.NewStyle().Bold(true)
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// tileStyle returns the style for a tile value.
func tileStyle(v int) lipgloss.Style {
	r := bits.Len(uint(v)) - 2 // value 2 -> palette index 0
	if r < 0 {
		r = 0
	}
	bg := tilePalette[r%len(tilePalette)]
	fg := "15"
	if darkText[bg] {
		fg = "0"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg))
}

// viewport computes the window of board cells that fits into the
// available screen area, anchored so the highest tile stays visible.
// Offsets are clamped to the board edges.
func viewport(b *game.Board, visRows, visCols int) (rowOff, colOff int) {
	if visRows >= b.Rows() && visCols >= b.Cols() {
		return 0, 0
	}

	// Center the window on the highest tile.
	maxVal := b.MaxValue()
	anchorR, anchorC := 0, 0
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.At(r, c) == maxVal {
				anchorR, anchorC = r, c
			}
		}
	}

	rowOff = clamp(anchorR-visRows/2, 0, max(0, b.Rows()-visRows))
	colOff = clamp(anchorC-visCols/2, 0, max(0, b.Cols()-visCols))
	return rowOff, colOff
}

// renderBoard draws the board as a grid of colored cells, clipped to
// the given screen area. Cell width adapts to the widest tile value.
func renderBoard(b *game.Board, maxW, maxH int) string {
	cellW := len(strconv.Itoa(b.MaxValue())) + 2
	if cellW < 4 {
		cellW = 4
	}

	visCols := min(b.Cols(), max(1, maxW/(cellW+1)))
	visRows := min(b.Rows(), max(1, maxH/2))
	rowOff, colOff := viewport(b, visRows, visCols)

	var sb strings.Builder
	divider := strings.Repeat("─", cellW)

	writeRule := func(left, mid, right string) {
		sb.WriteString(left)
		for c := 0; c < visCols; c++ {
			if c > 0 {
				sb.WriteString(mid)
			}
			sb.WriteString(divider)
		}
		sb.WriteString(right)
		sb.WriteByte('\n')
	}

	writeRule("┌", "┬", "┐")
	for vr := 0; vr < visRows; vr++ {
		if vr > 0 {
			writeRule("├", "┼", "┤")
		}
		sb.WriteString("│")
		for vc := 0; vc < visCols; vc++ {
			v := b.At(rowOff+vr, colOff+vc)
			sb.WriteString(renderCell(v, cellW))
			sb.WriteString("│")
		}
		sb.WriteByte('\n')
	}
	writeRule("└", "┴", "┘")

	if rowOff > 0 || colOff > 0 || rowOff+visRows < b.Rows() || colOff+visCols < b.Cols() {
		sb.WriteString(emptyStyle.Render(
			"(showing " + strconv.Itoa(visRows) + "x" + strconv.Itoa(visCols) +
				" window of " + strconv.Itoa(b.Rows()) + "x" + strconv.Itoa(b.Cols()) + " board)"))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// renderCell formats one cell value centered in a fixed-width field.
func renderCell(v, width int) string {
	if v == 0 {
		return emptyStyle.Render(strings.Repeat("·", width))
	}

	s := strconv.Itoa(v)
	if len(s) > width {
		s = s[:width]
	}
	padLeft := (width - len(s)) / 2
	padRight := width - len(s) - padLeft
	return tileStyle(v).Render(strings.Repeat(" ", padLeft) + s + strings.Repeat(" ", padRight))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
