// Package game implements the 2048 engine: the board, the move/merge
// algorithm, win/loss tracking and the autoplay policy. It contains no
// terminal dependencies so the whole engine is testable headless.
package game

import (
	"math/rand"
	"slices"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// spawnFourProb is the probability that a spawned tile is a 4 instead of a 2.
const spawnFourProb = 0.1

type axis int

const (
	axisRow axis = iota
	axisCol
)

// moveTable maps each direction onto the single compress routine:
// which axis to extract lines along, and whether the line is walked
// from the far end. Down and Right compress toward the trailing edge.
var moveTable = [4]struct {
	axis     axis
	reversed bool
}{
	DirUp:    {axisCol, false},
	DirDown:  {axisCol, true},
	DirLeft:  {axisRow, false},
	DirRight: {axisRow, true},
}

// Board is a rows x cols grid of tile values stored flat, row-major.
// A cell holds 0 when empty, otherwise a power of 2 >= 2. Lines are
// extracted as owned copies so a line snapshot never aliases the grid.
type Board struct {
	rows  int
	cols  int
	cells []int
}

// NewBoard creates an empty board. Dimensions are validated by the
// engine; NewBoard itself assumes rows and cols are positive.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// At returns the value at (row, col).
func (b *Board) At(row, col int) int {
	return b.cells[row*b.cols+col]
}

// Set places a value at (row, col).
func (b *Board) Set(row, col, v int) {
	b.cells[row*b.cols+col] = v
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: slices.Clone(b.cells),
	}
}

// Equal reports whether two boards have identical dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	return b.rows == other.rows && b.cols == other.cols &&
		slices.Equal(b.cells, other.cells)
}

// Row returns an owned copy of the given row.
func (b *Board) Row(row int) []int {
	line := make([]int, b.cols)
	copy(line, b.cells[row*b.cols:(row+1)*b.cols])
	return line
}

// Col returns an owned copy of the given column.
func (b *Board) Col(col int) []int {
	line := make([]int, b.rows)
	for r := range line {
		line[r] = b.cells[r*b.cols+col]
	}
	return line
}

// SetRow writes a line back into the given row.
func (b *Board) SetRow(row int, line []int) {
	copy(b.cells[row*b.cols:(row+1)*b.cols], line)
}

// SetCol writes a line back into the given column.
func (b *Board) SetCol(col int, line []int) {
	for r, v := range line {
		b.cells[r*b.cols+col] = v
	}
}

// CompressLine applies gravity and merging to a single line, already
// oriented in the direction of travel (index 0 is the wall). Each tile
// merges at most once per call: a tile produced by a merge is locked
// and cannot absorb the next equal tile, so [2,2,2,2] becomes [4,4,0,0]
// for 8 points, never [8,0,0,0].
func CompressLine(line []int) (result []int, points int, moved bool) {
	result = make([]int, len(line))
	write := 0
	lastMerge := -1

	for _, v := range line {
		if v == 0 {
			continue
		}
		if write > 0 && result[write-1] == v && lastMerge != write-1 {
			result[write-1] = v * 2
			points += v * 2
			lastMerge = write - 1
		} else {
			result[write] = v
			write++
		}
	}

	return result, points, !slices.Equal(result, line)
}

// reverseLine reverses a line in place.
func reverseLine(line []int) {
	for i, j := 0, len(line)-1; i < j; i, j = i+1, j-1 {
		line[i], line[j] = line[j], line[i]
	}
}

// ApplyDirection compresses every line of the board in the given
// direction. Returns the total points gained from merges and whether
// any tile moved. When no tile moved the board is left untouched.
func (b *Board) ApplyDirection(dir Direction) (points int, moved bool) {
	m := moveTable[dir]

	count := b.rows
	if m.axis == axisCol {
		count = b.cols
	}

	for i := 0; i < count; i++ {
		var line []int
		if m.axis == axisRow {
			line = b.Row(i)
		} else {
			line = b.Col(i)
		}
		if m.reversed {
			reverseLine(line)
		}

		result, pts, lineMoved := CompressLine(line)
		points += pts
		if !lineMoved {
			continue
		}
		moved = true

		if m.reversed {
			reverseLine(result)
		}
		if m.axis == axisRow {
			b.SetRow(i, result)
		} else {
			b.SetCol(i, result)
		}
	}

	return points, moved
}

// SpawnTile places a 2 (90%) or a 4 (10%) in a uniformly chosen empty
// cell, drawing from the supplied random source. Returns false when the
// board is full; callers fold that into the next stuck check.
func (b *Board) SpawnTile(rng *rand.Rand) bool {
	empty := b.emptyIndices()
	if len(empty) == 0 {
		return false
	}

	idx := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < spawnFourProb {
		value = 4
	}
	b.cells[idx] = value
	return true
}

// emptyIndices returns the flat indices of all empty cells.
func (b *Board) emptyIndices() []int {
	var empty []int
	for i, v := range b.cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

// HasEmptyCell reports whether at least one cell is empty.
func (b *Board) HasEmptyCell() bool {
	return slices.Contains(b.cells, 0)
}

// CountEmpty returns the number of empty cells.
func (b *Board) CountEmpty() int {
	n := 0
	for _, v := range b.cells {
		if v == 0 {
			n++
		}
	}
	return n
}

// MaxValue returns the highest tile value on the board, or 0 when the
// board is empty.
func (b *Board) MaxValue() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// IsStuck reports whether no legal move exists in any direction. This
// is the authoritative loss condition: a full board can still have a
// legal merge, and an almost-empty 1x1 board has no legal move at all.
// Each direction is probed on a throwaway copy.
func (b *Board) IsStuck() bool {
	for dir := DirUp; dir <= DirRight; dir++ {
		if _, moved := b.Clone().ApplyDirection(dir); moved {
			return false
		}
	}
	return true
}
