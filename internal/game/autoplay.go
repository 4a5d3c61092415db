package game

import (
	"errors"
	"math/bits"
)

// ErrNoMove is returned by the policy when no direction moves any tile.
var ErrNoMove = errors.New("no move available")

// probeOrder fixes the tie-break preference between equally scored
// directions, keeping the policy deterministic.
var probeOrder = [4]Direction{DirLeft, DirUp, DirRight, DirDown}

// Policy selects moves for autoplay with a greedy one-ply heuristic.
// Each candidate direction is simulated on a throwaway board copy and
// scored; the cost per decision is O(4 * rows * cols), which keeps
// autoplay responsive on boards with many thousands of cells.
type Policy struct {
	EmptyWeight  float64 // reward per empty cell after the move
	PointsWeight float64 // reward per point the move gains
	MonoWeight   float64 // penalty weight for non-monotonic lines
}

// NewPolicy returns a policy with the default weights. Empty cells
// dominate because they delay loss; merge points and monotonicity
// refine between directions that free the same space.
func NewPolicy() *Policy {
	return &Policy{
		EmptyWeight:  4.0,
		PointsWeight: 1.0,
		MonoWeight:   0.5,
	}
}

// Choose returns the best direction for the given board without
// mutating it. Ties resolve in the fixed order Left, Up, Right, Down,
// so identical boards always yield identical choices.
func (p *Policy) Choose(b *Board) (Direction, error) {
	var (
		bestDir   Direction
		bestScore float64
		found     bool
	)

	for _, dir := range probeOrder {
		c := b.Clone()
		points, moved := c.ApplyDirection(dir)
		if !moved {
			continue
		}

		score := p.EmptyWeight*float64(c.CountEmpty()) +
			p.PointsWeight*float64(points) -
			p.MonoWeight*monotonicityPenalty(c)

		// Strict comparison preserves the probe order on ties.
		if !found || score > bestScore {
			bestDir = dir
			bestScore = score
			found = true
		}
	}

	if !found {
		return 0, ErrNoMove
	}
	return bestDir, nil
}

// monotonicityPenalty measures how far the board is from having every
// line sorted toward one edge, using tile ranks (log2). For each line
// the penalties of both orientations are computed and the smaller one
// counts, so a board sorted toward either edge scores zero. O(rows*cols).
func monotonicityPenalty(b *Board) float64 {
	total := 0

	for r := 0; r < b.Rows(); r++ {
		asc, desc := 0, 0
		for c := 1; c < b.Cols(); c++ {
			prev, cur := rank(b.At(r, c-1)), rank(b.At(r, c))
			if prev > cur {
				desc += prev - cur
			} else {
				asc += cur - prev
			}
		}
		total += min(asc, desc)
	}

	for c := 0; c < b.Cols(); c++ {
		asc, desc := 0, 0
		for r := 1; r < b.Rows(); r++ {
			prev, cur := rank(b.At(r-1, c)), rank(b.At(r, c))
			if prev > cur {
				desc += prev - cur
			} else {
				asc += cur - prev
			}
		}
		total += min(asc, desc)
	}

	return float64(total)
}

// rank returns log2 of a tile value, 0 for empty cells.
func rank(v int) int {
	if v <= 0 {
		return 0
	}
	return bits.Len(uint(v)) - 1
}
