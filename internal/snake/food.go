package snake

import (
	"math/rand"

	"github.com/handplay/fingersnake/internal/core"
)

// foodBlock lists the cells covered by a k-by-k food block anchored at tl.
func foodBlock(tl Cell, k int) []Cell {
	cells := make([]Cell, 0, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			cells = append(cells, Cell{X: tl.X + i, Y: tl.Y + j})
		}
	}
	return cells
}

// blockClearOf reports whether no cell of the block anchored at tl is in
// the occupied set.
func blockClearOf(tl Cell, k int, occupied map[Cell]struct{}) bool {
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if _, taken := occupied[Cell{X: tl.X + i, Y: tl.Y + j}]; taken {
				return false
			}
		}
	}
	return true
}

// placeFood picks a top-left anchor for a new k-by-k food block, uniformly
// at random among all positions that keep the block fully on the board and
// off the snake body.
//
// When no valid position exists (grid too small for the block, or the
// board nearly filled by the snake) it falls back to the centered block
// and accepts the overlap. The game renders oddly for a tick in that case
// but never errors.
func placeFood(rng *rand.Rand, b Board, occupied map[Cell]struct{}, k int) Cell {
	if b.GridW < k || b.GridH < k {
		c := b.Center()
		return Cell{X: core.Max(0, c.X), Y: core.Max(0, c.Y)}
	}

	var candidates []Cell
	for x := 0; x <= b.GridW-k; x++ {
		for y := 0; y <= b.GridH-k; y++ {
			tl := Cell{X: x, Y: y}
			if blockClearOf(tl, k, occupied) {
				candidates = append(candidates, tl)
			}
		}
	}

	if len(candidates) == 0 {
		return Cell{X: core.Max(0, (b.GridW-k)/2), Y: core.Max(0, (b.GridH-k)/2)}
	}
	return candidates[rng.Intn(len(candidates))]
}
