package snake

import (
	"math/rand"
	"testing"
)

func TestPlaceFoodAvoidsBody(t *testing.T) {
	b := NewBoard(1280, 720, DefaultConfig())
	rng := rand.New(rand.NewSource(1))

	// A long horizontal body through the middle of the grid.
	occupied := make(map[Cell]struct{})
	for x := 0; x < b.GridW; x++ {
		occupied[Cell{X: x, Y: b.GridH / 2}] = struct{}{}
	}

	for i := 0; i < 200; i++ {
		tl := placeFood(rng, b, occupied, 3)
		for _, c := range foodBlock(tl, 3) {
			if _, hit := occupied[c]; hit {
				t.Fatalf("food block at %v overlaps the body at %v", tl, c)
			}
			if !b.Contains(c) {
				t.Fatalf("food block at %v extends off the board at %v", tl, c)
			}
		}
	}
}

func TestPlaceFoodFallsBackWhenFull(t *testing.T) {
	// Scenario: every possible block position overlaps the body. The
	// placement must fall back to the centered block instead of failing.
	b := NewBoard(1280, 720, DefaultConfig())
	rng := rand.New(rand.NewSource(1))

	occupied := make(map[Cell]struct{})
	for x := 0; x < b.GridW; x++ {
		for y := 0; y < b.GridH; y++ {
			occupied[Cell{X: x, Y: y}] = struct{}{}
		}
	}

	tl := placeFood(rng, b, occupied, 3)
	want := Cell{X: (b.GridW - 3) / 2, Y: (b.GridH - 3) / 2}
	if tl != want {
		t.Errorf("expected centered fallback %v, got %v", want, tl)
	}
}

func TestPlaceFoodOnTinyGrid(t *testing.T) {
	// A grid smaller than the block degrades to the clamped center.
	b := Board{GridW: 2, GridH: 2, CellSize: 26}
	rng := rand.New(rand.NewSource(1))

	tl := placeFood(rng, b, map[Cell]struct{}{}, 3)
	if tl != b.Center() {
		t.Errorf("expected center fallback %v, got %v", b.Center(), tl)
	}
}

func TestFoodBlockCells(t *testing.T) {
	cells := foodBlock(Cell{X: 4, Y: 7}, 3)
	if len(cells) != 9 {
		t.Fatalf("expected 9 cells, got %d", len(cells))
	}
	seen := make(map[Cell]struct{})
	for _, c := range cells {
		if c.X < 4 || c.X > 6 || c.Y < 7 || c.Y > 9 {
			t.Errorf("cell %v outside the 3x3 block", c)
		}
		seen[c] = struct{}{}
	}
	if len(seen) != 9 {
		t.Error("duplicate cells in the block")
	}
}
