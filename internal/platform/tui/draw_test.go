package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/handplay/fingersnake/internal/core"
	"github.com/handplay/fingersnake/internal/snake"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testSnapshot() snake.Snapshot {
	return snake.Snapshot{
		Body:        []snake.Cell{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}},
		FoodTopLeft: snake.Cell{X: 8, Y: 5},
		FoodCells:   2,
		Score:       4,
		Dir:         snake.Direction{DX: 1},
		GridW:       20,
		GridH:       10,
		CellSize:    26,
	}
}

func TestDrawSnapshotPlacesPieces(t *testing.T) {
	snap := testSnapshot()
	s := core.NewScreen(60, 20)
	drawSnapshot(s, snap, 0, testNow)

	r := boardRect(60, snap)
	ox, oy := r.X+1, r.Y+1

	if got := s.Get(ox+5, oy+3); got != 'O' {
		t.Errorf("head cell = %q, want 'O'", got)
	}
	if got := s.Get(ox+4, oy+3); got != 'o' {
		t.Errorf("body cell = %q, want 'o'", got)
	}
	for _, c := range snap.FoodBlock() {
		if got := s.Get(ox+c.X, oy+c.Y); got != '@' {
			t.Errorf("food cell %v = %q, want '@'", c, got)
		}
	}

	// Border corners from the board box.
	if s.Get(r.X, r.Y) != '┌' || s.Get(r.Right()-1, r.Bottom()-1) != '┘' {
		t.Error("board border not drawn")
	}
}

func TestDrawSnapshotHUD(t *testing.T) {
	snap := testSnapshot()
	s := core.NewScreen(60, 20)
	drawSnapshot(s, snap, 12, testNow)

	hud := s.Row(0)
	if !strings.Contains(hud, "Score: 4") {
		t.Errorf("HUD missing score: %q", hud)
	}
	if !strings.Contains(hud, "Length: 3") {
		t.Errorf("HUD missing length: %q", hud)
	}
	if !strings.Contains(hud, "Best: 12") {
		t.Errorf("HUD missing high score: %q", hud)
	}
}

func TestDrawSnapshotEatFlash(t *testing.T) {
	snap := testSnapshot()
	snap.EatFlashUntil = testNow.Add(100 * time.Millisecond)

	s := core.NewScreen(60, 20)
	drawSnapshot(s, snap, 0, testNow)

	r := boardRect(60, snap)
	head := s.GetCell(r.X+1+5, r.Y+1+3)
	if head.Color != core.ColorBrightWhite {
		t.Errorf("expected flashing head color, got %v", head.Color)
	}

	// After the deadline the head returns to its normal color.
	drawSnapshot(s, snap, 0, testNow.Add(200*time.Millisecond))
	head = s.GetCell(r.X+1+5, r.Y+1+3)
	if head.Color != core.ColorBrightGreen {
		t.Errorf("expected normal head color after flash, got %v", head.Color)
	}
}

func TestDrawSnapshotOverlays(t *testing.T) {
	snap := testSnapshot()
	snap.GameOver = true

	s := core.NewScreen(60, 20)
	drawSnapshot(s, snap, 0, testNow)
	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("game over overlay not drawn")
	}

	snap.GameOver = false
	snap.Paused = true
	drawSnapshot(s, snap, 0, testNow)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("pause overlay not drawn")
	}
}

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.SetColored(0, 0, 'x', core.ColorGreen)
	s.Set(7, 2, 'y')

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "x") || !strings.Contains(lines[2], "y") {
		t.Error("cell content missing from rendered output")
	}
}
