package tui

import (
	"fmt"
	"time"

	"github.com/handplay/fingersnake/internal/core"
	"github.com/handplay/fingersnake/internal/snake"
)

const hudHeight = 2

// boardRect returns the screen rectangle the board occupies: the grid plus
// a one-character border, centered horizontally below the HUD.
func boardRect(screenW int, snap snake.Snapshot) core.Rect {
	w := snap.GridW + 2
	h := snap.GridH + 2
	x := core.Max(0, (screenW-w)/2)
	return core.NewRect(x, hudHeight, w, h)
}

// drawSnapshot renders an engine snapshot into the screen buffer.
func drawSnapshot(dst *core.Screen, snap snake.Snapshot, highScore int, now time.Time) {
	dst.Clear()

	drawHUD(dst, snap, highScore)

	r := boardRect(dst.Width(), snap)
	dst.DrawBoxColored(r, core.ColorGray)

	// Grid cell (cx, cy) maps to screen (r.X+1+cx, r.Y+1+cy).
	ox, oy := r.X+1, r.Y+1

	for _, c := range snap.FoodBlock() {
		dst.SetColored(ox+c.X, oy+c.Y, '@', core.ColorBrightRed)
	}

	flash := now.Before(snap.EatFlashUntil)
	for i, seg := range snap.Body {
		switch {
		case i == 0 && flash:
			dst.SetColored(ox+seg.X, oy+seg.Y, 'O', core.ColorBrightWhite)
		case i == 0:
			dst.SetColored(ox+seg.X, oy+seg.Y, 'O', core.ColorBrightGreen)
		default:
			dst.SetColored(ox+seg.X, oy+seg.Y, 'o', core.ColorGreen)
		}
	}

	switch {
	case snap.GameOver:
		drawOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d — press R to restart", snap.Score))
	case snap.Paused:
		drawOverlay(dst, "Pointer lost — PAUSED", "Move the pointer to continue")
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, snap snake.Snapshot, highScore int) {
	hud := fmt.Sprintf(" Finger Snake — Score: %d  Length: %d", snap.Score, len(snap.Body))
	if highScore > 0 {
		hud += fmt.Sprintf("  Best: %d", highScore)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawOverlay draws a centered two-line message box over the board.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
