package snake

import (
	"github.com/handplay/fingersnake/internal/core"
)

// minGridDim is the smallest grid the engine will play on. Smaller pixel
// budgets are clamped up rather than rejected.
const minGridDim = 8

// Cell is a 2D grid coordinate, 0-indexed from the board's top-left.
type Cell struct {
	X, Y int
}

// Board is the fixed logical grid derived from a pixel-area budget and
// margins. It is immutable once built; all methods are pure.
type Board struct {
	GridW, GridH int
	CellSize     int

	pixelW, pixelH int
	marginX        int
	marginTop      int
	marginBottom   int
}

// NewBoard derives the grid from the playfield pixel budget. The bottom
// margin is deliberately larger than the top one: the strip below the board
// is reserved so the on-screen hand region does not occlude it. Degenerate
// budgets are clamped, never rejected.
func NewBoard(pixelW, pixelH int, cfg Config) Board {
	usableW := core.Max(1, pixelW-2*cfg.MarginX)
	usableH := core.Max(1, pixelH-cfg.MarginTop-(cfg.MarginX+cfg.HandSpaceBottom))

	return Board{
		GridW:        core.Max(minGridDim, usableW/cfg.CellSize),
		GridH:        core.Max(minGridDim, usableH/cfg.CellSize),
		CellSize:     cfg.CellSize,
		pixelW:       pixelW,
		pixelH:       pixelH,
		marginX:      cfg.MarginX,
		marginTop:    cfg.MarginTop,
		marginBottom: cfg.MarginX + cfg.HandSpaceBottom,
	}
}

// Contains reports whether the cell lies inside the grid.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < b.GridW && c.Y < b.GridH
}

// Origin returns the pixel position of the board's top-left corner,
// centered inside the usable area (vertical centering excludes the
// reserved bottom hand space).
func (b Board) Origin() (int, int) {
	usableW := b.pixelW - 2*b.marginX
	usableH := b.pixelH - b.marginTop - b.marginBottom

	bw := b.GridW * b.CellSize
	bh := b.GridH * b.CellSize

	ox := b.marginX + core.Max(0, (usableW-bw)/2)
	oy := b.marginTop + core.Max(0, (usableH-bh)/2)
	return ox, oy
}

// CellCenter returns the pixel center of a grid cell.
func (b Board) CellCenter(c Cell) core.Pixel {
	ox, oy := b.Origin()
	return core.Pixel{
		X: float64(ox) + (float64(c.X)+0.5)*float64(b.CellSize),
		Y: float64(oy) + (float64(c.Y)+0.5)*float64(b.CellSize),
	}
}

// Center returns the grid cell closest to the board's geometric center.
func (b Board) Center() Cell {
	return Cell{X: b.GridW / 2, Y: b.GridH / 2}
}
