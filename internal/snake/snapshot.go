package snake

import "time"

// Snapshot is the read-only view of the simulation handed to renderers
// after each Update. It is a value copy: hosts may keep it, send it across
// goroutines, or diff it against earlier snapshots without touching the
// engine.
type Snapshot struct {
	Body        []Cell // head first
	FoodTopLeft Cell
	FoodCells   int
	Score       int
	GameOver    bool
	Paused      bool
	Dir         Direction

	// EatFlashUntil is a renderer hint: draw the feeding flash while the
	// renderer's clock is before this instant. Zero when nothing was eaten.
	EatFlashUntil time.Time

	GridW, GridH int
	CellSize     int
}

// Snapshot captures the current state. The body slice is copied so later
// engine steps cannot mutate what a renderer is holding.
func (e *Engine) Snapshot() Snapshot {
	body := make([]Cell, len(e.body))
	copy(body, e.body)

	return Snapshot{
		Body:          body,
		FoodTopLeft:   e.foodTL,
		FoodCells:     e.cfg.FoodCells,
		Score:         e.score,
		GameOver:      e.over,
		Paused:        e.paused,
		Dir:           e.dir,
		EatFlashUntil: e.eatFlashUntil,
		GridW:         e.board.GridW,
		GridH:         e.board.GridH,
		CellSize:      e.board.CellSize,
	}
}

// Head returns the head cell, or the zero cell for an empty snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

// FoodBlock lists the cells covered by the current food block.
func (s Snapshot) FoodBlock() []Cell {
	return foodBlock(s.FoodTopLeft, s.FoodCells)
}
