package snake

import (
	"fmt"
	"time"
)

// Config holds every tuning constant of the engine. Values are plain Go
// types so the engine stays independent of any config file format; the
// config package maps its YAML schema onto this struct.
type Config struct {
	// Board layout, in playfield pixels.
	MarginX         int // left/right margin
	MarginTop       int // top margin
	HandSpaceBottom int // extra bottom space reserved so the hand region does not occlude the board
	CellSize        int // pixels per grid cell

	// Food.
	FoodCells     int           // food block edge length, in cells
	GrowthPerFood int           // grow credits awarded per food eaten
	EatFlash      time.Duration // how long the renderer should flash after eating

	// Timing.
	TickInterval    time.Duration // logical movement interval
	SignalLossGrace time.Duration // missing-pointer window before pausing
	MaxCatchUpSteps int           // upper bound on ticks replayed per update

	// Input.
	DeadzoneCells float64 // deadzone radius as a fraction of the cell size
}

// DefaultConfig returns the engine defaults, matching the tuning the game
// shipped with: 26 px cells, 120 ms ticks, a 3x3 food block worth two
// growth credits, and a 600 ms grace window for lost hand tracking.
func DefaultConfig() Config {
	return Config{
		MarginX:         70,
		MarginTop:       70,
		HandSpaceBottom: 150,
		CellSize:        26,

		FoodCells:     3,
		GrowthPerFood: 2,
		EatFlash:      350 * time.Millisecond,

		TickInterval:    120 * time.Millisecond,
		SignalLossGrace: 600 * time.Millisecond,
		MaxCatchUpSteps: 3,

		DeadzoneCells: 0.55,
	}
}

// Validate rejects contradictory construction parameters. This is the only
// point where the engine reports an error; once constructed it absorbs all
// degenerate inputs by clamping or fallback.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("snake: cell size must be positive, got %d", c.CellSize)
	}
	if c.MarginX < 0 || c.MarginTop < 0 || c.HandSpaceBottom < 0 {
		return fmt.Errorf("snake: margins must be non-negative, got x=%d top=%d bottom-space=%d",
			c.MarginX, c.MarginTop, c.HandSpaceBottom)
	}
	if c.FoodCells <= 0 {
		return fmt.Errorf("snake: food block size must be positive, got %d", c.FoodCells)
	}
	if c.GrowthPerFood < 0 {
		return fmt.Errorf("snake: growth per food must be non-negative, got %d", c.GrowthPerFood)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("snake: tick interval must be positive, got %v", c.TickInterval)
	}
	if c.SignalLossGrace <= 0 {
		return fmt.Errorf("snake: signal loss grace must be positive, got %v", c.SignalLossGrace)
	}
	if c.MaxCatchUpSteps <= 0 {
		return fmt.Errorf("snake: max catch-up steps must be positive, got %d", c.MaxCatchUpSteps)
	}
	if c.DeadzoneCells <= 0 {
		return fmt.Errorf("snake: deadzone must be positive, got %v", c.DeadzoneCells)
	}
	return nil
}

// deadzone returns the deadzone radius in pixels.
func (c Config) deadzone() float64 {
	return float64(c.CellSize) * c.DeadzoneCells
}
