package snake

import (
	"math/rand"
	"time"

	"github.com/handplay/fingersnake/internal/core"
)

// Engine is the pointer-driven snake simulation. It owns all mutable game
// state and is advanced exclusively through Reset and Update; rendering and
// input capture live in external collaborators that exchange immutable
// snapshots and pointer samples with it.
//
// The engine is single-threaded and performs no I/O. A host that renders
// on another goroutine must hand snapshots across the boundary instead of
// sharing the engine.
type Engine struct {
	cfg   Config
	board Board
	rng   *rand.Rand

	// Body cells, head first. The occupied set mirrors the slice for O(1)
	// collision and food-overlap checks; the two are kept in sync on every
	// insert and remove.
	body     []Cell
	occupied map[Cell]struct{}

	dir         Direction
	pendingDir  Direction
	growCredits int
	score       int
	over        bool
	paused      bool

	foodTL Cell

	lastTick      time.Time
	lastSignal    time.Time
	eatFlashUntil time.Time
}

// New builds an engine for a playfield of the given pixel dimensions.
// The configuration is validated here; this is the engine's only error
// path. The returned engine is already reset and ready for Update.
func New(pixelW, pixelH int, cfg Config, seed int64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:   cfg,
		board: NewBoard(pixelW, pixelH, cfg),
		rng:   rand.New(rand.NewSource(seed)),
	}
	e.Reset(time.Now())
	return e, nil
}

// Reset re-initializes the simulation: a 3-cell snake at the board center
// heading right, score zero, fresh food, clocks anchored at now. This is
// the only way out of the terminal game-over state.
func (e *Engine) Reset(now time.Time) {
	e.score = 0
	e.over = false
	e.paused = false
	e.growCredits = 0
	e.eatFlashUntil = time.Time{}
	e.lastTick = now
	e.lastSignal = now

	e.dir = Direction{DX: 1}
	e.pendingDir = e.dir

	c := e.board.Center()
	e.body = []Cell{
		{X: c.X, Y: c.Y},
		{X: c.X - 1, Y: c.Y},
		{X: c.X - 2, Y: c.Y},
	}
	e.occupied = make(map[Cell]struct{}, len(e.body))
	for _, cell := range e.body {
		e.occupied[cell] = struct{}{}
	}

	e.foodTL = placeFood(e.rng, e.board, e.occupied, e.cfg.FoodCells)
}

// Update advances the simulation to now. pointer is the latest pointer
// sample in playfield pixel space, or nil when the tracker had no
// detection this poll.
//
// The driving poll rate is decoupled from the logical tick: Update replays
// floor(elapsed/tick) movement steps, clamped to MaxCatchUpSteps so a
// stalled host cannot teleport the snake across the board. lastTick is
// advanced by whole ticks rather than snapped to now, preserving the tick
// phase across polls.
func (e *Engine) Update(now time.Time, pointer *core.Pixel) Snapshot {
	if e.over {
		return e.Snapshot()
	}

	if pointer != nil {
		e.lastSignal = now
		e.paused = false
		head := e.board.CellCenter(e.body[0])
		if d, ok := resolveDirection(head, *pointer, e.dir, e.cfg.deadzone()); ok {
			e.pendingDir = d
		}
	} else if now.Sub(e.lastSignal) > e.cfg.SignalLossGrace {
		// A single missed detection never pauses; only a sustained loss does.
		e.paused = true
	}

	if !e.paused {
		elapsed := now.Sub(e.lastTick)
		steps := int(elapsed / e.cfg.TickInterval)
		if steps > e.cfg.MaxCatchUpSteps {
			steps = e.cfg.MaxCatchUpSteps
			// Drop the backlog beyond the clamp, keeping sub-tick phase,
			// so a long stall costs at most one clamped burst.
			e.lastTick = now.Add(-(elapsed % e.cfg.TickInterval))
		} else {
			e.lastTick = e.lastTick.Add(time.Duration(steps) * e.cfg.TickInterval)
		}

		for i := 0; i < steps; i++ {
			if e.step(now) == outcomeCollided {
				break
			}
		}
	}

	return e.Snapshot()
}

// Board returns the derived board geometry, for hosts that need to map
// between screen and playfield coordinates.
func (e *Engine) Board() Board {
	return e.board
}

// Config returns the engine's tuning constants.
func (e *Engine) Config() Config {
	return e.cfg
}
