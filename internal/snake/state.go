package snake

import "time"

// stepOutcome is the result of one discrete movement step.
type stepOutcome int

const (
	outcomeMoved stepOutcome = iota
	outcomeAte
	outcomeCollided
)

// step advances the snake by exactly one grid cell.
//
// The pending direction is adopted first; reversal was already rejected at
// assignment time so it is never re-checked here. The head is inserted,
// then the tail is removed unless a growth credit from an earlier food is
// pending, and only then is this tick's food award applied.
func (e *Engine) step(now time.Time) stepOutcome {
	e.dir = e.pendingDir

	head := e.body[0]
	newHead := Cell{X: head.X + e.dir.DX, Y: head.Y + e.dir.DY}

	if !e.board.Contains(newHead) {
		e.over = true
		return outcomeCollided
	}
	if _, hit := e.occupied[newHead]; hit {
		// Moving into the current tail cell also kills: the body is checked
		// before the tail vacates.
		e.over = true
		return outcomeCollided
	}

	e.body = append([]Cell{newHead}, e.body...)
	e.occupied[newHead] = struct{}{}

	// The tail decision consumes credits earned on earlier ticks, so a food
	// award leaves the eating tick's length unchanged and stretches the
	// growth over the following ticks.
	if e.growCredits > 0 {
		e.growCredits--
	} else {
		tail := e.body[len(e.body)-1]
		e.body = e.body[:len(e.body)-1]
		delete(e.occupied, tail)
	}

	outcome := outcomeMoved
	if e.foodContains(newHead) {
		e.score++
		e.growCredits += e.cfg.GrowthPerFood
		e.eatFlashUntil = now.Add(e.cfg.EatFlash)
		e.foodTL = placeFood(e.rng, e.board, e.occupied, e.cfg.FoodCells)
		outcome = outcomeAte
	}

	return outcome
}

// foodContains reports whether the cell lies inside the current food block.
func (e *Engine) foodContains(c Cell) bool {
	k := e.cfg.FoodCells
	return c.X >= e.foodTL.X && c.X < e.foodTL.X+k &&
		c.Y >= e.foodTL.Y && c.Y < e.foodTL.Y+k
}
