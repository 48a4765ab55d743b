package snake

import (
	"github.com/handplay/fingersnake/internal/core"
)

// Direction is a unit movement vector. The snake moves in 8 directions
// (cardinals and diagonals); the zero value means "no movement yet".
type Direction struct {
	DX, DY int
}

// Opposite returns the exact negation of the direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsZero reports whether the direction carries no movement.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

func (d Direction) String() string {
	names := map[Direction]string{
		{1, 0}: "right", {-1, 0}: "left", {0, 1}: "down", {0, -1}: "up",
		{1, 1}: "down-right", {1, -1}: "up-right",
		{-1, 1}: "down-left", {-1, -1}: "up-left",
	}
	if s, ok := names[d]; ok {
		return s
	}
	return "none"
}

// resolveDirection quantizes a continuous pointer position into a discrete
// direction relative to the snake's head center.
//
// Inside the deadzone on both axes nothing changes, which is the hysteresis
// that keeps jitter near the head from flipping the pending direction. Each
// axis is then classified into {-1, 0, +1} independently: both axes tripped
// gives a diagonal, otherwise the dominant axis gives a cardinal. A
// candidate that exactly reverses the current direction is rejected so a
// noisy sample can never cause an instant 180-degree self collision.
//
// The second return value is false when the pending direction should be
// left untouched.
func resolveDirection(head, pointer core.Pixel, current Direction, deadzone float64) (Direction, bool) {
	dx := pointer.X - head.X
	dy := pointer.Y - head.Y

	if core.AbsF(dx) < deadzone && core.AbsF(dy) < deadzone {
		return Direction{}, false
	}

	sx := axisSign(dx, deadzone)
	sy := axisSign(dy, deadzone)

	var cand Direction
	switch {
	case sx != 0 && sy != 0:
		cand = Direction{DX: sx, DY: sy}
	case core.AbsF(dx) >= core.AbsF(dy):
		cand = Direction{DX: sign(dx)}
	default:
		cand = Direction{DY: sign(dy)}
	}

	if cand == current.Opposite() {
		return Direction{}, false
	}
	return cand, true
}

// axisSign classifies a single axis displacement against the deadzone.
func axisSign(v, deadzone float64) int {
	if core.AbsF(v) < deadzone {
		return 0
	}
	return sign(v)
}

func sign(v float64) int {
	if v > 0 {
		return 1
	}
	return -1
}
