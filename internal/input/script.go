package input

import (
	"time"

	"github.com/handplay/fingersnake/internal/core"
)

// Waypoint is one entry of a scripted pointer feed: from At after the
// script start, the pointer holds Pos (or reads as absent when Present is
// false) until the next waypoint takes over.
type Waypoint struct {
	At      time.Duration
	Pos     core.Pixel
	Present bool
}

// Script replays a fixed pointer trajectory against synthetic timestamps.
// Used by tests and demos to drive the engine deterministically.
// Waypoints must be ordered by At.
type Script struct {
	start  time.Time
	points []Waypoint
}

// NewScript creates a script anchored at start.
func NewScript(start time.Time, points []Waypoint) *Script {
	return &Script{start: start, points: points}
}

// Sample returns the scripted pointer state at now. Before the first
// waypoint the pointer is absent.
func (s *Script) Sample(now time.Time) (core.Pixel, bool) {
	elapsed := now.Sub(s.start)

	var cur *Waypoint
	for i := range s.points {
		if s.points[i].At > elapsed {
			break
		}
		cur = &s.points[i]
	}

	if cur == nil || !cur.Present {
		return core.Pixel{}, false
	}
	return cur.Pos, true
}
