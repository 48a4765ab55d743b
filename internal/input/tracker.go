// Package input adapts event-driven pointer feeds (terminal mouse motion,
// a hand tracker, a test script) to the poll-style optional sample the
// engine consumes.
package input

import (
	"time"

	"github.com/handplay/fingersnake/internal/core"
)

// Tracker turns discrete pointer events into a polled position with a
// freshness window. Event sources only report when the pointer moves;
// without a TTL a motionless pointer would read as "no detection" and
// pause the game.
type Tracker struct {
	ttl    time.Duration
	pos    core.Pixel
	seenAt time.Time
	seen   bool
}

// NewTracker creates a tracker whose observations stay current for ttl.
func NewTracker(ttl time.Duration) *Tracker {
	return &Tracker{ttl: ttl}
}

// Observe records a pointer position seen at now.
func (t *Tracker) Observe(p core.Pixel, now time.Time) {
	t.pos = p
	t.seenAt = now
	t.seen = true
}

// Clear forgets the pointer, as when the tracking source reports an
// explicit loss.
func (t *Tracker) Clear() {
	t.seen = false
}

// Current returns the last observed position if it is still fresh at now.
func (t *Tracker) Current(now time.Time) (core.Pixel, bool) {
	if !t.seen || now.Sub(t.seenAt) > t.ttl {
		return core.Pixel{}, false
	}
	return t.pos, true
}
