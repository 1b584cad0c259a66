// Package termkeys turns the press-only key stream of a terminal into the
// press/release pairs the game loop expects.
//
// Terminals report a held key as a burst of auto-repeated presses and never
// report the release. A Tracker treats an arrow key as held until no repeat
// has arrived for the release timeout, or until the opposite arrow is
// pressed, and then emits the matching key-up event. The first repeat comes
// after the keyboard's longer initial delay, so a fresh press is held for the
// repeat delay instead.
package termkeys

import (
	"time"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Defaults used when a Tracker is created with non-positive timeouts.
const (
	DefaultRepeatDelay = 600 * time.Millisecond
	DefaultRelease     = 150 * time.Millisecond
)

// Tracker synthesizes key-up events for the horizontal arrow keys.
// It is not safe for concurrent use; backends drive it from PollEvent.
type Tracker struct {
	delay    time.Duration
	release  time.Duration
	held     core.Key
	holding  bool
	repeated bool // an auto-repeat of the held key has arrived
	last     time.Duration
}

// New creates a tracker. A fresh press is held for delay, and once the key
// auto-repeats it is released after release without a repeat. The delay is
// never shorter than the release timeout.
func New(delay, release time.Duration) *Tracker {
	if release <= 0 {
		release = DefaultRelease
	}
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	return &Tracker{delay: max(delay, release), release: release}
}

// RepeatDelay returns how long a press is held before its first repeat.
func (t *Tracker) RepeatDelay() time.Duration {
	return t.delay
}

// Release returns the timeout after which a held key is considered released.
func (t *Tracker) Release() time.Duration {
	return t.release
}

// Held reports the arrow key currently considered held.
func (t *Tracker) Held() (core.Key, bool) {
	return t.held, t.holding
}

// Press records a key press at now and returns the events to deliver, in
// order. An auto-repeat of the held key only refreshes its deadline.
func (t *Tracker) Press(k core.Key, now time.Duration) []core.Event {
	if k != core.KeyLeft && k != core.KeyRight {
		return []core.Event{core.KeyDown(k)}
	}

	if t.holding && t.held == k {
		t.last, t.repeated = now, true
		return nil
	}

	var out []core.Event
	if t.holding {
		out = append(out, core.KeyUp(t.held))
	}
	t.held, t.holding, t.repeated, t.last = k, true, false, now
	return append(out, core.KeyDown(k))
}

// Expire returns the key-up event for a held key whose release timeout has
// passed at now, or nil.
func (t *Tracker) Expire(now time.Duration) []core.Event {
	if !t.holding {
		return nil
	}
	timeout := t.delay
	if t.repeated {
		timeout = t.release
	}
	if now-t.last < timeout {
		return nil
	}
	t.holding = false
	return []core.Event{core.KeyUp(t.held)}
}

// Reset forgets any held key without emitting events.
func (t *Tracker) Reset() {
	t.holding, t.repeated = false, false
}
