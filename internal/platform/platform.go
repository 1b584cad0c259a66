// Package platform defines the windowing and graphics service the game loop
// consumes. Backends (terminal, tcell, headless) implement these interfaces
// and register themselves with the registry package.
package platform

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/core"
)

// ErrInit marks a failure to create the window or renderer.
// The loop driver wraps backend errors with it; check with errors.Is.
var ErrInit = errors.New("platform initialization failed")

// Platform is the process-wide windowing service.
type Platform interface {
	// CreateWindow opens the output surface for a width x height pixel world.
	CreateWindow(title string, width, height int) (Window, error)

	// CreateRenderer attaches a renderer to an open window.
	CreateRenderer(w Window) (Renderer, error)

	// PollEvent returns the next pending input event without blocking.
	// ok is false when nothing is pending.
	PollEvent() (ev core.Event, ok bool)

	// Shutdown releases whatever the platform still holds.
	// Safe to call after a failed CreateWindow.
	Shutdown() error
}

// Window is an open output surface.
type Window interface {
	Destroy() error
}

// Renderer issues draw calls against a window. Coordinates are world pixels.
type Renderer interface {
	Clear(c core.Color)
	FillRect(r core.Rect, c core.Color)
	Present() error
	Destroy() error
}

// Clock is a monotonic time source with a blocking sleep.
type Clock interface {
	// Now returns the time elapsed since the clock started.
	Now() time.Duration
	Sleep(d time.Duration)
}

// Options configures a backend at construction time.
type Options struct {
	Logger *log.Logger
	// KeyRelease is the auto-repeat timeout after which terminal backends
	// synthesize a key-up event.
	KeyRelease time.Duration
	// RepeatDelay is how long a fresh press counts as held before the
	// first auto-repeat arrives.
	RepeatDelay time.Duration
}

// SystemClock measures wall time from its construction.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the monotonic time elapsed since the clock started.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// Sleep blocks the calling goroutine for d.
func (c *SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
