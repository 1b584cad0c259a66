// Package headless is a display-less platform backend. Events come from a
// script, time comes from a manual clock and every presented frame is
// recorded, which makes whole game runs reproducible in tests and in the
// sim command.
package headless

import (
	"errors"
	"time"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/platform"
	"github.com/vovakirdan/paddleball/internal/registry"
)

// Lifecycle call names recorded in Platform.Calls.
const (
	CallCreateWindow    = "create_window"
	CallCreateRenderer  = "create_renderer"
	CallDestroyRenderer = "destroy_renderer"
	CallDestroyWindow   = "destroy_window"
	CallShutdown        = "shutdown"
)

// Platform is a scripted, in-memory platform.
type Platform struct {
	// WindowErr and RendererErr make the corresponding create call fail.
	WindowErr   error
	RendererErr error

	// Calls lists lifecycle operations in the order they happened.
	Calls []string

	events   []core.Event
	window   *Window
	renderer *Recorder
}

var (
	_ platform.Platform = (*Platform)(nil)
	_ platform.Renderer = (*Recorder)(nil)
	_ platform.Clock    = (*Clock)(nil)
)

// New creates a headless platform with an optional initial event script.
func New(events ...core.Event) *Platform {
	return &Platform{events: append([]core.Event(nil), events...)}
}

// Push appends events to the pending queue.
func (p *Platform) Push(events ...core.Event) {
	p.events = append(p.events, events...)
}

// Pending returns the number of queued events.
func (p *Platform) Pending() int {
	return len(p.events)
}

// Renderer returns the renderer created by CreateRenderer, or nil.
func (p *Platform) Renderer() *Recorder {
	return p.renderer
}

// CreateWindow records the call and returns a window handle.
func (p *Platform) CreateWindow(title string, width, height int) (platform.Window, error) {
	p.Calls = append(p.Calls, CallCreateWindow)
	if p.WindowErr != nil {
		return nil, p.WindowErr
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("headless: window size must be positive")
	}
	p.window = &Window{p: p, Title: title, Width: width, Height: height}
	return p.window, nil
}

// CreateRenderer records the call and returns a recording renderer.
func (p *Platform) CreateRenderer(w platform.Window) (platform.Renderer, error) {
	p.Calls = append(p.Calls, CallCreateRenderer)
	if p.RendererErr != nil {
		return nil, p.RendererErr
	}
	if w == nil {
		return nil, errors.New("headless: nil window")
	}
	p.renderer = &Recorder{p: p}
	return p.renderer, nil
}

// PollEvent pops the next scripted event.
func (p *Platform) PollEvent() (core.Event, bool) {
	if len(p.events) == 0 {
		return core.Event{}, false
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev, true
}

// Shutdown records the call.
func (p *Platform) Shutdown() error {
	p.Calls = append(p.Calls, CallShutdown)
	return nil
}

// Window is the headless window handle.
type Window struct {
	p      *Platform
	Title  string
	Width  int
	Height int
}

// Destroy records the call.
func (w *Window) Destroy() error {
	w.p.Calls = append(w.p.Calls, CallDestroyWindow)
	return nil
}

// FilledRect is one FillRect call.
type FilledRect struct {
	Rect  core.Rect
	Color core.Color
}

// Frame is the draw-call list of one presented frame.
type Frame struct {
	Background core.Color
	Rects      []FilledRect
}

// Recorder is a renderer that keeps the draw calls of the frame being built
// and of the last presented frame.
type Recorder struct {
	p         *Platform
	current   Frame
	last      Frame
	presented int
	cleared   bool
}

// Clear starts a new frame.
func (r *Recorder) Clear(c core.Color) {
	r.current = Frame{Background: c}
	r.cleared = true
}

// FillRect appends a draw call to the current frame.
func (r *Recorder) FillRect(rect core.Rect, c core.Color) {
	r.current.Rects = append(r.current.Rects, FilledRect{Rect: rect, Color: c})
}

// Present publishes the current frame.
func (r *Recorder) Present() error {
	if !r.cleared {
		return errors.New("headless: present without clear")
	}
	r.last = r.current
	r.current = Frame{}
	r.cleared = false
	r.presented++
	return nil
}

// Destroy records the call.
func (r *Recorder) Destroy() error {
	r.p.Calls = append(r.p.Calls, CallDestroyRenderer)
	return nil
}

// Last returns the last presented frame.
func (r *Recorder) Last() Frame {
	return r.last
}

// Presented returns the number of presented frames.
func (r *Recorder) Presented() int {
	return r.presented
}

// Clock is a manual clock. Time only moves through Sleep and Advance, so a
// paced loop advances exactly one frame budget per iteration.
type Clock struct {
	now   time.Duration
	slept []time.Duration
}

// NewClock creates a clock at t=0.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current manual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Sleep advances the clock by d and records the request.
func (c *Clock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now += d
}

// Advance moves the clock forward without recording a sleep.
func (c *Clock) Advance(d time.Duration) {
	c.now += d
}

// Sleeps returns every duration passed to Sleep.
func (c *Clock) Sleeps() []time.Duration {
	return c.slept
}

func init() {
	registry.Register("headless", "no display; scripted input and a recording renderer", func(platform.Options) platform.Platform {
		return New()
	})
}
