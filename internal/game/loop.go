package game

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/platform"
)

// Phase is the driver's lifecycle state.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseRunning
	PhaseShuttingDown
	PhaseTerminated
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseRunning:
		return "running"
	case PhaseShuttingDown:
		return "shutting-down"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Outcome tells why Run returned.
type Outcome int

const (
	OutcomeNone       Outcome = iota // Run never reached the loop
	OutcomeQuit                      // Quit event or Escape
	OutcomeLost                      // Ball reached the bottom under LossTerminate
	OutcomeCanceled                  // Context canceled
	OutcomeFrameLimit                // MaxFrames reached
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeQuit:
		return "quit"
	case OutcomeLost:
		return "lost"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeFrameLimit:
		return "frame-limit"
	default:
		return "unknown"
	}
}

// Driver owns the world and the platform resources and runs the game loop.
type Driver struct {
	cfg       *config.Config
	platform  platform.Platform
	clock     platform.Clock
	logger    *log.Logger
	maxFrames int

	phase  Phase
	world  World
	frames int
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the driver's logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMaxFrames stops the loop after n iterations. Zero means no limit.
func WithMaxFrames(n int) Option {
	return func(d *Driver) {
		d.maxFrames = n
	}
}

// NewDriver creates a driver. Nothing is acquired until Run.
func NewDriver(p platform.Platform, clock platform.Clock, cfg *config.Config, opts ...Option) *Driver {
	d := &Driver{
		cfg:      cfg,
		platform: p,
		clock:    clock,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Phase returns the current lifecycle phase.
func (d *Driver) Phase() Phase {
	return d.phase
}

// World returns a copy of the current world.
func (d *Driver) World() World {
	return d.world
}

// Frames returns the number of completed loop iterations.
func (d *Driver) Frames() int {
	return d.frames
}

// Run acquires the window and renderer, runs the loop until the world stops
// running, the context is canceled or the frame limit is hit, and releases
// everything in reverse acquisition order on every path.
// Window or renderer failures are returned wrapped in platform.ErrInit.
func (d *Driver) Run(ctx context.Context) (outcome Outcome, err error) {
	d.phase = PhaseInitializing
	d.frames = 0

	defer func() { d.phase = PhaseTerminated }()
	defer d.release("platform", d.platform.Shutdown)

	win, err := d.platform.CreateWindow(d.cfg.Window.Title, d.cfg.Window.Width, d.cfg.Window.Height)
	if err != nil {
		return OutcomeNone, fmt.Errorf("%w: create window: %w", platform.ErrInit, err)
	}
	defer d.release("window", win.Destroy)

	renderer, err := d.platform.CreateRenderer(win)
	if err != nil {
		return OutcomeNone, fmt.Errorf("%w: create renderer: %w", platform.ErrInit, err)
	}
	defer d.release("renderer", renderer.Destroy)

	d.world = Setup(d.cfg)
	d.world.LastFrame = d.clock.Now()
	d.phase = PhaseRunning
	d.logger.Debug("game loop started",
		"width", d.cfg.Window.Width,
		"height", d.cfg.Window.Height,
		"fps", d.cfg.Timing.FPS,
		"collision", d.cfg.Rules.Collision,
		"loss", d.cfg.Rules.Loss,
		"input", d.cfg.Input.Policy,
	)

	outcome, err = d.loop(ctx, renderer)

	d.phase = PhaseShuttingDown
	d.logger.Debug("game loop stopped", "outcome", outcome, "frames", d.frames)
	return outcome, err
}

func (d *Driver) loop(ctx context.Context, renderer platform.Renderer) (Outcome, error) {
	outcome := OutcomeQuit

	for d.world.Running {
		if ctx.Err() != nil {
			return OutcomeCanceled, nil
		}
		if d.maxFrames > 0 && d.frames >= d.maxFrames {
			return OutcomeFrameLimit, nil
		}

		ProcessInput(&d.world, d.platform, d.cfg)

		res := Update(&d.world, d.clock, d.cfg)
		if res.Lost {
			if d.cfg.Rules.Loss == config.LossTerminate {
				d.logger.Warn("lost!", "frame", d.frames)
				outcome = OutcomeLost
			} else {
				d.logger.Debug("ball reset", "frame", d.frames)
			}
		}

		if err := Draw(&d.world, renderer, d.cfg); err != nil {
			return outcome, fmt.Errorf("present frame %d: %w", d.frames, err)
		}
		d.frames++
	}

	return outcome, nil
}

// release runs a teardown step and logs failures; teardown keeps going.
func (d *Driver) release(name string, fn func() error) {
	if err := fn(); err != nil {
		d.logger.Warn("release failed", "resource", name, "error", err)
	}
}
