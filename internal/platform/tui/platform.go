// Package tui is the Bubble Tea terminal backend. The game loop stays in
// charge: the Bubble Tea program runs on its own goroutine, forwards key and
// resize messages into a buffered channel that PollEvent drains without
// blocking, and displays the frames Present sends it.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/platform"
	"github.com/vovakirdan/paddleball/internal/platform/grid"
	"github.com/vovakirdan/paddleball/internal/platform/termkeys"
	"github.com/vovakirdan/paddleball/internal/registry"
)

// helpRows is the number of terminal rows kept for the help line.
const helpRows = 1

const inputBuffer = 64

// Platform runs the game inside a Bubble Tea program.
type Platform struct {
	logger  *log.Logger
	keys    KeyMap
	tracker *termkeys.Tracker
	styles  *Styles
	start   time.Time

	input    chan inputMsg
	program  *tea.Program
	exited   chan struct{} // closed when the program returns
	exitErr  error
	quitSent bool
	reported bool // the program's failure was returned by Present

	window   *Window
	renderer *grid.Renderer
	pending  []core.Event

	// Overridable for tests.
	programOptions []tea.ProgramOption
	terminalSize   func() (cols, rows int, err error)
}

// Window is the terminal the program draws on.
type Window struct {
	p      *Platform
	Title  string
	Width  int // world pixels
	Height int
}

var _ platform.Platform = (*Platform)(nil)

// New creates a terminal backend.
func New(opts platform.Options) *Platform {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Platform{
		logger:  logger.WithPrefix("tui"),
		keys:    DefaultKeyMap(),
		tracker: termkeys.New(opts.RepeatDelay, opts.KeyRelease),
		styles:  NewStyles(),
		programOptions: []tea.ProgramOption{
			tea.WithAltScreen(),
		},
		terminalSize: stdoutSize,
	}
}

func stdoutSize() (int, int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("stdout is not a terminal")
	}
	return term.GetSize(fd)
}

// CreateWindow starts the Bubble Tea program and waits until its event loop
// runs. A program that cannot take over the terminal fails here.
func (p *Platform) CreateWindow(title string, width, height int) (platform.Window, error) {
	if p.program != nil {
		return nil, errors.New("tui: window already open")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tui: invalid window size %dx%d", width, height)
	}
	cols, rows, err := p.terminalSize()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	p.start = time.Now()
	p.quitSent, p.reported = false, false
	p.input = make(chan inputMsg, inputBuffer)
	p.exited = make(chan struct{})
	ready := make(chan struct{})
	p.program = tea.NewProgram(NewModel(title, p.input, ready, p.keys), p.programOptions...)

	go func() {
		_, err := p.program.Run()
		p.exitErr = err
		close(p.exited)
	}()

	select {
	case <-ready:
	case <-p.exited:
		select {
		case <-ready:
		default:
			p.program = nil
			if p.exitErr != nil {
				return nil, fmt.Errorf("tui: start program: %w", p.exitErr)
			}
			return nil, errors.New("tui: program exited during startup")
		}
	}

	p.window = &Window{p: p, Title: title, Width: width, Height: height}
	p.renderer = grid.NewRenderer(width, height, cols, max(rows-helpRows, 1), p.present, nil)
	p.logger.Debug("program started", "cols", cols, "rows", rows)
	return p.window, nil
}

// CreateRenderer returns the grid renderer bound to the program.
func (p *Platform) CreateRenderer(w platform.Window) (platform.Renderer, error) {
	if w == nil || w != platform.Window(p.window) {
		return nil, errors.New("tui: unknown window")
	}
	return p.renderer, nil
}

func (p *Platform) present(s *core.Screen) error {
	select {
	case <-p.exited:
		if err := p.failure(); err != nil {
			p.reported = true
			return err
		}
		return nil
	default:
	}
	p.program.Send(frameMsg(p.styles.RenderScreen(s)))
	return nil
}

// PollEvent returns the next pending event without blocking.
func (p *Platform) PollEvent() (core.Event, bool) {
	if len(p.pending) == 0 {
		p.fill()
	}
	if len(p.pending) == 0 {
		return core.Event{}, false
	}
	ev := p.pending[0]
	p.pending = p.pending[1:]
	return ev, true
}

// fill translates everything the program has forwarded so far, then
// synthesizes releases that are due now. Once the program has exited, the
// input it forwarded is still delivered ahead of the quit.
func (p *Platform) fill() {
	if p.program == nil {
		return
	}
	var done bool
	select {
	case <-p.exited:
		done = true
	default:
	}
	for {
		select {
		case in := <-p.input:
			p.translate(in)
			continue
		default:
		}
		break
	}
	p.pending = append(p.pending, p.tracker.Expire(time.Since(p.start))...)

	// A failed program is reported by Present instead.
	if done && !p.quitSent && p.failure() == nil {
		p.quitSent = true
		p.pending = append(p.pending, core.QuitEvent())
	}
}

// failure returns the error the program stopped with, or nil when it quit
// normally.
func (p *Platform) failure() error {
	if p.exitErr == nil ||
		errors.Is(p.exitErr, tea.ErrProgramKilled) ||
		errors.Is(p.exitErr, tea.ErrInterrupted) {
		return nil
	}
	return fmt.Errorf("tui: program stopped: %w", p.exitErr)
}

func (p *Platform) translate(in inputMsg) {
	at := in.at.Sub(p.start)
	p.pending = append(p.pending, p.tracker.Expire(at)...)

	switch msg := in.msg.(type) {
	case tea.KeyMsg:
		k, quit := p.keys.Translate(msg)
		if quit {
			p.pending = append(p.pending, core.QuitEvent())
			return
		}
		p.pending = append(p.pending, p.tracker.Press(k, at)...)

	case tea.WindowSizeMsg:
		p.renderer.Resize(msg.Width, max(msg.Height-helpRows, 1))
		p.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	}
}

// Destroy stops the program and restores the terminal.
func (w *Window) Destroy() error {
	p := w.p
	if p.program == nil {
		return nil
	}
	p.program.Quit()
	<-p.exited
	p.program = nil
	p.window = nil
	p.tracker.Reset()
	if p.reported {
		return nil
	}
	return p.failure()
}

// Shutdown drops any queued input.
func (p *Platform) Shutdown() error {
	p.pending = nil
	return nil
}

func init() {
	registry.Register("tui", "Bubble Tea terminal renderer", func(opts platform.Options) platform.Platform {
		return New(opts)
	})
}
