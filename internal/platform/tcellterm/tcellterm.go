// Package tcellterm is a terminal backend built directly on tcell. Unlike
// the Bubble Tea backend it draws straight into tcell's cell buffer, so a
// frame costs one Show and no string building.
package tcellterm

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/platform"
	"github.com/vovakirdan/paddleball/internal/platform/grid"
	"github.com/vovakirdan/paddleball/internal/platform/termkeys"
	"github.com/vovakirdan/paddleball/internal/registry"
)

const eventBuffer = 100

// Platform drives a tcell screen.
type Platform struct {
	logger  *log.Logger
	tracker *termkeys.Tracker
	start   time.Time

	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	events    chan tcell.Event
	pumpDone  chan struct{}

	window   *Window
	renderer *grid.Renderer
	pending  []core.Event
	quitSent bool
}

// Window is the tcell screen the game draws on.
type Window struct {
	p      *Platform
	Title  string
	Width  int // world pixels
	Height int
}

var _ platform.Platform = (*Platform)(nil)

// New creates a tcell backend on the process terminal.
func New(opts platform.Options) *Platform {
	return newPlatform(opts, tcell.NewScreen)
}

func newPlatform(opts platform.Options, newScreen func() (tcell.Screen, error)) *Platform {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Platform{
		logger:    logger.WithPrefix("tcell"),
		tracker:   termkeys.New(opts.RepeatDelay, opts.KeyRelease),
		newScreen: newScreen,
	}
}

// CreateWindow initializes the terminal screen and starts the event pump.
func (p *Platform) CreateWindow(title string, width, height int) (platform.Window, error) {
	if p.screen != nil {
		return nil, errors.New("tcell: window already open")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tcell: invalid window size %dx%d", width, height)
	}

	screen, err := p.newScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell: init screen: %w", err)
	}
	screen.SetTitle(title)
	screen.HideCursor()

	p.screen = screen
	p.start = time.Now()
	p.events = make(chan tcell.Event, eventBuffer)
	p.pumpDone = make(chan struct{})
	go p.pump(screen, p.events, p.pumpDone)

	cols, rows := screen.Size()
	p.window = &Window{p: p, Title: title, Width: width, Height: height}
	p.renderer = grid.NewRenderer(width, height, cols, rows, p.present, nil)
	p.logger.Debug("screen ready", "cols", cols, "rows", rows)
	return p.window, nil
}

// pump forwards screen events until the screen is finalized.
func (p *Platform) pump(screen tcell.Screen, out chan<- tcell.Event, done chan<- struct{}) {
	defer close(done)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		default:
			// The loop is behind; drop rather than stall tcell.
		}
	}
}

// CreateRenderer returns the grid renderer bound to the screen.
func (p *Platform) CreateRenderer(w platform.Window) (platform.Renderer, error) {
	if w == nil || w != platform.Window(p.window) {
		return nil, errors.New("tcell: unknown window")
	}
	return p.renderer, nil
}

func (p *Platform) present(s *core.Screen) error {
	bg := s.Background()
	bgColor := tcellColor(bg)
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			style := tcell.StyleDefault.Foreground(tcellColor(cell.Color)).Background(bgColor)
			p.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	p.screen.Show()
	return nil
}

func tcellColor(c core.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
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

func (p *Platform) fill() {
	if p.screen == nil {
		return
	}
	var done bool
	select {
	case <-p.pumpDone:
		done = true
	default:
	}
	for {
		select {
		case ev := <-p.events:
			p.translate(ev)
			continue
		default:
		}
		break
	}
	p.pending = append(p.pending, p.tracker.Expire(time.Since(p.start))...)

	// Events the pump queued before stopping come first.
	if done && !p.quitSent {
		p.quitSent = true
		p.pending = append(p.pending, core.QuitEvent())
	}
}

func (p *Platform) translate(ev tcell.Event) {
	at := ev.When().Sub(p.start)
	p.pending = append(p.pending, p.tracker.Expire(at)...)

	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, quit := translateKey(ev)
		if quit {
			p.pending = append(p.pending, core.QuitEvent())
			return
		}
		p.pending = append(p.pending, p.tracker.Press(k, at)...)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		p.renderer.Resize(cols, rows)
		p.screen.Sync()
		p.logger.Debug("terminal resized", "cols", cols, "rows", rows)
	}
}

// translateKey maps a tcell key event to a game key. quit is true for q and
// Ctrl+C, which close the game like a window-close would.
func translateKey(ev *tcell.EventKey) (k core.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.KeyOther, true
	case tcell.KeyEscape:
		return core.KeyEscape, false
	case tcell.KeyLeft:
		return core.KeyLeft, false
	case tcell.KeyRight:
		return core.KeyRight, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.KeyOther, true
		case 'h', 'a':
			return core.KeyLeft, false
		case 'l', 'd':
			return core.KeyRight, false
		}
	}
	return core.KeyOther, false
}

// Destroy finalizes the screen and restores the terminal.
func (w *Window) Destroy() error {
	p := w.p
	if p.screen == nil {
		return nil
	}
	p.screen.Fini()
	<-p.pumpDone
	p.screen = nil
	p.window = nil
	p.tracker.Reset()
	return nil
}

// Shutdown drops any queued input.
func (p *Platform) Shutdown() error {
	p.pending = nil
	return nil
}

func init() {
	registry.Register("tcell", "tcell terminal renderer", func(opts platform.Options) platform.Platform {
		return New(opts)
	})
}
