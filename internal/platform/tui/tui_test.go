package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/game"
	"github.com/vovakirdan/paddleball/internal/platform"
	"github.com/vovakirdan/paddleball/internal/platform/grid"
	"github.com/vovakirdan/paddleball/internal/platform/headless"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapTranslate(t *testing.T) {
	tests := []struct {
		key      string
		wantKey  core.Key
		wantQuit bool
	}{
		{"left", core.KeyLeft, false},
		{"h", core.KeyLeft, false},
		{"a", core.KeyLeft, false},
		{"right", core.KeyRight, false},
		{"l", core.KeyRight, false},
		{"d", core.KeyRight, false},
		{"esc", core.KeyEscape, false},
		{"q", core.KeyOther, true},
		{"ctrl+c", core.KeyOther, true},
		{"x", core.KeyOther, false},
	}

	km := DefaultKeyMap()
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			k, quit := km.Translate(keyMsg(tc.key))
			if k != tc.wantKey || quit != tc.wantQuit {
				t.Errorf("Translate(%q) = %v, %v; expected %v, %v", tc.key, k, quit, tc.wantKey, tc.wantQuit)
			}
		})
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Clear(core.ColorBlack)
	s.FillRect(core.NewRect(1, 0, 2, 1), core.ColorWhite)
	s.Set(3, 1, core.FillRune, core.ColorRed)

	got := ansi.Strip(NewStyles().RenderScreen(s))

	if got != s.String() {
		t.Errorf("rendered text %q, expected %q", got, s.String())
	}
}

func TestModelForwardsInput(t *testing.T) {
	in := make(chan inputMsg, 4)
	m := NewModel("paddleball", in, nil, DefaultKeyMap())
	stamp := time.Unix(100, 0)
	m.now = func() time.Time { return stamp }

	next, _ := m.Update(keyMsg("left"))
	next, _ = next.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	next, _ = next.Update(frameMsg("FRAME"))

	if len(in) != 2 {
		t.Fatalf("forwarded %d messages, expected 2", len(in))
	}
	first := <-in
	if _, ok := first.msg.(tea.KeyMsg); !ok || !first.at.Equal(stamp) {
		t.Errorf("first forwarded = %+v", first)
	}
	if _, ok := (<-in).msg.(tea.WindowSizeMsg); !ok {
		t.Error("second forwarded message should be the resize")
	}

	view := next.View()
	if !strings.HasPrefix(view, "FRAME\n") {
		t.Errorf("view should start with the frame, got %q", view)
	}
	if !strings.Contains(ansi.Strip(view), "quit") {
		t.Errorf("view should carry the help line, got %q", view)
	}
}

func TestModelDropsInputWhenFull(t *testing.T) {
	in := make(chan inputMsg, 1)
	m := NewModel("paddleball", in, nil, DefaultKeyMap())

	m.Update(keyMsg("left"))
	m.Update(keyMsg("right")) // must not block

	if len(in) != 1 {
		t.Errorf("channel holds %d messages, expected 1", len(in))
	}
}

func TestModelSignalsReady(t *testing.T) {
	ready := make(chan struct{})
	m := NewModel("paddleball", make(chan inputMsg, 1), ready, DefaultKeyMap())

	if m.Init() == nil {
		t.Fatal("Init should return a command")
	}
	select {
	case <-ready:
		t.Fatal("ready closed before the program started")
	default:
	}

	next, _ := m.Update(startedMsg{})
	select {
	case <-ready:
	default:
		t.Fatal("ready should be closed once the program runs")
	}

	// A second start message must not close the channel again.
	next.Update(startedMsg{})
}

func TestTranslateSynthesizesRelease(t *testing.T) {
	p := New(platform.Options{KeyRelease: 100 * time.Millisecond, RepeatDelay: 100 * time.Millisecond})
	p.start = time.Unix(0, 0)
	p.renderer = grid.NewRenderer(800, 600, 80, 24, func(*core.Screen) error { return nil }, nil)
	at := func(ms int) time.Time { return p.start.Add(time.Duration(ms) * time.Millisecond) }

	p.translate(inputMsg{msg: keyMsg("left"), at: at(0)})
	p.translate(inputMsg{msg: keyMsg("left"), at: at(50)})  // auto-repeat
	p.translate(inputMsg{msg: keyMsg("right"), at: at(90)}) // switches direction
	p.translate(inputMsg{msg: keyMsg("esc"), at: at(300)})  // after the release timeout
	p.translate(inputMsg{msg: keyMsg("q"), at: at(310)})
	p.translate(inputMsg{msg: tea.WindowSizeMsg{Width: 40, Height: 11}, at: at(320)})

	want := []core.Event{
		core.KeyDown(core.KeyLeft),
		core.KeyUp(core.KeyLeft),
		core.KeyDown(core.KeyRight),
		core.KeyUp(core.KeyRight),
		core.KeyDown(core.KeyEscape),
		core.QuitEvent(),
	}
	if !reflect.DeepEqual(p.pending, want) {
		t.Errorf("events = %v, expected %v", p.pending, want)
	}

	s := p.renderer.Screen()
	if s.Width() != 40 || s.Height() != 10 {
		t.Errorf("grid = %dx%d, expected 40x10 (one row for help)", s.Width(), s.Height())
	}
}

func TestPlatformLifecycle(t *testing.T) {
	p := New(platform.Options{})
	p.programOptions = []tea.ProgramOption{
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	}
	p.terminalSize = func() (int, int, error) { return 80, 25, nil }

	if _, ok := p.PollEvent(); ok {
		t.Fatal("no events before the window opens")
	}

	win, err := p.CreateWindow("paddleball", 800, 600)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	r, err := p.CreateRenderer(win)
	if err != nil {
		t.Fatalf("CreateRenderer: %v", err)
	}
	if s := p.renderer.Screen(); s.Width() != 80 || s.Height() != 24 {
		t.Errorf("grid = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	r.Clear(core.ColorBlack)
	r.FillRect(core.NewRect(350, 560, 100, 20), core.ColorWhite)
	if err := r.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	p.program.Send(keyMsg("right"))
	ev, ok := pollUntil(t, p)
	if !ok || ev != core.KeyDown(core.KeyRight) {
		t.Errorf("PollEvent = %v, %v; expected KeyDown(Right)", ev, ok)
	}

	if err := win.Destroy(); err != nil {
		t.Errorf("Destroy: %v", err)
	}
	if err := p.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestCreateWindowWithoutTerminal(t *testing.T) {
	p := New(platform.Options{})
	p.terminalSize = func() (int, int, error) { return 0, 0, io.ErrClosedPipe }

	if _, err := p.CreateWindow("paddleball", 800, 600); err == nil {
		t.Fatal("expected an error without a terminal")
	}
	if _, err := p.CreateRenderer(nil); err == nil {
		t.Error("CreateRenderer(nil) should fail")
	}
}

func pollUntil(t *testing.T, p *Platform) (core.Event, bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ev, ok := p.PollEvent(); ok {
			return ev, true
		}
		time.Sleep(time.Millisecond)
	}
	return core.Event{}, false
}

func TestCreateWindowFailsWhenProgramCannotStart(t *testing.T) {
	if f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		f.Close()
		t.Skip("a controlling terminal is available")
	}

	p := New(platform.Options{})
	p.programOptions = []tea.ProgramOption{
		tea.WithInputTTY(),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	}
	p.terminalSize = func() (int, int, error) { return 80, 25, nil }

	cfg := config.Default()
	d := game.NewDriver(p, headless.NewClock(), &cfg)
	outcome, err := d.Run(context.Background())

	if !errors.Is(err, platform.ErrInit) {
		t.Fatalf("Run error = %v, expected platform.ErrInit", err)
	}
	if outcome != game.OutcomeNone {
		t.Errorf("outcome = %v, expected none", outcome)
	}
	if d.Frames() != 0 {
		t.Errorf("frames = %d, expected 0", d.Frames())
	}
	if p.program != nil {
		t.Error("a failed start should leave no program behind")
	}
}

// stoppedPlatform returns a platform whose program has already returned
// with exitErr, holding the given input.
func stoppedPlatform(exitErr error, input ...tea.Msg) *Platform {
	p := New(platform.Options{})
	p.start = time.Now()
	p.input = make(chan inputMsg, inputBuffer)
	for _, msg := range input {
		p.input <- inputMsg{msg: msg, at: p.start}
	}
	p.program = tea.NewProgram(NewModel("paddleball", p.input, nil, p.keys))
	p.exited = make(chan struct{})
	p.exitErr = exitErr
	close(p.exited)
	p.renderer = grid.NewRenderer(800, 600, 80, 24, p.present, nil)
	return p
}

func TestFillDeliversInputBeforeQuit(t *testing.T) {
	p := stoppedPlatform(nil, keyMsg("left"), keyMsg("esc"))

	var got []core.Event
	for {
		ev, ok := p.PollEvent()
		if !ok {
			break
		}
		got = append(got, ev)
	}

	want := []core.Event{
		core.KeyDown(core.KeyLeft),
		core.KeyDown(core.KeyEscape),
		core.QuitEvent(),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, expected %v", got, want)
	}
}

func TestProgramFailureAfterStart(t *testing.T) {
	lost := errors.New("read /dev/tty: input/output error")
	p := stoppedPlatform(lost)

	if ev, ok := p.PollEvent(); ok {
		t.Errorf("PollEvent = %v, expected no quit for a failed program", ev)
	}

	err := p.renderer.Present()
	if !errors.Is(err, lost) {
		t.Fatalf("Present error = %v, expected %v", err, lost)
	}
	if !p.reported {
		t.Error("the failure should be marked as reported")
	}
}

func TestProgramFailure(t *testing.T) {
	tests := []struct {
		name    string
		exitErr error
		wantErr bool
	}{
		{"clean exit", nil, false},
		{"killed", tea.ErrProgramKilled, false},
		{"interrupted", tea.ErrInterrupted, false},
		{"wrapped interrupt", fmt.Errorf("run: %w", tea.ErrInterrupted), false},
		{"terminal error", errors.New("could not open a new TTY"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := stoppedPlatform(tc.exitErr)

			err := p.failure()

			if (err != nil) != tc.wantErr {
				t.Errorf("failure() = %v, expected error: %v", err, tc.wantErr)
			}
			if !tc.wantErr {
				if ev, ok := p.PollEvent(); !ok || ev != core.QuitEvent() {
					t.Errorf("PollEvent = %v, %v; expected a quit", ev, ok)
				}
			}
		})
	}
}
