package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg carries a rendered frame from the game loop to the program.
type frameMsg string

// startedMsg is delivered once the program's event loop is running.
type startedMsg struct{}

// inputMsg is a key or resize message stamped with its arrival time.
type inputMsg struct {
	msg tea.Msg
	at  time.Time
}

// Model is the Bubble Tea side of the backend. It owns no game state: it
// forwards input to the game loop and displays whatever frame it last got.
type Model struct {
	title string
	input chan<- inputMsg
	ready chan<- struct{} // closed on startedMsg
	keys  KeyMap
	help  help.Model
	frame string
	now   func() time.Time
}

// NewModel creates a model that forwards input to the given channel and
// closes ready once the program is running. ready may be nil.
func NewModel(title string, input chan<- inputMsg, ready chan<- struct{}, keys KeyMap) Model {
	return Model{
		title: title,
		input: input,
		ready: ready,
		keys:  keys,
		help:  help.New(),
		now:   time.Now,
	}
}

// Init sets the terminal title. Init runs after the terminal is set up, and
// startedMsg arrives only once the event loop reads messages.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.title),
		func() tea.Msg { return startedMsg{} },
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.forward(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.forward(msg)

	case frameMsg:
		m.frame = string(msg)

	case startedMsg:
		if m.ready != nil {
			close(m.ready)
			m.ready = nil
		}
	}

	return m, nil
}

// forward never blocks the program; input that does not fit is dropped.
func (m Model) forward(msg tea.Msg) {
	select {
	case m.input <- inputMsg{msg: msg, at: m.now()}:
	default:
	}
}

// View renders the last frame with a help line below it.
func (m Model) View() string {
	return m.frame + "\n" + m.help.View(m.keys)
}
