package game

import (
	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
)

// EventSource is the polling half of a platform.
type EventSource interface {
	PollEvent() (core.Event, bool)
}

// HandleEvent applies one input event. It only touches w.Running and the
// paddle's horizontal velocity.
func HandleEvent(w *World, ev core.Event, cfg *config.Config) {
	switch ev.Kind {
	case core.EventQuit:
		w.Running = false

	case core.EventKeyDown:
		switch ev.Key {
		case core.KeyEscape:
			w.Running = false
		case core.KeyLeft:
			w.Paddle.VX = -cfg.Paddle.Speed
		case core.KeyRight:
			w.Paddle.VX = cfg.Paddle.Speed
		}

	case core.EventKeyUp:
		if ev.Key == core.KeyLeft || ev.Key == core.KeyRight {
			w.Paddle.VX = 0
		}
	}
}

// ProcessInput polls src under the configured input policy and returns how
// many events were handled. InputSingle handles at most one, so a press and
// release arriving in the same frame take two frames to apply.
func ProcessInput(w *World, src EventSource, cfg *config.Config) int {
	handled := 0
	for {
		ev, ok := src.PollEvent()
		if !ok {
			return handled
		}
		HandleEvent(w, ev, cfg)
		handled++

		if cfg.Input.Policy == config.InputSingle {
			return handled
		}
	}
}
