package game

import (
	"testing"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/platform/headless"
)

func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name        string
		startVX     float64
		ev          core.Event
		wantVX      float64
		wantRunning bool
	}{
		{"quit", 0, core.QuitEvent(), 0, false},
		{"escape", 0, core.KeyDown(core.KeyEscape), 0, false},
		{"left down", 0, core.KeyDown(core.KeyLeft), -400, true},
		{"right down", 0, core.KeyDown(core.KeyRight), 400, true},
		{"right down overrides left", -400, core.KeyDown(core.KeyRight), 400, true},
		{"left up", -400, core.KeyUp(core.KeyLeft), 0, true},
		{"right up stops leftward motion too", -400, core.KeyUp(core.KeyRight), 0, true},
		{"escape up ignored", 400, core.KeyUp(core.KeyEscape), 400, true},
		{"other key ignored", 400, core.KeyDown(core.KeyOther), 400, true},
		{"empty event ignored", 400, core.Event{}, 400, true},
	}

	cfg := testConfig()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := Setup(cfg)
			w.Paddle.VX = tc.startVX
			before := w

			HandleEvent(&w, tc.ev, cfg)

			if w.Paddle.VX != tc.wantVX {
				t.Errorf("paddle.VX = %g, expected %g", w.Paddle.VX, tc.wantVX)
			}
			if w.Running != tc.wantRunning {
				t.Errorf("Running = %v, expected %v", w.Running, tc.wantRunning)
			}

			// Nothing else may change.
			w.Paddle.VX, w.Running = before.Paddle.VX, before.Running
			if w != before {
				t.Errorf("HandleEvent touched more than VX/Running:\n%+v\n%+v", w, before)
			}
		})
	}
}

func TestProcessInputSinglePolicy(t *testing.T) {
	cfg := testConfig()
	src := headless.New(core.KeyDown(core.KeyRight), core.KeyUp(core.KeyRight))
	w := Setup(cfg)

	if n := ProcessInput(&w, src, cfg); n != 1 {
		t.Fatalf("frame 1 handled %d events, expected 1", n)
	}
	if w.Paddle.VX != 400 {
		t.Errorf("after frame 1, VX = %g, expected 400 (release still queued)", w.Paddle.VX)
	}
	if src.Pending() != 1 {
		t.Errorf("expected the release to wait for the next frame, pending = %d", src.Pending())
	}

	if n := ProcessInput(&w, src, cfg); n != 1 {
		t.Fatalf("frame 2 handled %d events, expected 1", n)
	}
	if w.Paddle.VX != 0 {
		t.Errorf("after frame 2, VX = %g, expected 0", w.Paddle.VX)
	}

	if n := ProcessInput(&w, src, cfg); n != 0 {
		t.Errorf("empty queue should be a no-op, handled %d", n)
	}
}

func TestProcessInputDrainPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.Input.Policy = config.InputDrain
	src := headless.New(
		core.KeyDown(core.KeyRight),
		core.KeyUp(core.KeyRight),
		core.KeyDown(core.KeyLeft),
	)
	w := Setup(cfg)

	if n := ProcessInput(&w, src, cfg); n != 3 {
		t.Fatalf("handled %d events, expected 3", n)
	}
	if w.Paddle.VX != -400 {
		t.Errorf("VX = %g, expected -400 from the last event", w.Paddle.VX)
	}
	if src.Pending() != 0 {
		t.Errorf("drain should empty the queue, pending = %d", src.Pending())
	}
}
