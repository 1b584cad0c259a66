package game

import (
	"time"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/platform"
)

// Pace sleeps away whatever is left of the frame budget since last and
// returns the requested sleep. It sleeps only when 0 < wait <= target, so a
// clock that went backwards never causes an oversized sleep.
func Pace(clock platform.Clock, last, target time.Duration) time.Duration {
	wait := target - (clock.Now() - last)
	if wait > 0 && wait <= target {
		clock.Sleep(wait)
		return wait
	}
	return 0
}

// Update runs one physics update: frame pacing, delta time, then Step.
// Delta time is not clamped; a slow frame moves everything further.
func Update(w *World, clock platform.Clock, cfg *config.Config) StepResult {
	Pace(clock, w.LastFrame, cfg.FrameTarget())

	now := clock.Now()
	dt := (now - w.LastFrame).Seconds()
	w.LastFrame = now

	return Step(w, dt, cfg)
}
