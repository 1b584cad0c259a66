package game

import (
	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/platform"
)

// Draw issues one frame of draw calls: clear, ball, paddle, present.
func Draw(w *World, r platform.Renderer, cfg *config.Config) error {
	r.Clear(cfg.Colors.Background)
	r.FillRect(w.Ball.Rect(), cfg.Colors.Foreground)
	r.FillRect(w.Paddle.Rect(), cfg.Colors.Foreground)
	return r.Present()
}
