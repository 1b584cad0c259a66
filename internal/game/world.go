// Package game implements paddleball: a ball bouncing inside a window off the
// walls and a player-controlled paddle.
//
// The package holds pure logic. World state, input handling, physics and the
// draw-call adapter are plain functions over *World; the Driver runs them in a
// lock-step input → update → render loop against a platform backend.
package game

import (
	"time"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
)

// Body is a moving axis-aligned rectangle in world pixels.
type Body struct {
	X, Y   float64 // Top-left corner
	W, H   float64 // Size, constant after setup
	VX, VY float64 // Velocity in pixels per second
}

// Left returns the x-coordinate of the left edge.
func (b *Body) Left() float64 {
	return b.X
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 {
	return b.X + b.W
}

// Top returns the y-coordinate of the top edge.
func (b *Body) Top() float64 {
	return b.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// Rect returns the body as an integer draw rectangle, truncating each field.
func (b *Body) Rect() core.Rect {
	return core.NewRect(int(b.X), int(b.Y), int(b.W), int(b.H))
}

// World is the complete game state.
type World struct {
	Ball    Body
	Paddle  Body
	Running bool
	// LastFrame is the clock reading taken at the previous update.
	LastFrame time.Duration
}

// Setup returns a freshly initialized world. It reads only cfg, so repeated
// calls return identical worlds.
func Setup(cfg *config.Config) World {
	width := float64(cfg.Window.Width)
	height := float64(cfg.Window.Height)

	return World{
		Ball: Body{
			X:  width / 2,
			Y:  cfg.Ball.StartY,
			W:  cfg.Ball.Width,
			H:  cfg.Ball.Height,
			VX: cfg.Ball.VelX,
			VY: cfg.Ball.VelY,
		},
		Paddle: Body{
			X: width/2 - cfg.Paddle.Width/2,
			Y: height - cfg.Paddle.BottomOffset,
			W: cfg.Paddle.Width,
			H: cfg.Paddle.Height,
		},
		Running: true,
	}
}
