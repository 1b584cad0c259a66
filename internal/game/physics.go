package game

import (
	"github.com/vovakirdan/paddleball/internal/config"
)

// StepResult reports which rules fired during one Step.
type StepResult struct {
	WallX  bool // Ball reflected off the left or right wall
	WallY  bool // Ball reflected off the top wall
	Paddle bool // Ball reflected off the paddle
	Clamp  bool // Paddle was held inside the window
	Lost   bool // Ball reached the bottom edge
}

// Step advances the world by dt seconds and resolves collisions.
// Order: integrate, walls, paddle, paddle clamp, loss. The paddle test sees
// the unclamped paddle position, and a paddle snap runs before the loss test.
func Step(w *World, dt float64, cfg *config.Config) StepResult {
	var res StepResult

	integrate(w, dt)
	res.WallX, res.WallY = collideWalls(&w.Ball, float64(cfg.Window.Width))
	res.Paddle = collidePaddle(&w.Ball, &w.Paddle, cfg.Rules.Collision)
	res.Clamp = clampPaddle(&w.Paddle, float64(cfg.Window.Width))
	res.Lost = checkLoss(w, cfg)

	return res
}

func integrate(w *World, dt float64) {
	w.Ball.X += w.Ball.VX * dt
	w.Ball.Y += w.Ball.VY * dt
	// The paddle only moves horizontally.
	w.Paddle.X += w.Paddle.VX * dt
}

// collideWalls reflects the ball off the side and top walls. The axes are
// tested independently and the position is not corrected, so a ball that is
// still outside next frame reflects again.
func collideWalls(ball *Body, width float64) (hitX, hitY bool) {
	if ball.Left() < 0 || ball.Right() > width {
		ball.VX = -ball.VX
		hitX = true
	}
	if ball.Top() < 0 {
		ball.VY = -ball.VY
		hitY = true
	}
	return hitX, hitY
}

func collidePaddle(ball, paddle *Body, policy config.CollisionPolicy) bool {
	switch policy {
	case config.CollisionOverlap:
		if ball.Bottom() >= paddle.Top() &&
			ball.Right() >= paddle.Left() &&
			ball.Left() <= paddle.Right() {
			ball.VY = -ball.VY
			return true
		}

	default:
		if ball.Left() > paddle.Left() &&
			ball.Left() < paddle.Right() &&
			ball.Bottom() > paddle.Top() {
			ball.VY = -ball.VY
			ball.Y = paddle.Top() - ball.H
			return true
		}
	}
	return false
}

// clampPaddle keeps the paddle inside [0, width].
func clampPaddle(paddle *Body, width float64) bool {
	if paddle.Left() <= 0 {
		paddle.X = 0
		return true
	}
	if paddle.Right() >= width {
		paddle.X = width - paddle.W
		return true
	}
	return false
}

// checkLoss applies the loss policy when the ball reaches the bottom edge.
func checkLoss(w *World, cfg *config.Config) bool {
	if w.Ball.Bottom() < float64(cfg.Window.Height) {
		return false
	}

	switch cfg.Rules.Loss {
	case config.LossTerminate:
		w.Running = false
	default:
		// Respawn at the top center; velocity is kept.
		w.Ball.X = float64(cfg.Window.Width) / 2
		w.Ball.Y = 0
	}
	return true
}
