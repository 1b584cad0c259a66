// Package config provides YAML-based game configuration loading for
// paddleball. Every tunable lives in one Config value that is built once at
// startup and passed by pointer.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Config contains all configuration for the game.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Timing TimingConfig `yaml:"timing"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Colors ColorConfig  `yaml:"colors"`
	Rules  RulesConfig  `yaml:"rules"`
	Input  InputConfig  `yaml:"input"`
}

// WindowConfig defines the world size in pixels.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	FPS int `yaml:"fps"`
}

// BallConfig defines the ball's size and launch state.
// The ball always spawns horizontally centered.
type BallConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartY float64 `yaml:"start_y"`
	VelX   float64 `yaml:"vel_x"` // pixels per second
	VelY   float64 `yaml:"vel_y"` // pixels per second
}

// PaddleConfig defines the paddle's size, placement and speed.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // paddle.y = window height - offset
	Speed        float64 `yaml:"speed"`         // pixels per second while a key is held
}

// ColorConfig defines the frame colors.
type ColorConfig struct {
	Background core.Color `yaml:"background"`
	Foreground core.Color `yaml:"foreground"`
}

// RulesConfig selects between the behavioral variants of the game.
type RulesConfig struct {
	Collision CollisionPolicy `yaml:"collision"`
	Loss      LossPolicy      `yaml:"loss"`
}

// InputConfig defines input handling.
type InputConfig struct {
	Policy InputPolicy `yaml:"policy"`
	// KeyRelease is how long a held arrow key may go without an auto-repeat
	// before terminal backends report it as released.
	KeyRelease time.Duration `yaml:"key_release"`
	// RepeatDelay is how long a fresh press is held while waiting for the
	// keyboard's first auto-repeat.
	RepeatDelay time.Duration `yaml:"repeat_delay"`
}

// FrameTarget returns the frame budget derived from the target FPS.
func (c *Config) FrameTarget() time.Duration {
	if c.Timing.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Timing.FPS)
}

// Validate checks that the configuration describes a playable game.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Timing.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Timing.FPS))
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		errs = append(errs, fmt.Errorf("ball size must be positive, got %gx%g", c.Ball.Width, c.Ball.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > float64(c.Window.Width) {
		errs = append(errs, fmt.Errorf("paddle width %g exceeds window width %d", c.Paddle.Width, c.Window.Width))
	}
	if c.Input.KeyRelease < 0 {
		errs = append(errs, fmt.Errorf("key_release must not be negative, got %s", c.Input.KeyRelease))
	}
	if c.Input.RepeatDelay < 0 {
		errs = append(errs, fmt.Errorf("repeat_delay must not be negative, got %s", c.Input.RepeatDelay))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
