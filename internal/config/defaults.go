package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/paddleball/internal/core"
)

//go:embed defaults/paddleball.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "paddleball",
			Width:  800,
			Height: 600,
		},
		Timing: TimingConfig{
			FPS: 60,
		},
		Ball: BallConfig{
			Width:  15,
			Height: 15,
			StartY: 20,
			VelX:   -200,
			VelY:   150,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			BottomOffset: 40,
			Speed:        400,
		},
		Colors: ColorConfig{
			Background: core.ColorBlack,
			Foreground: core.ColorWhite,
		},
		Rules: RulesConfig{
			Collision: CollisionSnap,
			Loss:      LossReset,
		},
		Input: InputConfig{
			Policy:      InputSingle,
			KeyRelease:  150 * time.Millisecond,
			RepeatDelay: 600 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
