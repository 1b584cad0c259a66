package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/game"
	"github.com/vovakirdan/paddleball/internal/platform"
	"github.com/vovakirdan/paddleball/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game on the selected platform backend.

Controls:
  Left/H/A   - Move paddle left
  Right/L/D  - Move paddle right
  Esc        - Exit
  Q/Ctrl+C   - Quit

Terminals do not report key releases; the paddle stops once the key stops
auto-repeating (see input.repeat_delay and input.key_release in the config).

Examples:
  paddleball play
  paddleball play --platform tcell
  paddleball play --loss terminate --log-file paddleball.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, src, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !registry.Exists(flagPlatform) {
		return fmt.Errorf("unknown platform %q (run 'paddleball platforms')", flagPlatform)
	}

	// Terminal backends own the screen while running; without a log file
	// their logs would be drawn over by the next frame.
	logOut := cmd.ErrOrStderr()
	hidden := flagPlatform != "headless" && flagLogFile == ""
	if hidden {
		logOut = io.Discard
	}
	logger, closeLog, err := newLogger(logOut)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", src)

	p, err := registry.Create(flagPlatform, platform.Options{
		Logger:      logger,
		KeyRelease:  cfg.Input.KeyRelease,
		RepeatDelay: cfg.Input.RepeatDelay,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := game.NewDriver(p, platform.NewSystemClock(), &cfg, game.WithLogger(logger))
	outcome, err := d.Run(ctx)
	if err != nil {
		return err
	}

	if hidden && outcome == game.OutcomeLost {
		log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "paddleball"}).Warn("lost!")
	}
	logger.Info("game over", "outcome", outcome, "frames", d.Frames())
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
