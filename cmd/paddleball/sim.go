package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/game"
	"github.com/vovakirdan/paddleball/internal/platform/headless"
	"github.com/vovakirdan/paddleball/internal/platform/snapshot"
)

const defaultFrames = 600

var (
	flagFrames int
	flagHold   string
	flagPNG    string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless and print the result",
	Long: `Run the game loop without a display on a simulated clock. Every frame
takes exactly one frame budget, so runs are reproducible.

Examples:
  paddleball sim
  paddleball sim --frames 1200 --loss terminate
  paddleball sim --hold left --png last-frame.png`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", defaultFrames, "Maximum number of frames to run")
	simCmd.Flags().StringVar(&flagHold, "hold", "", "Arrow key held for the whole run: left, right")
	simCmd.Flags().StringVar(&flagPNG, "png", "", "Write the last frame to this PNG file")
}

func holdEvents(hold string) ([]core.Event, error) {
	switch hold {
	case "":
		return nil, nil
	case "left":
		return []core.Event{core.KeyDown(core.KeyLeft)}, nil
	case "right":
		return []core.Event{core.KeyDown(core.KeyRight)}, nil
	}
	return nil, fmt.Errorf("--hold: unknown key %q (want left or right)", hold)
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}
	events, err := holdEvents(flagHold)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	p := headless.New(events...)
	clock := headless.NewClock()
	d := game.NewDriver(p, clock, &cfg, game.WithLogger(logger), game.WithMaxFrames(flagFrames))

	outcome, err := d.Run(contextOf(cmd))
	if err != nil {
		return err
	}

	w := d.World()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "outcome:  %s\n", outcome)
	fmt.Fprintf(out, "frames:   %d\n", d.Frames())
	fmt.Fprintf(out, "elapsed:  %s\n", clock.Now())
	fmt.Fprintf(out, "ball:     (%.2f, %.2f) v=(%.0f, %.0f)\n", w.Ball.X, w.Ball.Y, w.Ball.VX, w.Ball.VY)
	fmt.Fprintf(out, "paddle:   x=%.2f\n", w.Paddle.X)

	if flagPNG != "" {
		if p.Renderer() == nil || p.Renderer().Presented() == 0 {
			return fmt.Errorf("--png: no frame was presented")
		}
		if err := snapshot.Save(flagPNG, p.Renderer().Last(), cfg.Window.Width, cfg.Window.Height); err != nil {
			return err
		}
		fmt.Fprintf(out, "snapshot: %s\n", flagPNG)
	}
	return nil
}
