// paddleball is a one-paddle, one-ball arcade game for the terminal.
//
// Usage:
//
//	paddleball                - Play (same as "paddleball play")
//	paddleball play           - Play in the terminal
//	paddleball sim            - Run the game headless and print the result
//	paddleball config         - Print the effective configuration as YAML
//	paddleball platforms      - List available platform backends
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--platform <name>     - Backend: tui, tcell, headless (default: tui)
//	--fps <rate>          - Frame rate
//	--collision <policy>  - Paddle collision: snap, overlap
//	--loss <policy>       - Ball loss: reset, terminate
//	--input <policy>      - Events per frame: single, drain
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/platform"

	// Import backends to register them
	_ "github.com/vovakirdan/paddleball/internal/platform/headless"
	_ "github.com/vovakirdan/paddleball/internal/platform/tcellterm"
	_ "github.com/vovakirdan/paddleball/internal/platform/tui"
)

// Process exit codes.
const (
	exitOK       = 0
	exitUsage    = 1
	exitPlatform = 2
)

var (
	// Global flags
	flagConfig    string
	flagPlatform  string
	flagFPS       int
	flagCollision string
	flagLoss      string
	flagInput     string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and maps its error to an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return exitOK
	}

	log.NewWithOptions(stderr, log.Options{Prefix: "paddleball"}).Error(err)
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, platform.ErrInit):
		return exitPlatform
	default:
		return exitUsage
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddleball",
	Short: "Paddleball - keep the ball off the floor",
	Long: `Paddleball is a tiny arcade game: a ball bounces off the walls and
ceiling, and you move a paddle along the bottom to keep it in play.

Available commands:
  play       - Play in the terminal (default)
  sim        - Run headless and print the result
  config     - Print the effective configuration
  platforms  - List platform backends

Examples:
  paddleball
  paddleball play --platform tcell --fps 30
  paddleball play --loss terminate --collision overlap
  paddleball sim --frames 1200 --hold right --png frame.png
  paddleball config --config ./my-paddleball.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagPlatform, "platform", "tui", "Platform backend (see 'paddleball platforms')")
	flags.IntVar(&flagFPS, "fps", 0, "Frame rate (overrides config)")
	flags.StringVar(&flagCollision, "collision", "", "Paddle collision policy: snap, overlap")
	flags.StringVar(&flagLoss, "loss", "", "Ball loss policy: reset, terminate")
	flags.StringVar(&flagInput, "input", "", "Input policy: single, drain")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(platformsCmd)
}

// loadConfig loads the configuration file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, config.Source, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, src, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Timing.FPS = flagFPS
	}
	if flags.Changed("collision") {
		if err := cfg.Rules.Collision.UnmarshalText([]byte(flagCollision)); err != nil {
			return cfg, src, fmt.Errorf("--collision: %w", err)
		}
	}
	if flags.Changed("loss") {
		if err := cfg.Rules.Loss.UnmarshalText([]byte(flagLoss)); err != nil {
			return cfg, src, fmt.Errorf("--loss: %w", err)
		}
	}
	if flags.Changed("input") {
		if err := cfg.Input.Policy.UnmarshalText([]byte(flagInput)); err != nil {
			return cfg, src, fmt.Errorf("--input: %w", err)
		}
	}
	return cfg, src, cfg.Validate()
}

// newLogger builds the logger for a run. The returned func closes the log
// file, if any.
func newLogger(out io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("--log-file: %w", err)
		}
		out = f
		//nolint:errcheck // Best-effort close of the log file
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "paddleball",
		Level:           level,
	})
	return logger, closeFn, nil
}
