package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would run with, after the config file
search and flag overrides, as YAML. The output is a valid config file.

Search order: --config, ~/.paddleball/config.yaml, ./` + config.LocalPath + `,
then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, src, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", src)
	_, err = out.Write(data)
	return err
}
