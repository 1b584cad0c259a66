package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/registry"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List platform backends",
	Long:  `Shows every platform backend compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run:   runPlatforms,
}

func runPlatforms(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Fprintln(out, "No platforms available.")
		return
	}

	fmt.Fprintln(out, "Available platforms:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'paddleball play --platform <name>' to use one.")
}
