package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/golddigger/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List difficulty modes",
	Long:  `Shows the difficulty modes accepted by --difficulty and offered in the menu.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "-----------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, m.ID, m.Title, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'golddigger play --difficulty <id>' to play a mode.")
}
