package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows every level found in the level directory (or the built-in levels).`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	lvls := loadLevels(newLogger())

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")

	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Layout.Width(), l.Layout.Height())
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, l.ID, size, l.Title())
	}

	fmt.Println()
	fmt.Println("Run 'tilewalk play <id>' to walk a level.")
}
