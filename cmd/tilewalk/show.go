package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/levels"
	"github.com/vovakirdan/tilewalk/internal/levels/formats"
)

var showCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Print a level grid",
	Long: `Prints the grid of one level with its spawn cell marked, followed by
its exits and sequence.

Level files may use any of these extensions: ` + strings.Join(formats.FormatExtensions(), ", ") + `

Examples:
  tilewalk show start
  tilewalk show lvl01 --levels ./levels`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	loader := levelLoader(flagLevels, newLogger())

	lvl, err := loader.LoadByID(args[0])
	if errors.Is(err, levels.ErrLevelNotFound) {
		ids, _ := loader.ListIDs()
		fmt.Fprintf(os.Stderr, "Unknown level %q. Available: %s\n", args[0], strings.Join(ids, ", "))
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		os.Exit(1)
	}

	g, err := lvl.World()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%dx%d)\n\n", lvl.Title(), g.Width(), g.Height())

	spawn := lvl.Spawn()
	for y, row := range g.Rows() {
		if y == spawn.Y && g.InBounds(spawn.X, spawn.Y) {
			cells := []rune(row)
			cells[spawn.X] = lvl.Legend.Spawn
			row = string(cells)
		}
		fmt.Printf("  %s\n", row)
	}
	fmt.Println()

	labels := make([]string, 0, len(lvl.Exits))
	for label := range lvl.Exits {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Printf("  exit %-6s -> %s\n", label, lvl.Exits[label])
	}
	if lvl.Sequence != "" {
		fmt.Printf("  sequence   %s\n", lvl.Sequence)
	}
}
