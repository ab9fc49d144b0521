package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check levels for problems",
	Long: `Loads every level and checks that it builds, that the player fits at
its spawn without touching a wall, and that every exit names a known level.

Files that fail to parse are reported as well.

Examples:
  tilewalk validate
  tilewalk validate ./levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	dir := flagLevels
	if len(args) == 1 {
		dir = args[0]
	}

	cfg := loadConfig()
	logger := newLogger()

	loader := levelLoader(dir, logger)
	lvls, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	broken, err := loader.Broken()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	problems := levels.ValidateCatalog(lvls, cfg.Player)

	failed := len(broken)
	for _, b := range broken {
		fmt.Printf("FAIL  %s: %v\n", b.Path, b.Err)
	}
	for _, l := range lvls {
		errs := problems[l.ID]
		if len(errs) == 0 {
			fmt.Printf("ok    %s\n", l.ID)
			continue
		}
		failed++
		for _, err := range errs {
			fmt.Printf("FAIL  %s: %v\n", l.ID, err)
		}
	}

	fmt.Println()
	fmt.Printf("%d levels, %d with problems\n", len(lvls)+len(broken), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
