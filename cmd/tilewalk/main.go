// tilewalk walks a small actor through tile levels in the terminal.
//
// Usage:
//
//	tilewalk play [level]    - Walk a level (picker when no level is given)
//	tilewalk list            - List available levels
//	tilewalk show <level>    - Print a level grid
//	tilewalk validate [dir]  - Check levels for problems
//	tilewalk serve           - Start SSH server for remote play
//	tilewalk seen            - Show which sequences were already shown
//	tilewalk seen clear      - Forget them
//	tilewalk defaults        - Print the default config YAML
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.tilewalk, ./configs)
//	--levels <dir>      - Level directory (default: built-in levels)
//	--sequences <path>  - Sequence manifest (default: built-in manifest)
//	--db <path>         - Seen-flag database (default: ~/.tilewalk/tilewalk.db)
//	--fps <rate>        - Redraw rate (default: from config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/levels"
	"github.com/vovakirdan/tilewalk/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagConfig    string
	flagDBPath    string
	flagLevels    string
	flagSequences string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilewalk",
	Short: "Tilewalk - walk through tile levels in your terminal",
	Long: `Tilewalk moves a small actor through tile levels with smooth,
sub-cell motion that never passes through walls.

Available commands:
  play      - Walk a level
  list      - Show all levels
  show      - Print a level grid
  validate  - Check levels for problems
  serve     - Start SSH server for remote play
  seen      - Show or clear seen sequences
  defaults  - Print the default config

Examples:
  tilewalk play
  tilewalk play start
  tilewalk list --levels ./levels
  tilewalk validate ./levels
  tilewalk serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Redraw rate (0 = use config tick_rate)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to seen-flag database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level directory (empty = built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagSequences, "sequences", "", "Sequence manifest (empty = built-in)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log skipped level files")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seenCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger returns the stderr logger used by the non-interactive commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilewalk",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the game config and applies flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Engine.TickRate = flagFPS
	}
	return cfg
}

// levelLoader returns a loader for --levels, or the built-in levels.
func levelLoader(dir string, logger *log.Logger) *levels.Loader {
	var loader *levels.Loader
	if dir == "" {
		loader = levels.Builtin()
	} else {
		loader = levels.NewLoader(dir)
	}
	loader.Logger = logger
	return loader
}

// loadLevels loads every level or exits.
func loadLevels(logger *log.Logger) []levels.Level {
	lvls, err := levelLoader(flagLevels, logger).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	if len(lvls) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no levels found.")
		os.Exit(1)
	}
	return lvls
}
