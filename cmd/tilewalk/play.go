package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/platform/tui"
	"github.com/vovakirdan/tilewalk/internal/sequences"
	"github.com/vovakirdan/tilewalk/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Walk a level",
	Long: `Start walking the given level, or pick one from a list.

Controls:
  Arrows/WASD/hjkl  - Move (hold to keep moving)
  N / B             - Next / previous level
  Enter/any key     - Advance a sequence
  Ctrl+S            - Save a text screenshot
  Esc               - Back to the level list
  Q/Ctrl+C          - Quit

Walking against an open grid edge that has an exit takes you to the
level it names.

Examples:
  tilewalk play
  tilewalk play start
  tilewalk play lvl01 --levels ./levels
  tilewalk play --log ./tilewalk.log`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	// The alternate screen owns the terminal: log to a file or nowhere.
	logOut := io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilewalk",
		Level:           log.DebugLevel,
	})

	lvls := loadLevels(logger)
	logger.Debug("starting play", "levels", len(lvls))

	opts := tui.Options{
		Levels: lvls,
		Game:   cfg,
		Logger: logger,
	}
	if len(args) == 1 {
		opts.Start = args[0]
	}

	// Open seen-flag storage; sequences replay every run without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("seen flags not persisted", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
	} else {
		defer store.Close()
		opts.Seen = store
	}

	opts.Sequences, err = sequences.LoadManifest(flagSequences)
	if err != nil {
		return fmt.Errorf("loading sequences: %w", err)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts.Runtime = core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  cfg.Engine.TickRate,
		TileWidth: cfg.Render.TileWidth,
		Hold:      cfg.Input.Hold(),
	}

	return tui.RunSession(opts)
}
