package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/platform/tui"
	"github.com/vovakirdan/tilewalk/internal/sequences"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tilewalk SSH server",
	Long: `Start an SSH server that lets users connect and walk the levels.

Each SSH connection gets its own session with the level picker.
Seen sequences are remembered per connection only.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tilewalk/host_key

Examples:
  tilewalk serve                           # Listen on :23234 with auto-generated key
  tilewalk serve --ssh :2222               # Listen on port 2222
  tilewalk serve --host-key ./my_host_key  # Use specific host key
  tilewalk serve --levels ./levels         # Serve a custom level set

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger()

	catalog, err := sequences.LoadManifest(flagSequences)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sequences: %v\n", err)
		os.Exit(1)
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.Logger = logger
	serverCfg.Session = tui.Options{
		Levels:    loadLevels(logger),
		Game:      cfg,
		Sequences: catalog,
		Runtime: core.RuntimeConfig{
			TickRate:  cfg.Engine.TickRate,
			TileWidth: cfg.Render.TileWidth,
			Hold:      cfg.Input.Hold(),
		},
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting tilewalk SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
