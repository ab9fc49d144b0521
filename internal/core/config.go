package core

import "time"

// RuntimeConfig describes the terminal the view draws into.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	TickRate  int           // Redraws per second (default 60)
	TileWidth int           // Columns per tile
	Hold      time.Duration // How long a key press counts as held
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		TileWidth: 2,
		Hold:      150 * time.Millisecond,
	}
}
