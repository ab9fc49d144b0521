// Package config provides YAML-based configuration loading for tilewalk.
package config

import "time"

// Config contains all tunable settings outside of level files.
type Config struct {
	Player PlayerConfig `yaml:"player"`
	Engine EngineConfig `yaml:"engine"`
	Input  InputConfig  `yaml:"input"`
	Render RenderConfig `yaml:"render"`
}

// PlayerConfig defines the player's collision rectangle and speed.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`        // Cells
	Height      float64 `yaml:"height"`       // Cells
	Speed       float64 `yaml:"speed"`        // Cells per second
	SpawnOffset float64 `yaml:"spawn_offset"` // Inset from the spawn cell's top-left corner
}

// EngineConfig defines the fixed-step simulation clock.
type EngineConfig struct {
	StepHz     int `yaml:"step_hz"`      // Fixed simulation steps per second
	TickRate   int `yaml:"tick_rate"`    // Frames per second requested from the UI loop
	MaxFrameMS int `yaml:"max_frame_ms"` // Cap on real time consumed per frame
}

// InputConfig defines how key presses become held directions.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a direction stays held after its last key event
}

// RenderConfig defines terminal rendering parameters.
type RenderConfig struct {
	TileWidth int `yaml:"tile_width"` // Terminal columns per tile
}

// Step returns the fixed simulation step duration.
func (e EngineConfig) Step() time.Duration {
	if e.StepHz <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(e.StepHz)
}

// MaxFrame returns the per-frame catch-up cap.
func (e EngineConfig) MaxFrame() time.Duration {
	if e.MaxFrameMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(e.MaxFrameMS) * time.Millisecond
}

// Hold returns how long a key stays held.
func (i InputConfig) Hold() time.Duration {
	if i.HoldMS <= 0 {
		return 150 * time.Millisecond
	}
	return time.Duration(i.HoldMS) * time.Millisecond
}
