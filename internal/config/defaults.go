package config

import (
	_ "embed"
)

//go:embed defaults/tilewalk.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			Width:       0.8,
			Height:      0.8,
			Speed:       6.0,
			SpawnOffset: 0.1,
		},
		Engine: EngineConfig{
			StepHz:     60,
			TickRate:   60,
			MaxFrameMS: 250,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Render: RenderConfig{
			TileWidth: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
