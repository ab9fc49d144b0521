package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate for every rejected setting.
var ErrInvalid = errors.New("config: invalid value")

// Load loads the tilewalk configuration.
// Search order: customPath -> ~/.tilewalk/config.yaml -> ./configs/tilewalk.yaml -> embedded default.
// Keys missing from a file keep their Default() values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tilewalk.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size %vx%v must be positive", ErrInvalid, c.Player.Width, c.Player.Height)
	case c.Player.Speed < 0:
		return fmt.Errorf("%w: player speed %v must not be negative", ErrInvalid, c.Player.Speed)
	case c.Player.SpawnOffset < 0:
		return fmt.Errorf("%w: spawn_offset %v must not be negative", ErrInvalid, c.Player.SpawnOffset)
	case c.Engine.StepHz < 0 || c.Engine.TickRate < 0 || c.Engine.MaxFrameMS < 0:
		return fmt.Errorf("%w: engine rates must not be negative", ErrInvalid)
	case c.Render.TileWidth < 1:
		return fmt.Errorf("%w: tile_width %d must be at least 1", ErrInvalid, c.Render.TileWidth)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilewalk", filename)
}
