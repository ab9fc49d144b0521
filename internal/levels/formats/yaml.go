package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Grid     string            `yaml:"grid"`
	Sequence string            `yaml:"sequence,omitempty"`
	Tiles    Tiles             `yaml:"tiles,omitempty"`
	Spawn    *Point            `yaml:"spawn,omitempty"`
	Exits    map[string]string `yaml:"exits,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

func init() {
	Register(".yaml", ParseYAML)
	Register(".yml", ParseYAML)
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Grid:     yl.Grid,
		Tiles:    yl.Tiles,
		Spawn:    yl.Spawn,
		Exits:    yl.Exits,
		Sequence: yl.Sequence,
		Metadata: yl.Metadata,
	}, nil
}
