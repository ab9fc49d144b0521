// Package sequences holds the short text cutscenes shown when a level is
// entered, and the state machine that steps through them.
package sequences

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBadManifest is returned when a manifest is not a list of sequences.
var ErrBadManifest = errors.New("sequences: malformed manifest")

//go:embed manifest.yaml
var builtinManifest []byte

// Frame is one screen of a sequence.
type Frame struct {
	Image string   // Optional image reference; terminals show it as a caption
	Text  []string // Paragraphs
}

// Sequence is an ordered list of frames.
type Sequence struct {
	ID     string
	Frames []Frame
}

// Catalog maps sequence IDs to sequences.
type Catalog map[string]Sequence

// rawFrame and rawSequence mirror the manifest file layout.
type rawFrame struct {
	I string   `yaml:"i"`
	T []string `yaml:"t"`
}

type rawSequence struct {
	ID     string     `yaml:"id"`
	Frames []rawFrame `yaml:"frames"`
}

// ParseManifest parses a YAML (or JSON) manifest.
// Entries without an id are skipped. Frames with neither image nor text
// are dropped, as are empty text lines.
func ParseManifest(data []byte) (Catalog, error) {
	var raw []rawSequence
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}

	cat := make(Catalog, len(raw))
	for _, r := range raw {
		if r.ID == "" {
			continue
		}
		cat[r.ID] = normalize(r)
	}
	return cat, nil
}

func normalize(r rawSequence) Sequence {
	seq := Sequence{ID: r.ID}
	for _, f := range r.Frames {
		var text []string
		for _, line := range f.T {
			if strings.TrimSpace(line) != "" {
				text = append(text, line)
			}
		}
		if f.I == "" && len(text) == 0 {
			continue
		}
		seq.Frames = append(seq.Frames, Frame{Image: f.I, Text: text})
	}
	return seq
}

// LoadManifest reads a manifest from disk.
// An empty path returns the built-in manifest.
func LoadManifest(path string) (Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sequences: reading manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// Builtin returns the manifest compiled into the binary.
func Builtin() Catalog {
	cat, err := ParseManifest(builtinManifest)
	if err != nil {
		panic(fmt.Sprintf("sequences: builtin manifest: %v", err))
	}
	return cat
}

// IDs returns the catalog's sequence IDs in sorted order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
