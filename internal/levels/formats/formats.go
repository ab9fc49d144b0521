// Package formats provides pluggable level file format parsers.
// Parsers register themselves by file extension in init() so the loader
// can discover them without knowing each format.
package formats

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Tiles names the symbols a level uses. Empty fields take loader defaults.
type Tiles struct {
	Wall  string `toml:"wall" yaml:"wall"`
	Floor string `toml:"floor" yaml:"floor"`
	Spawn string `toml:"spawn" yaml:"spawn"`
	Solid string `toml:"solid" yaml:"solid"` // Extra solid symbols, one per character
}

// Point is an optional spawn cell.
type Point struct {
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`
}

// Level is a level as read from a file, before layout parsing.
type Level struct {
	ID       string
	Name     string
	Grid     string
	Tiles    Tiles
	Spawn    *Point
	Exits    map[string]string
	Sequence string
	Metadata map[string]string
}

// Parser decodes a level file.
type Parser func(data []byte) (Level, error)

var (
	parsers = make(map[string]Parser)
	mu      sync.RWMutex
)

// Register adds a parser for a file extension (with leading dot).
// Panics if the extension is already registered.
func Register(ext string, p Parser) {
	mu.Lock()
	defer mu.Unlock()

	ext = strings.ToLower(ext)
	if _, exists := parsers[ext]; exists {
		panic(fmt.Sprintf("formats: extension %q already registered", ext))
	}
	parsers[ext] = p
}

// Lookup returns the parser for an extension.
func Lookup(ext string) (Parser, bool) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := parsers[strings.ToLower(ext)]
	return p, ok
}

// FormatExtensions returns supported file extensions, sorted.
func FormatExtensions() []string {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]string, 0, len(parsers))
	for ext := range parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
