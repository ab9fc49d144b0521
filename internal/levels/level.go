// Package levels loads level descriptions and turns them into worlds.
// This package depends on world but world does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tilewalk/internal/levels/formats"
	"github.com/vovakirdan/tilewalk/internal/world"
)

// ErrBadTile is returned when a tile symbol is not exactly one character.
var ErrBadTile = errors.New("levels: tile symbol must be one character")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Layout   Layout
	Legend   Legend
	Exits    map[string]string // Direction or label -> target level ID
	Sequence string            // Sequence played when the level is entered
	Metadata map[string]string
	FilePath string
}

// Spawn returns the spawn cell.
func (l *Level) Spawn() world.Point {
	return l.Layout.Spawn
}

// Title returns Name, or ID when the level has no name.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// World builds the tile grid for this level.
func (l *Level) World() (*world.Grid, error) {
	solids := make([]world.Symbol, len(l.Legend.Solids))
	for i, r := range l.Legend.Solids {
		solids[i] = world.Symbol(r)
	}
	g, err := world.Build(l.Layout.Rows, world.Symbol(l.Legend.Wall), world.WithSolids(solids...))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return g, nil
}

// FromFormat converts a parsed file into a Level.
func FromFormat(f formats.Level) (Level, error) {
	legend, err := legendFromTiles(f.Tiles)
	if err != nil {
		return Level{}, err
	}

	layout, err := ParseASCII(f.Grid, legend)
	if err != nil {
		return Level{}, err
	}

	// An explicit [spawn] table overrides the grid marker.
	if f.Spawn != nil {
		layout.Spawn = world.Point{X: f.Spawn.X, Y: f.Spawn.Y}
		layout.HasSpawn = true
	}

	return Level{
		ID:       f.ID,
		Name:     f.Name,
		Layout:   layout,
		Legend:   legend,
		Exits:    f.Exits,
		Sequence: f.Sequence,
		Metadata: f.Metadata,
	}, nil
}

// legendFromTiles fills a legend from declared tiles over the defaults.
func legendFromTiles(t formats.Tiles) (Legend, error) {
	legend := DefaultLegend()

	for _, field := range []struct {
		name string
		val  string
		dst  *rune
	}{
		{"wall", t.Wall, &legend.Wall},
		{"floor", t.Floor, &legend.Floor},
		{"spawn", t.Spawn, &legend.Spawn},
	} {
		if field.val == "" {
			continue
		}
		if utf8.RuneCountInString(field.val) != 1 {
			return Legend{}, fmt.Errorf("%w: %s = %q", ErrBadTile, field.name, field.val)
		}
		r, _ := utf8.DecodeRuneInString(field.val)
		*field.dst = r
	}

	legend.Solids = []rune(t.Solid)
	return legend, nil
}
