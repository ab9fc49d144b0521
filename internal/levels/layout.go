package levels

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tilewalk/internal/world"
)

// ErrEmptyLayout is returned for a grid with no cells.
var ErrEmptyLayout = errors.New("levels: empty grid")

// DefaultSpawn is used when a grid has no spawn marker.
var DefaultSpawn = world.Point{X: 1, Y: 1}

// Legend names the symbols of a level grid.
type Legend struct {
	Wall   rune
	Floor  rune
	Spawn  rune
	Solids []rune // Extra solid symbols besides Wall
}

// DefaultLegend returns the legend used by levels that declare none.
func DefaultLegend() Legend {
	return Legend{Wall: '#', Floor: ' ', Spawn: 'P'}
}

// Layout is a normalized grid: every row has the same rune count.
type Layout struct {
	Rows     []string
	Spawn    world.Point
	HasSpawn bool // Whether a spawn marker was found in the grid
}

// Width returns the number of columns.
func (l Layout) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return utf8.RuneCountInString(l.Rows[0])
}

// Height returns the number of rows.
func (l Layout) Height() int {
	return len(l.Rows)
}

// ParseASCII turns grid text into a layout.
// Blank lines before the first and after the last row are dropped, short
// rows are padded with the floor symbol, and the spawn marker is replaced
// by floor. When several markers exist the last one in reading order wins.
func ParseASCII(text string, legend Legend) (Layout, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Layout{}, ErrEmptyLayout
	}

	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	layout := Layout{
		Rows:  make([]string, len(lines)),
		Spawn: DefaultSpawn,
	}

	for y, line := range lines {
		row := make([]rune, 0, width)
		for x, r := range []rune(line) {
			if r == legend.Spawn {
				layout.Spawn = world.Point{X: x, Y: y}
				layout.HasSpawn = true
				r = legend.Floor
			}
			row = append(row, r)
		}
		for len(row) < width {
			row = append(row, legend.Floor)
		}
		layout.Rows[y] = string(row)
	}

	return layout, nil
}
