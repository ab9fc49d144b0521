// Package world provides the tile grid actors move through.
// A Grid is built once per map load and never mutated afterwards, so a
// single instance can be shared by any number of readers without locking.
package world

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// Symbol is the character stored in a grid cell.
type Symbol rune

// DefaultWall is the wall symbol used by levels that do not declare one.
const DefaultWall Symbol = '#'

var (
	// ErrEmptyGrid is returned when a grid has no rows or no columns.
	ErrEmptyGrid = errors.New("world: empty grid")
	// ErrRaggedRows is returned when rows differ in length.
	ErrRaggedRows = errors.New("world: rows have different widths")
)

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Grid is a row-major grid of cell symbols.
type Grid struct {
	width  int
	height int
	cells  []Symbol
	wall   Symbol
	solids map[Symbol]bool
}

// Option configures a Grid at build time.
type Option func(*Grid)

// WithSolids marks additional symbols as solid. The wall is always solid.
func WithSolids(symbols ...Symbol) Option {
	return func(g *Grid) {
		for _, s := range symbols {
			g.solids[s] = true
		}
	}
}

// Build creates a grid from already-normalized rows.
// Every row must hold the same number of runes.
func Build(rows []string, wall Symbol, opts ...Option) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		width:  width,
		height: len(rows),
		cells:  make([]Symbol, 0, width*len(rows)),
		wall:   wall,
		solids: map[Symbol]bool{wall: true},
	}

	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, n, width)
		}
		for _, r := range row {
			g.cells = append(g.cells, Symbol(r))
		}
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Wall returns the symbol reported for out-of-bounds cells.
func (g *Grid) Wall() Symbol {
	return g.wall
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the symbol at (x, y).
// Coordinates outside the grid always return the wall symbol, so the
// border of the map behaves like a solid wall.
func (g *Grid) At(x, y int) Symbol {
	if !g.InBounds(x, y) {
		return g.wall
	}
	return g.cells[y*g.width+x]
}

// IsSolid reports whether a symbol blocks movement.
func (g *Grid) IsSolid(s Symbol) bool {
	return g.solids[s]
}

// SolidAt is shorthand for IsSolid(At(x, y)).
func (g *Grid) SolidAt(x, y int) bool {
	return g.IsSolid(g.At(x, y))
}

// Overlaps reports whether the rectangle (x, y, w, h) covers any part of a
// solid cell. Touching a solid cell along an edge is not an overlap.
func (g *Grid) Overlaps(x, y, w, h float64) bool {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x+w)) - 1
	y1 := int(math.Ceil(y+h)) - 1

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if !g.SolidAt(tx, ty) {
				continue
			}
			// Open-interval test against the unit cell.
			if x < float64(tx+1) && x+w > float64(tx) && y < float64(ty+1) && y+h > float64(ty) {
				return true
			}
		}
	}
	return false
}

// Rows returns a copy of the grid as strings, one per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := range g.height {
		row := make([]rune, g.width)
		for x := range g.width {
			row[x] = rune(g.cells[y*g.width+x])
		}
		rows[y] = string(row)
	}
	return rows
}
