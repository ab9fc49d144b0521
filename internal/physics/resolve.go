// Package physics moves axis-aligned rectangles through a tile grid.
//
// TryMove is the only entry point that changes a Body. It splits the
// requested displacement into bounded substeps and resolves X before Y in
// each substep, scanning every cell along the leading edge. Positions and
// sizes are in cell units: cell (tx, ty) covers [tx, tx+1) x [ty, ty+1).
package physics

import (
	"math"

	"github.com/vovakirdan/tilewalk/internal/world"
)

const (
	// StepLimit is the largest displacement, in cells, applied on either
	// axis in one substep. Keeping it under half a cell means a substep can
	// never carry a leading edge across a one-cell wall.
	StepLimit = 0.45

	// Epsilon shifts edge samples off exact cell boundaries. A leading edge
	// lying on a boundary samples the cell it is entering, and the span of
	// covered rows/columns excludes cells the rectangle only touches.
	//
	// The no-penetration guarantee holds up to Epsilon: a move that ends
	// less than Epsilon short of a solid cell is committed as is, leaving
	// the body overlapping that cell by at most Epsilon. Such an overlap
	// is invisible to later scans and never grows.
	Epsilon = 1e-6
)

// Grid is the read-only view of the world the resolver needs.
type Grid interface {
	At(x, y int) world.Symbol
	IsSolid(s world.Symbol) bool
}

// Body is an actor's collision rectangle. X and Y are the top-left corner.
type Body struct {
	X, Y  float64
	W, H  float64
	Speed float64 // cells per second, used by drivers only
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the rectangle.
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Steps returns the number of substeps TryMove uses for (dx, dy).
func Steps(dx, dy float64) int {
	steps := 1
	if n := int(math.Ceil(math.Abs(dx) / StepLimit)); n > steps {
		steps = n
	}
	if n := int(math.Ceil(math.Abs(dy) / StepLimit)); n > steps {
		steps = n
	}
	return steps
}

// Span returns the first and last cell index covered by an interval that
// starts at pos and is extent long, ignoring cells it only touches.
func Span(pos, extent float64) (first, last int) {
	return int(math.Floor(pos + Epsilon)), int(math.Floor(pos + extent - Epsilon))
}

// TryMove moves b by (dx, dy), stopping it flush against solid cells.
// It never fails: a body that starts inside a wall is snapped to the
// boundary of the first blocking cell it tests.
func TryMove(b *Body, dx, dy float64, g Grid) {
	steps := Steps(dx, dy)
	sx := dx / float64(steps)
	sy := dy / float64(steps)

	for range steps {
		moveX(b, sx, g)
		moveY(b, sy, g)
	}
}

func moveX(b *Body, step float64, g Grid) {
	if step == 0 {
		return
	}

	nx := b.X + step
	top, bottom := Span(b.Y, b.H)

	if step > 0 {
		tileX := int(math.Floor(nx + b.W - Epsilon))
		if columnBlocked(g, tileX, top, bottom) {
			b.X = float64(tileX) - b.W
			return
		}
	} else {
		tileX := int(math.Floor(nx + Epsilon))
		if columnBlocked(g, tileX, top, bottom) {
			b.X = float64(tileX + 1)
			return
		}
	}
	b.X = nx
}

func moveY(b *Body, step float64, g Grid) {
	if step == 0 {
		return
	}

	ny := b.Y + step
	left, right := Span(b.X, b.W)

	if step > 0 {
		tileY := int(math.Floor(ny + b.H - Epsilon))
		if rowBlocked(g, tileY, left, right) {
			b.Y = float64(tileY) - b.H
			return
		}
	} else {
		tileY := int(math.Floor(ny + Epsilon))
		if rowBlocked(g, tileY, left, right) {
			b.Y = float64(tileY + 1)
			return
		}
	}
	b.Y = ny
}

// columnBlocked scans column x from row top to row bottom inclusive.
func columnBlocked(g Grid, x, top, bottom int) bool {
	for y := top; y <= bottom; y++ {
		if g.IsSolid(g.At(x, y)) {
			return true
		}
	}
	return false
}

// rowBlocked scans row y from column left to column right inclusive.
func rowBlocked(g Grid, y, left, right int) bool {
	for x := left; x <= right; x++ {
		if g.IsSolid(g.At(x, y)) {
			return true
		}
	}
	return false
}
