// Package actor turns input state into motion requests for the resolver.
// It owns nothing but arithmetic: bodies are passed in by the caller.
package actor

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/physics"
	"github.com/vovakirdan/tilewalk/internal/world"
)

// ErrSpawnBlocked is returned when a spawn rectangle overlaps a solid cell.
var ErrSpawnBlocked = errors.New("actor: spawn overlaps a solid cell")

// Input is the directional state sampled once per tick.
type Input struct {
	Left, Right, Up, Down bool
}

// Any returns true if any direction is held.
func (in Input) Any() bool {
	return in.Left || in.Right || in.Up || in.Down
}

// NewPlayer creates the player's body inside the given spawn cell.
func NewPlayer(spawn world.Point, cfg config.PlayerConfig) *physics.Body {
	return &physics.Body{
		X:     float64(spawn.X) + cfg.SpawnOffset,
		Y:     float64(spawn.Y) + cfg.SpawnOffset,
		W:     cfg.Width,
		H:     cfg.Height,
		Speed: cfg.Speed,
	}
}

// Direction returns the unit movement intent for the input.
// Opposite keys cancel out; diagonals are scaled by 1/√2 so they are no
// faster than straight moves.
func Direction(in Input) (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if dx != 0 && dy != 0 {
		dx *= math.Sqrt2 / 2
		dy *= math.Sqrt2 / 2
	}
	return dx, dy
}

// Displacement returns the movement for one tick of dt seconds.
func Displacement(in Input, speed, dt float64) (dx, dy float64) {
	dx, dy = Direction(in)
	return dx * speed * dt, dy * speed * dt
}

// Update advances b by one tick. Both axes go through a single resolver
// call so substeps are sized from the full diagonal displacement.
func Update(b *physics.Body, in Input, dt float64, g physics.Grid) {
	dx, dy := Displacement(in, b.Speed, dt)
	if dx == 0 && dy == 0 {
		return
	}
	physics.TryMove(b, dx, dy, g)
}

// ValidateSpawn checks that a freshly placed body is clear of solid cells.
// This is a level-load check; the resolver itself never performs it.
func ValidateSpawn(g *world.Grid, b *physics.Body) error {
	if g.Overlaps(b.X, b.Y, b.W, b.H) {
		return fmt.Errorf("%w: rect (%.2f, %.2f, %.2f x %.2f)", ErrSpawnBlocked, b.X, b.Y, b.W, b.H)
	}
	return nil
}
