package levels

import (
	"github.com/vovakirdan/tilewalk/internal/physics"
)

// Edge exit labels. An exit fires when the body is pressed flush against
// that border of the grid (the border itself is solid, so this is as far
// as the resolver lets it go).
const (
	ExitNorth = "north"
	ExitSouth = "south"
	ExitEast  = "east"
	ExitWest  = "west"
)

// ExitFor returns the level reached through the grid edge the body is
// touching, if that edge has an exit.
func (l *Level) ExitFor(b *physics.Body) (label, target string, ok bool) {
	if len(l.Exits) == 0 {
		return "", "", false
	}

	w := float64(l.Layout.Width())
	h := float64(l.Layout.Height())

	var edges []string
	if b.X <= physics.Epsilon {
		edges = append(edges, ExitWest)
	}
	if b.Right() >= w-physics.Epsilon {
		edges = append(edges, ExitEast)
	}
	if b.Y <= physics.Epsilon {
		edges = append(edges, ExitNorth)
	}
	if b.Bottom() >= h-physics.Epsilon {
		edges = append(edges, ExitSouth)
	}

	for _, edge := range edges {
		if target, ok := l.Exits[edge]; ok {
			return edge, target, true
		}
	}
	return "", "", false
}
