package levels

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tilewalk/internal/actor"
	"github.com/vovakirdan/tilewalk/internal/config"
)

var (
	// ErrUnknownExit is returned when an exit names a level that does not exist.
	ErrUnknownExit = errors.New("levels: exit targets unknown level")
	// ErrDuplicateID is returned when two files declare the same level ID.
	ErrDuplicateID = errors.New("levels: duplicate level id")
)

// Validate checks that a level builds into a world and that a player with
// the given settings can be placed at its spawn without overlapping a
// solid cell.
func Validate(l Level, player config.PlayerConfig) []error {
	var errs []error

	g, err := l.World()
	if err != nil {
		return append(errs, err)
	}

	spawn := l.Spawn()
	if !g.InBounds(spawn.X, spawn.Y) {
		errs = append(errs, fmt.Errorf("level %s: spawn (%d, %d) outside %dx%d grid", l.ID, spawn.X, spawn.Y, g.Width(), g.Height()))
	}

	if err := actor.ValidateSpawn(g, actor.NewPlayer(spawn, player)); err != nil {
		errs = append(errs, fmt.Errorf("level %s: %w", l.ID, err))
	}

	return errs
}

// ValidateCatalog validates every level plus cross-level references.
// The result maps level IDs to their problems; valid levels are omitted.
func ValidateCatalog(levels []Level, player config.PlayerConfig) map[string][]error {
	result := make(map[string][]error)
	known := make(map[string]string, len(levels))

	for _, l := range levels {
		if prev, dup := known[l.ID]; dup {
			result[l.ID] = append(result[l.ID], fmt.Errorf("%w: %s in %s and %s", ErrDuplicateID, l.ID, prev, l.FilePath))
		}
		known[l.ID] = l.FilePath
	}

	for _, l := range levels {
		if errs := Validate(l, player); len(errs) > 0 {
			result[l.ID] = append(result[l.ID], errs...)
		}

		labels := make([]string, 0, len(l.Exits))
		for label := range l.Exits {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		for _, label := range labels {
			target := l.Exits[label]
			if _, ok := known[target]; !ok {
				result[l.ID] = append(result[l.ID], fmt.Errorf("%w: %s exit %q -> %q", ErrUnknownExit, l.ID, label, target))
			}
		}
	}

	return result
}
