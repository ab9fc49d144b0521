package sequences

import (
	"fmt"
)

// Hints shown under a frame.
const (
	HintContinue = "Press any key to continue"
	HintFinish   = "Press any key to finish"
)

// SeenStore records which sequences have already been shown.
type SeenStore interface {
	HasSeen(id string) (bool, error)
	MarkSeen(id string) error
}

// MemoryStore is an in-process SeenStore.
type MemoryStore map[string]bool

// HasSeen reports whether id was marked.
func (m MemoryStore) HasSeen(id string) (bool, error) {
	return m[id], nil
}

// MarkSeen marks id.
func (m MemoryStore) MarkSeen(id string) error {
	m[id] = true
	return nil
}

// Director plays at most one sequence at a time.
type Director struct {
	catalog Catalog
	seen    SeenStore

	active *Sequence
	index  int
}

// NewDirector creates a director. A nil store keeps flags in memory.
func NewDirector(catalog Catalog, seen SeenStore) *Director {
	if seen == nil {
		seen = MemoryStore{}
	}
	return &Director{catalog: catalog, seen: seen}
}

// Start begins the sequence with the given id if it should be shown.
// Unknown and frameless sequences are marked seen without playing;
// already seen sequences are skipped. Returns true if a sequence is now
// active.
func (d *Director) Start(id string) (bool, error) {
	if id == "" || d.active != nil {
		return false, nil
	}

	seq, ok := d.catalog[id]
	if !ok {
		return false, d.mark(id)
	}

	seen, err := d.seen.HasSeen(id)
	if err != nil {
		return false, fmt.Errorf("sequences: checking %s: %w", id, err)
	}
	if seen {
		return false, nil
	}

	if len(seq.Frames) == 0 {
		return false, d.mark(id)
	}

	d.active = &seq
	d.index = 0
	return true, nil
}

// Active reports whether a sequence is playing.
func (d *Director) Active() bool {
	return d.active != nil
}

// Current returns the playing sequence's ID.
func (d *Director) Current() string {
	if d.active == nil {
		return ""
	}
	return d.active.ID
}

// Frame returns the frame on screen and its 1-based position.
func (d *Director) Frame() (frame Frame, pos, total int, ok bool) {
	if d.active == nil {
		return Frame{}, 0, 0, false
	}
	return d.active.Frames[d.index], d.index + 1, len(d.active.Frames), true
}

// Hint returns the prompt for the current frame.
func (d *Director) Hint() string {
	if d.active == nil {
		return ""
	}
	if d.index < len(d.active.Frames)-1 {
		return HintContinue
	}
	return HintFinish
}

// Advance moves to the next frame. After the last frame the sequence ends
// and is marked seen. Returns true while a sequence is still active.
func (d *Director) Advance() (bool, error) {
	if d.active == nil {
		return false, nil
	}

	d.index++
	if d.index < len(d.active.Frames) {
		return true, nil
	}

	id := d.active.ID
	d.active = nil
	d.index = 0
	return false, d.mark(id)
}

func (d *Director) mark(id string) error {
	if err := d.seen.MarkSeen(id); err != nil {
		return fmt.Errorf("sequences: marking %s: %w", id, err)
	}
	return nil
}
