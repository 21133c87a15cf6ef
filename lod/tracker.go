package lod

import "gonum.org/v1/gonum/spatial/r3"

// Tracker remembers the viewpoint position of the last full recompute.
// It is owned by a single resolver system and never shared.
type Tracker struct {
	last r3.Vec
	has  bool
}

// Due reports whether a full recompute is needed for a viewpoint at pos.
// A recompute is due when none has happened yet or when the viewpoint moved
// at least threshold (squared distance) away from the last recompute
// position. When due, pos becomes the new recompute position.
func (t *Tracker) Due(pos r3.Vec, threshold float64) bool {
	if t.has && r3.Norm2(r3.Sub(pos, t.last)) < threshold {
		return false
	}
	t.last = pos
	t.has = true
	return true
}

// Last returns the last recompute position, if any.
func (t *Tracker) Last() (r3.Vec, bool) {
	return t.last, t.has
}

// Reset forgets the last recompute position so the next Due call fires.
func (t *Tracker) Reset() {
	t.last = r3.Vec{}
	t.has = false
}
