package components

import "gonum.org/v1/gonum/spatial/r3"

// GlobalTransform holds an entity's world-space translation together with
// the change flag latched by the transform system once per frame.
type GlobalTransform struct {
	Translation r3.Vec

	prev  r3.Vec
	seen  bool
	moved bool
}

// NewGlobalTransform creates a transform at the given world position.
func NewGlobalTransform(x, y, z float64) GlobalTransform {
	return GlobalTransform{Translation: r3.Vec{X: x, Y: y, Z: z}}
}

// Sync latches the translation observed this frame and reports whether it
// differs from the one latched on the previous call. The first call after
// spawn always reports a change.
func (t *GlobalTransform) Sync() bool {
	t.moved = !t.seen || t.Translation != t.prev
	t.prev = t.Translation
	t.seen = true
	return t.moved
}

// Moved reports the result of the most recent Sync.
func (t *GlobalTransform) Moved() bool {
	return t.moved
}

// DistanceSquared returns the squared distance between two transforms.
func (t *GlobalTransform) DistanceSquared(other *GlobalTransform) float64 {
	return r3.Norm2(r3.Sub(t.Translation, other.Translation))
}

// Velocity is a constant drift in world units per second.
type Velocity struct {
	r3.Vec
}

// Camera marks the viewpoint entity that LOD distances are measured from.
type Camera struct{}
