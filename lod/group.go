package lod

import "errors"

// ErrEmptyGroup is returned when a group is built without representations.
var ErrEmptyGroup = errors.New("lod: group needs at least one representation")

// Cloner is implemented by representations that need a deep copy when
// installed on an entity. Other types are copied by value.
type Cloner[T any] interface {
	Clone() T
}

// Group is an ordered table of representations indexed by level.
// Index 0 is the most detailed form, the last index the coarsest.
type Group[T any] struct {
	reps []T
}

// NewGroup creates a group from representations ordered from finest to coarsest.
func NewGroup[T any](reps ...T) (Group[T], error) {
	if len(reps) == 0 {
		return Group[T]{}, ErrEmptyGroup
	}
	return Group[T]{reps: append([]T(nil), reps...)}, nil
}

// MustGroup is like NewGroup but panics on an empty table.
func MustGroup[T any](reps ...T) Group[T] {
	g, err := NewGroup(reps...)
	if err != nil {
		panic(err)
	}
	return g
}

// Len returns the number of representations.
func (g *Group[T]) Len() int {
	return len(g.reps)
}

// Index clamps level into the valid index range.
func (g *Group[T]) Index(level uint8) int {
	i := int(level)
	if i >= len(g.reps) {
		i = len(g.reps) - 1
	}
	return i
}

// Get returns a copy of the representation for level, clamped to the
// coarsest entry when level exceeds the table. Get panics on a zero Group
// that was not built with NewGroup or MustGroup.
func (g *Group[T]) Get(level uint8) T {
	if len(g.reps) == 0 {
		panic(ErrEmptyGroup)
	}
	rep := g.reps[g.Index(level)]
	if c, ok := any(rep).(Cloner[T]); ok {
		return c.Clone()
	}
	return rep
}
