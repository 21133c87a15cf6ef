package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lodgroups/components"
	"github.com/pthm-cable/lodgroups/lod"
)

// GroupStats describes the work done by a GroupSystem in one update.
type GroupStats struct {
	Swaps       int
	BiasChanged bool
}

type pendingSwap[T any] struct {
	entity ecs.Entity
	rep    T
}

// GroupSystem installs the representation selected by each entity's
// CurrentLOD as component T.
//
// An entity is updated when its level changed, when it has no T yet, or when
// the global bias changed since the previous update.
type GroupSystem[T any] struct {
	filter   *ecs.Filter2[components.CurrentLOD, lod.Group[T]]
	reps     *ecs.Map1[T]
	pending  []pendingSwap[T]
	lastBias int8
	biasSeen bool
	stats    GroupStats
}

// NewGroupSystem creates a group system for representation type T.
// A default Settings resource is added to the world if none exists.
func NewGroupSystem[T any](w *ecs.World) *GroupSystem[T] {
	res := ecs.NewResource[lod.Settings](w)
	if !res.Has() {
		res.Add(&lod.Settings{})
	}
	return &GroupSystem[T]{
		filter: ecs.NewFilter2[components.CurrentLOD, lod.Group[T]](w),
		reps:   ecs.NewMap1[T](w),
	}
}

// Update swaps representations for changed entities.
func (s *GroupSystem[T]) Update(w *ecs.World) {
	s.stats = GroupStats{}

	var settings lod.Settings
	if res := ecs.NewResource[lod.Settings](w); res.Has() {
		settings = *res.Get()
	}
	s.stats.BiasChanged = s.biasSeen && settings.Bias != s.lastBias
	s.lastBias = settings.Bias
	s.biasSeen = true

	// Collect first: adding T is a structural change and the world is
	// locked while the query runs.
	s.pending = s.pending[:0]
	query := s.filter.Query()
	for query.Next() {
		cur, group := query.Get()
		entity := query.Entity()
		if !cur.Changed() && !s.stats.BiasChanged && s.reps.HasAll(entity) {
			continue
		}
		cur.ClearChanged()
		s.pending = append(s.pending, pendingSwap[T]{
			entity: entity,
			rep:    group.Get(settings.Apply(cur.Level)),
		})
	}

	for i := range s.pending {
		p := &s.pending[i]
		if s.reps.HasAll(p.entity) {
			*s.reps.Get(p.entity) = p.rep
		} else {
			s.reps.Add(p.entity, &p.rep)
		}
	}
	s.stats.Swaps = len(s.pending)

	// Drop references held by representations
	clear(s.pending)
}

// Stats returns the counters of the last update.
func (s *GroupSystem[T]) Stats() GroupStats {
	return s.stats
}
