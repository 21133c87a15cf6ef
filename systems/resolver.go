package systems

import (
	"log/slog"
	"reflect"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lodgroups/components"
	"github.com/pthm-cable/lodgroups/lod"
)

// ResolverStats describes the work done by a ResolverSystem in one update.
type ResolverStats struct {
	HasViewpoint bool
	Recomputed   bool // Coarse pass re-resolved every entity
	CoarseWrites int
	FineWrites   int
	Changes      int // Writes that changed a level
}

// ResolverSystem keeps CurrentLOD up to date for every entity with a
// GlobalTransform, measured from the entity marked with C.
//
// The coarse pass re-resolves everything once the viewpoint has moved past
// the resolver's threshold since the last full pass. The fine pass
// re-resolves entities whose own transform moved this frame.
type ResolverSystem[C any] struct {
	resolver  lod.Resolver
	tracker   lod.Tracker
	viewpoint *ecs.Filter2[C, components.GlobalTransform]
	targets   *ecs.Filter2[components.GlobalTransform, components.CurrentLOD]
	stats     ResolverStats
	warned    bool
}

// NewResolverSystem creates a resolver system for marker C.
func NewResolverSystem[C any](w *ecs.World, resolver lod.Resolver) *ResolverSystem[C] {
	return &ResolverSystem[C]{
		resolver:  resolver,
		viewpoint: ecs.NewFilter2[C, components.GlobalTransform](w),
		targets:   ecs.NewFilter2[components.GlobalTransform, components.CurrentLOD](w),
	}
}

// Update runs the coarse pass followed by the fine pass.
// Both are skipped when no viewpoint exists.
func (s *ResolverSystem[C]) Update(w *ecs.World) {
	s.stats = ResolverStats{}
	pos, ok := s.Viewpoint()
	if !ok {
		return
	}
	s.Coarse(pos)
	s.Fine(pos)
}

// Viewpoint returns the position of the first C-marked entity in query order.
// When none exists the next coarse pass is forced to recompute everything.
func (s *ResolverSystem[C]) Viewpoint() (r3.Vec, bool) {
	var pos r3.Vec
	found := 0
	query := s.viewpoint.Query()
	for query.Next() {
		_, tr := query.Get()
		if found == 0 {
			pos = tr.Translation
		}
		found++
	}

	if found > 1 && !s.warned {
		var marker C
		slog.Warn("multiple LOD viewpoints, using the first",
			"marker", reflect.TypeOf(marker).String(),
			"count", found,
		)
		s.warned = true
	}
	s.stats.HasViewpoint = found > 0
	if found == 0 {
		// Moves seen while no viewpoint exists are lost to the fine pass
		s.tracker.Reset()
	}
	return pos, found > 0
}

// Coarse re-resolves every entity if the viewpoint moved far enough since
// the last full pass. Returns whether a recompute happened.
func (s *ResolverSystem[C]) Coarse(viewpoint r3.Vec) bool {
	if !s.tracker.Due(viewpoint, s.resolver.Resolution()) {
		return false
	}
	s.stats.Recomputed = true

	query := s.targets.Query()
	for query.Next() {
		tr, cur := query.Get()
		if cur.Set(s.resolve(viewpoint, tr)) {
			s.stats.Changes++
		}
		s.stats.CoarseWrites++
	}
	return true
}

// Fine re-resolves entities whose transform moved this frame.
func (s *ResolverSystem[C]) Fine(viewpoint r3.Vec) {
	query := s.targets.Query()
	for query.Next() {
		tr, cur := query.Get()
		if !tr.Moved() {
			continue
		}
		if cur.Set(s.resolve(viewpoint, tr)) {
			s.stats.Changes++
		}
		s.stats.FineWrites++
	}
}

// Stats returns the counters of the last update.
func (s *ResolverSystem[C]) Stats() ResolverStats {
	return s.stats
}

// ResetStats clears the counters when passes are driven individually.
func (s *ResolverSystem[C]) ResetStats() {
	s.stats = ResolverStats{}
}

// Invalidate forces the next coarse pass to re-resolve everything.
func (s *ResolverSystem[C]) Invalidate() {
	s.tracker.Reset()
}

func (s *ResolverSystem[C]) resolve(viewpoint r3.Vec, tr *components.GlobalTransform) uint8 {
	return s.resolver.Resolve(r3.Norm2(r3.Sub(tr.Translation, viewpoint)))
}
