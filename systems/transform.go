// Package systems provides the ECS systems that drive LOD resolution.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lodgroups/components"
)

// TransformSystem latches per-frame transform changes.
// It must run after anything that moves entities and before the LOD passes.
type TransformSystem struct {
	filter *ecs.Filter1[components.GlobalTransform]
	moved  int
}

// NewTransformSystem creates a new transform system.
func NewTransformSystem(w *ecs.World) *TransformSystem {
	return &TransformSystem{
		filter: ecs.NewFilter1[components.GlobalTransform](w),
	}
}

// Update syncs every transform and counts the ones that moved.
func (s *TransformSystem) Update(w *ecs.World) {
	s.moved = 0
	query := s.filter.Query()
	for query.Next() {
		if query.Get().Sync() {
			s.moved++
		}
	}
}

// Moved returns the number of transforms that changed in the last update.
func (s *TransformSystem) Moved() int {
	return s.moved
}
