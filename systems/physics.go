package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lodgroups/components"
)

// Bounds is an axis-aligned box that drifting objects bounce inside.
type Bounds struct {
	Min, Max r3.Vec
}

// MotionSystem moves entities with a Velocity.
type MotionSystem struct {
	filter *ecs.Filter2[components.GlobalTransform, components.Velocity]
	bounds Bounds
}

// NewMotionSystem creates a motion system confined to bounds.
func NewMotionSystem(w *ecs.World, bounds Bounds) *MotionSystem {
	return &MotionSystem{
		filter: ecs.NewFilter2[components.GlobalTransform, components.Velocity](w),
		bounds: bounds,
	}
}

// Update advances every moving entity by dt seconds.
// Positions reflect off the bounds and the matching velocity component flips.
func (s *MotionSystem) Update(w *ecs.World, dt float64) {
	query := s.filter.Query()
	for query.Next() {
		tr, vel := query.Get()
		p := r3.Add(tr.Translation, r3.Scale(dt, vel.Vec))

		p.X, vel.X = bounce(p.X, vel.X, s.bounds.Min.X, s.bounds.Max.X)
		p.Y, vel.Y = bounce(p.Y, vel.Y, s.bounds.Min.Y, s.bounds.Max.Y)
		p.Z, vel.Z = bounce(p.Z, vel.Z, s.bounds.Min.Z, s.bounds.Max.Z)

		tr.Translation = p
	}
}

func bounce(p, v, lo, hi float64) (float64, float64) {
	if lo >= hi {
		return p, v
	}
	if p < lo {
		return lo + (lo - p), -v
	}
	if p > hi {
		return hi - (p - hi), -v
	}
	return p, v
}
