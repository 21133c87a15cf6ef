package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lodgroups/camera"
	"github.com/pthm-cable/lodgroups/components"
	"github.com/pthm-cable/lodgroups/lod"
	"github.com/pthm-cable/lodgroups/renderer"
	"github.com/pthm-cable/lodgroups/systems"
)

// gridCenter returns the center of the object grid.
func (g *Game) gridCenter() r3.Vec {
	return r3.Vec{Z: g.cfg.Scene.OriginZ}
}

// gridOrigin returns the position of the first grid cell.
func (g *Game) gridOrigin() r3.Vec {
	sc := g.cfg.Scene
	return r3.Vec{
		X: -float64(sc.Columns-1) * sc.Spacing / 2,
		Z: sc.OriginZ - float64(sc.Rows-1)*sc.Spacing/2,
	}
}

// sceneBounds returns the box drifting objects stay inside.
func (g *Game) sceneBounds() systems.Bounds {
	sc := g.cfg.Scene
	lo := g.gridOrigin()
	margin := sc.Spacing
	return systems.Bounds{
		Min: r3.Vec{X: lo.X - margin, Y: -sc.Radius, Z: lo.Z - margin},
		Max: r3.Vec{
			X: lo.X + float64(sc.Columns-1)*sc.Spacing + margin,
			Y: sc.Radius * 4,
			Z: lo.Z + float64(sc.Rows-1)*sc.Spacing + margin,
		},
	}
}

// spawnScene creates the object grid and the viewpoint.
func (g *Game) spawnScene() {
	sc := g.cfg.Scene
	levels := renderer.SphereLevels(sc.Levels, float32(sc.Radius))

	static := ecs.NewMap3[components.GlobalTransform, components.CurrentLOD, lod.Group[renderer.SphereDetail]](g.world)
	drifting := ecs.NewMap4[components.GlobalTransform, components.CurrentLOD, lod.Group[renderer.SphereDetail], components.Velocity](g.world)

	origin := g.gridOrigin()
	i := 0
	for row := 0; row < sc.Rows; row++ {
		for col := 0; col < sc.Columns; col++ {
			tr := components.GlobalTransform{Translation: r3.Vec{
				X: origin.X + float64(col)*sc.Spacing,
				Z: origin.Z + float64(row)*sc.Spacing,
			}}
			group := lod.MustGroup(levels...)

			if g.cfg.Derived.DriftEvery > 0 && i%g.cfg.Derived.DriftEvery == g.cfg.Derived.DriftEvery-1 {
				vel := g.randomVelocity(sc.DriftSpeed)
				drifting.NewEntity(&tr, &components.CurrentLOD{}, &group, &vel)
			} else {
				static.NewEntity(&tr, &components.CurrentLOD{}, &group)
			}
			i++
		}
	}
	g.objects = i

	g.spawnViewpoint()
}

// spawnViewpoint creates the camera entity and the rig that drives it.
func (g *Game) spawnViewpoint() {
	cc := g.cfg.Camera
	g.orbit = camera.Orbit{
		Center: g.gridCenter(),
		Radius: cc.OrbitRadius,
		Height: cc.OrbitHeight,
		Speed:  cc.OrbitSpeed,
	}

	start := g.orbit.At(0)
	g.rig = camera.New(start, cc.Speed, cc.Sensitivity)
	g.rig.LookAt(g.orbit.Center)

	tr := components.GlobalTransform{Translation: start}
	g.cameraEntity = ecs.NewMap2[components.Camera, components.GlobalTransform](g.world).
		NewEntity(&components.Camera{}, &tr)
}

// randomVelocity returns a horizontal drift of the given speed.
func (g *Game) randomVelocity(speed float64) components.Velocity {
	a := g.rng.Float64() * 2 * math.Pi
	return components.Velocity{Vec: r3.Vec{X: speed * math.Cos(a), Z: speed * math.Sin(a)}}
}
