// Package renderer draws the LOD scene with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lodgroups/camera"
	"github.com/pthm-cable/lodgroups/components"
)

// SphereDetail is one level of a sphere's representation.
type SphereDetail struct {
	Rings  int32
	Slices int32
	Radius float32
	Color  rl.Color
	Wire   bool // Draw wireframe on top so tessellation is visible
}

// Triangles returns the approximate triangle count of the tessellation.
func (d SphereDetail) Triangles() int {
	return int(2 * d.Rings * d.Slices)
}

// MinRings is the coarsest tessellation that still reads as a sphere.
const MinRings = 3

// SphereLevels builds n levels of detail for a sphere, finest first.
// Colors run from cold (detailed) to warm (coarse).
func SphereLevels(n int, radius float32) []SphereDetail {
	levels := make([]SphereDetail, n)
	for i := range levels {
		coarse := n - 1 - i
		rings := int32(MinRings + 4*coarse)
		levels[i] = SphereDetail{
			Rings:  rings,
			Slices: 2 * rings,
			Radius: radius,
			Color:  levelColor(i, n),
			Wire:   true,
		}
	}
	return levels
}

// levelColor interpolates blue -> red across the levels.
func levelColor(i, n int) rl.Color {
	t := float32(0)
	if n > 1 {
		t = float32(i) / float32(n-1)
	}
	return rl.Color{
		R: uint8(40 + 200*t),
		G: uint8(90 + 40*(1-t)),
		B: uint8(240 - 200*t),
		A: 255,
	}
}

// SceneRenderer draws every entity with an installed SphereDetail.
type SceneRenderer struct {
	filter *ecs.Filter2[components.GlobalTransform, SphereDetail]
	fov    float32
}

// NewSceneRenderer creates a renderer for the world.
func NewSceneRenderer(w *ecs.World, fov float32) *SceneRenderer {
	return &SceneRenderer{
		filter: ecs.NewFilter2[components.GlobalTransform, SphereDetail](w),
		fov:    fov,
	}
}

// Draw renders the scene from the rig. Must be called between
// rl.BeginDrawing and rl.EndDrawing.
func (r *SceneRenderer) Draw(rig *camera.Rig) int {
	cam := rl.Camera3D{
		Position:   vec3(rig.Position),
		Target:     vec3(rig.Target()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       r.fov,
		Projection: rl.CameraPerspective,
	}

	triangles := 0
	rl.BeginMode3D(cam)
	rl.DrawGrid(40, 10)

	query := r.filter.Query()
	for query.Next() {
		tr, d := query.Get()
		center := vec3(tr.Translation)
		rl.DrawSphereEx(center, d.Radius, d.Rings, d.Slices, d.Color)
		if d.Wire {
			rl.DrawSphereWires(center, d.Radius*1.002, d.Rings, d.Slices, rl.Fade(rl.Black, 0.35))
		}
		triangles += d.Triangles()
	}

	rl.EndMode3D()
	return triangles
}

func vec3(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
