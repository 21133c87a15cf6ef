// Package camera provides the viewpoint rig that the LOD systems measure from.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Pitch limits keep the rig from flipping over the poles.
const (
	MinPitch = -math.Pi/2 + 0.01
	MaxPitch = math.Pi/2 - 0.01
)

// Rig is a first-person fly camera.
type Rig struct {
	// Position is the eye position in world coordinates
	Position r3.Vec

	// Yaw around +Y and pitch above the horizon, in radians.
	// Yaw 0 looks down -Z.
	Yaw, Pitch float64

	// Speed in world units per second
	Speed float64

	// Sensitivity in radians per mouse pixel
	Sensitivity float64
}

// New creates a rig at pos looking down -Z.
func New(pos r3.Vec, speed, sensitivity float64) *Rig {
	return &Rig{
		Position:    pos,
		Speed:       speed,
		Sensitivity: sensitivity,
	}
}

// Forward returns the unit view direction.
func (r *Rig) Forward() r3.Vec {
	cp := math.Cos(r.Pitch)
	return r3.Vec{
		X: -math.Sin(r.Yaw) * cp,
		Y: math.Sin(r.Pitch),
		Z: -math.Cos(r.Yaw) * cp,
	}
}

// Right returns the horizontal unit vector to the right of the view.
func (r *Rig) Right() r3.Vec {
	return r3.Vec{X: math.Cos(r.Yaw), Z: -math.Sin(r.Yaw)}
}

// Target returns a point one unit in front of the eye.
func (r *Rig) Target() r3.Vec {
	return r3.Add(r.Position, r.Forward())
}

// Move translates the rig along its local axes.
// forward, right and up are in [-1, 1]; up moves along world +Y.
func (r *Rig) Move(forward, right, up, dt float64) {
	dir := r3.Add(r3.Scale(forward, r.Forward()), r3.Scale(right, r.Right()))
	dir = r3.Add(dir, r3.Vec{Y: up})
	if r3.Norm2(dir) == 0 {
		return
	}
	r.Position = r3.Add(r.Position, r3.Scale(r.Speed*dt, r3.Unit(dir)))
}

// Look rotates the rig by a mouse delta in pixels.
func (r *Rig) Look(dx, dy float64) {
	r.Yaw = wrapAngle(r.Yaw - dx*r.Sensitivity)
	r.Pitch = clamp(r.Pitch-dy*r.Sensitivity, MinPitch, MaxPitch)
}

// LookAt points the rig at a world position.
func (r *Rig) LookAt(target r3.Vec) {
	d := r3.Sub(target, r.Position)
	if r3.Norm2(d) == 0 {
		return
	}
	horiz := math.Hypot(d.X, d.Z)
	r.Yaw = math.Atan2(-d.X, -d.Z)
	r.Pitch = clamp(math.Atan2(d.Y, horiz), MinPitch, MaxPitch)
}

// Orbit is a scripted circular path used when no input is available.
type Orbit struct {
	Center r3.Vec
	Radius float64
	Height float64
	Speed  float64 // Radians per second
}

// At returns the position on the orbit after t seconds.
func (o Orbit) At(t float64) r3.Vec {
	a := o.Speed * t
	return r3.Vec{
		X: o.Center.X + o.Radius*math.Cos(a),
		Y: o.Center.Y + o.Height,
		Z: o.Center.Z + o.Radius*math.Sin(a),
	}
}

// wrapAngle wraps angle to [-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
