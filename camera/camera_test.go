package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func near(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < 1e-9
}

func TestNewLooksDownNegativeZ(t *testing.T) {
	rig := New(r3.Vec{}, 10, 0.01)

	if !near(rig.Forward(), r3.Vec{Z: -1}) {
		t.Errorf("expected forward (0,0,-1), got %v", rig.Forward())
	}
	if !near(rig.Right(), r3.Vec{X: 1}) {
		t.Errorf("expected right (1,0,0), got %v", rig.Right())
	}
}

func TestMoveUsesSpeedAndNormalizes(t *testing.T) {
	rig := New(r3.Vec{}, 10, 0.01)

	rig.Move(1, 0, 0, 0.5)
	if !near(rig.Position, r3.Vec{Z: -5}) {
		t.Errorf("expected (0,0,-5), got %v", rig.Position)
	}

	// Diagonal input should not be faster than straight input
	rig.Position = r3.Vec{}
	rig.Move(1, 1, 0, 1)
	if d := r3.Norm(rig.Position); math.Abs(d-10) > 1e-9 {
		t.Errorf("expected travelled distance 10, got %f", d)
	}

	rig.Position = r3.Vec{}
	rig.Move(0, 0, 0, 1)
	if rig.Position != (r3.Vec{}) {
		t.Errorf("zero input should not move, got %v", rig.Position)
	}
}

func TestLookClampsPitch(t *testing.T) {
	rig := New(r3.Vec{}, 1, 1)

	rig.Look(0, -100)
	if rig.Pitch != MaxPitch {
		t.Errorf("expected pitch clamped to %f, got %f", MaxPitch, rig.Pitch)
	}
	rig.Look(0, 200)
	if rig.Pitch != MinPitch {
		t.Errorf("expected pitch clamped to %f, got %f", MinPitch, rig.Pitch)
	}
}

func TestLookWrapsYaw(t *testing.T) {
	rig := New(r3.Vec{}, 1, 1)
	rig.Look(-4, 0)
	if rig.Yaw > math.Pi || rig.Yaw < -math.Pi {
		t.Errorf("yaw not wrapped: %f", rig.Yaw)
	}
}

func TestLookAt(t *testing.T) {
	rig := New(r3.Vec{}, 1, 1)

	targets := []r3.Vec{
		{X: 10},
		{Z: 10},
		{X: -3, Z: -4},
		{X: 1, Y: 1, Z: -1},
	}
	for _, target := range targets {
		rig.LookAt(target)
		want := r3.Unit(target)
		if !near(rig.Forward(), want) {
			t.Errorf("LookAt(%v): forward %v, want %v", target, rig.Forward(), want)
		}
	}
}

func TestOrbit(t *testing.T) {
	o := Orbit{Center: r3.Vec{Z: -10}, Radius: 5, Height: 2, Speed: math.Pi}

	if !near(o.At(0), r3.Vec{X: 5, Y: 2, Z: -10}) {
		t.Errorf("unexpected start %v", o.At(0))
	}
	if !near(o.At(1), r3.Vec{X: -5, Y: 2, Z: -10}) {
		t.Errorf("unexpected half-turn %v", o.At(1))
	}
	for _, tt := range []float64{0.1, 0.7, 3.3} {
		p := o.At(tt)
		flat := r3.Vec{X: p.X - o.Center.X, Z: p.Z - o.Center.Z}
		if math.Abs(r3.Norm(flat)-5) > 1e-9 {
			t.Errorf("t=%f: off the orbit radius: %v", tt, p)
		}
	}
}
