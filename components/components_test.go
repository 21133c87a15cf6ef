package components

import (
	"math"
	"testing"
)

func TestCurrentLODSetOnlyFlagsRealChanges(t *testing.T) {
	var lod CurrentLOD

	if lod.Changed() {
		t.Fatal("zero value should not be flagged as changed")
	}

	if lod.Set(0) {
		t.Error("writing the same level should not report a change")
	}
	if lod.Changed() {
		t.Error("writing the same level should not raise the flag")
	}

	if !lod.Set(3) {
		t.Error("expected change when level moves 0 -> 3")
	}
	if !lod.Changed() || lod.Level != 3 {
		t.Errorf("expected changed level 3, got level=%d changed=%v", lod.Level, lod.Changed())
	}

	lod.ClearChanged()
	if lod.Changed() {
		t.Error("flag should be cleared")
	}

	lod.Set(3)
	if lod.Changed() {
		t.Error("rewriting level 3 should not raise the flag")
	}
}

func TestGlobalTransformSync(t *testing.T) {
	tr := NewGlobalTransform(1, 2, 3)

	if !tr.Sync() {
		t.Error("first sync after spawn should report a change")
	}
	if tr.Sync() {
		t.Error("second sync without movement should not report a change")
	}
	if tr.Moved() {
		t.Error("Moved should mirror the last sync")
	}

	tr.Translation.X = 5
	if !tr.Sync() {
		t.Error("expected change after translation moved")
	}
	if !tr.Moved() {
		t.Error("Moved should report the latched change")
	}
	if tr.Sync() {
		t.Error("change should only be reported once")
	}
}

func TestGlobalTransformDistanceSquared(t *testing.T) {
	a := NewGlobalTransform(0, 0, 0)
	b := NewGlobalTransform(3, 4, 12)

	if got := a.DistanceSquared(&b); math.Abs(got-169) > 1e-9 {
		t.Errorf("expected 169, got %f", got)
	}
	if got := b.DistanceSquared(&a); math.Abs(got-169) > 1e-9 {
		t.Errorf("distance should be symmetric, got %f", got)
	}
}
