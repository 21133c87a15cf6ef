package lod

import (
	"errors"
	"testing"
)

type mesh struct {
	name     string
	vertices []float32
}

func (m mesh) Clone() mesh {
	return mesh{name: m.name, vertices: append([]float32(nil), m.vertices...)}
}

func TestNewGroupRejectsEmpty(t *testing.T) {
	if _, err := NewGroup[int](); !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("expected ErrEmptyGroup, got %v", err)
	}
}

func TestMustGroupPanicsOnEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	MustGroup[string]()
}

func TestGroupGetClamps(t *testing.T) {
	g := MustGroup(0, 1, 2, 3, 4, 5, 6)

	if g.Len() != 7 {
		t.Fatalf("expected 7 entries, got %d", g.Len())
	}

	for level := 0; level <= 255; level++ {
		want := level
		if want > 6 {
			want = 6
		}
		if got := g.Get(uint8(level)); got != want {
			t.Errorf("Get(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestGroupSingleEntry(t *testing.T) {
	g := MustGroup("only")
	for _, level := range []uint8{0, 1, 128, 255} {
		if got := g.Get(level); got != "only" {
			t.Errorf("Get(%d) = %q", level, got)
		}
		if g.Index(level) != 0 {
			t.Errorf("Index(%d) = %d, want 0", level, g.Index(level))
		}
	}
}

func TestGroupCopiesInput(t *testing.T) {
	reps := []int{10, 20}
	g := MustGroup(reps...)
	reps[0] = 99
	if g.Get(0) != 10 {
		t.Error("group should not alias the caller's slice")
	}
}

func TestGroupGetClonesCloners(t *testing.T) {
	g := MustGroup(mesh{name: "fine", vertices: []float32{1, 2, 3}}, mesh{name: "coarse"})

	a := g.Get(0)
	a.vertices[0] = 42

	b := g.Get(0)
	if b.vertices[0] != 1 {
		t.Error("mutating a returned representation leaked into the group")
	}
	if g.Get(200).name != "coarse" {
		t.Error("expected coarse mesh for out-of-range level")
	}
}

func TestBiasedLookupScenario(t *testing.T) {
	// 7 representations, bias -4, resolved level 2 -> level 0 installed.
	g := MustGroup(0, 1, 2, 3, 4, 5, 6)
	s := Settings{Bias: -4}

	if got := g.Get(s.Apply(2)); got != 0 {
		t.Errorf("expected representation 0, got %d", got)
	}

	// Positive bias past the table clamps to the coarsest entry.
	s.Bias = 127
	if got := g.Get(s.Apply(200)); got != 6 {
		t.Errorf("expected representation 6, got %d", got)
	}
}
