package renderer

import "testing"

func TestSphereLevelsFinestFirst(t *testing.T) {
	levels := SphereLevels(7, 5)
	if len(levels) != 7 {
		t.Fatalf("expected 7 levels, got %d", len(levels))
	}

	for i := 1; i < len(levels); i++ {
		if levels[i].Triangles() >= levels[i-1].Triangles() {
			t.Errorf("level %d (%d tris) should be coarser than level %d (%d tris)",
				i, levels[i].Triangles(), i-1, levels[i-1].Triangles())
		}
	}

	last := levels[len(levels)-1]
	if last.Rings != MinRings {
		t.Errorf("coarsest level should use %d rings, got %d", MinRings, last.Rings)
	}
	for i, l := range levels {
		if l.Radius != 5 {
			t.Errorf("level %d: radius %f, want 5", i, l.Radius)
		}
		if l.Slices != 2*l.Rings {
			t.Errorf("level %d: slices %d, want %d", i, l.Slices, 2*l.Rings)
		}
	}
}

func TestSphereLevelsSingle(t *testing.T) {
	levels := SphereLevels(1, 2)
	if len(levels) != 1 || levels[0].Rings != MinRings {
		t.Errorf("unexpected single level %+v", levels)
	}
}

func TestLevelColorRunsColdToWarm(t *testing.T) {
	first := levelColor(0, 7)
	last := levelColor(6, 7)
	if first.B <= first.R {
		t.Errorf("finest level should be blue-ish, got %+v", first)
	}
	if last.R <= last.B {
		t.Errorf("coarsest level should be red-ish, got %+v", last)
	}
}
