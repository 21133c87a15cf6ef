package telemetry

import (
	"math"
	"testing"
)

func TestComputeLevelStats(t *testing.T) {
	s := ComputeLevelStats([]uint8{6, 0, 2, 4})

	if math.Abs(s.Mean-3) > 1e-9 {
		t.Errorf("expected mean 3, got %f", s.Mean)
	}
	// Sample standard deviation of {0,2,4,6}
	if math.Abs(s.Std-math.Sqrt(20.0/3.0)) > 1e-9 {
		t.Errorf("unexpected std %f", s.Std)
	}
	if s.Max != 6 {
		t.Errorf("expected max 6, got %f", s.Max)
	}
	if s.P50 < 0 || s.P50 > s.P90 || s.P90 > s.Max {
		t.Errorf("percentiles out of order: p50=%f p90=%f max=%f", s.P50, s.P90, s.Max)
	}
}

func TestComputeLevelStatsEdgeCases(t *testing.T) {
	if s := ComputeLevelStats(nil); s != (LevelStats{}) {
		t.Errorf("expected zero stats for empty input, got %+v", s)
	}

	s := ComputeLevelStats([]uint8{5})
	if s.Mean != 5 || s.Std != 0 || s.P50 != 5 || s.P90 != 5 || s.Max != 5 {
		t.Errorf("unexpected single-value stats %+v", s)
	}

	s = ComputeLevelStats([]uint8{3, 3, 3})
	if s.Mean != 3 || s.Std != 0 {
		t.Errorf("unexpected constant stats %+v", s)
	}
}

func TestHistogram(t *testing.T) {
	h := Histogram([]uint8{0, 1, 1, 6, 9, 255}, 7)
	want := []int{1, 2, 0, 0, 0, 0, 3}
	if len(h) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(h))
	}
	for i := range want {
		if h[i] != want[i] {
			t.Errorf("bucket %d: got %d, want %d", i, h[i], want[i])
		}
	}

	if Histogram([]uint8{1}, 0) != nil {
		t.Error("expected nil histogram for zero buckets")
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(10)

	if c.ShouldFlush(5) {
		t.Error("window should not be complete after 5 frames")
	}

	c.Record(FrameEvents{HasViewpoint: true, Recomputed: true, CoarseWrites: 4, Changes: 3, Swaps: 3})
	c.Record(FrameEvents{HasViewpoint: true, FineWrites: 1, Changes: 1, Swaps: 1})
	c.Record(FrameEvents{HasViewpoint: true, BiasChanged: true, Swaps: 4})
	c.Record(FrameEvents{})

	if !c.ShouldFlush(10) {
		t.Fatal("window should be complete after 10 frames")
	}

	stats := c.Flush(10, []uint8{0, 1, 2, 3}, -4)
	if stats.Frames != 10 || stats.Entities != 4 || stats.Bias != -4 {
		t.Errorf("unexpected header fields %+v", stats)
	}
	if stats.Recomputes != 1 || stats.CoarseWrites != 4 || stats.FineWrites != 1 {
		t.Errorf("unexpected write counters %+v", stats)
	}
	if stats.LevelChanges != 4 || stats.Swaps != 8 || stats.BiasChanges != 1 || stats.SkippedFrames != 1 {
		t.Errorf("unexpected event counters %+v", stats)
	}
	if math.Abs(stats.SwapsPerFrame-0.8) > 1e-9 {
		t.Errorf("expected 0.8 swaps per frame, got %f", stats.SwapsPerFrame)
	}
	if math.Abs(stats.LevelMean-1.5) > 1e-9 {
		t.Errorf("expected level mean 1.5, got %f", stats.LevelMean)
	}

	// Counters reset for the next window
	next := c.Flush(20, nil, 0)
	if next.WindowStartFrame != 10 || next.Swaps != 0 || next.Recomputes != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if c.ShouldFlush(25) {
		t.Error("new window should start at frame 20")
	}
}
