package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated LOD statistics for a frame window.
type WindowStats struct {
	WindowStartFrame int32 `csv:"-"`
	WindowEndFrame   int32 `csv:"window_end"`
	Frames           int   `csv:"frames"`
	Entities         int   `csv:"entities"`
	Bias             int   `csv:"bias"`

	// Events during window
	Recomputes    int     `csv:"recomputes"`
	CoarseWrites  int     `csv:"coarse_writes"`
	FineWrites    int     `csv:"fine_writes"`
	LevelChanges  int     `csv:"level_changes"`
	Swaps         int     `csv:"swaps"`
	SwapsPerFrame float64 `csv:"swaps_per_frame"`
	BiasChanges   int     `csv:"bias_changes"`
	SkippedFrames int     `csv:"skipped_frames"`

	// Level distribution at window end
	LevelMean float64 `csv:"level_mean"`
	LevelStd  float64 `csv:"level_std"`
	LevelP50  float64 `csv:"level_p50"`
	LevelP90  float64 `csv:"level_p90"`
	LevelMax  float64 `csv:"level_max"`
}

// LevelStats summarises a set of levels.
type LevelStats struct {
	Mean, Std float64
	P50, P90  float64
	Max       float64
}

// ComputeLevelStats returns the distribution of levels. Empty input yields zeros.
func ComputeLevelStats(levels []uint8) LevelStats {
	if len(levels) == 0 {
		return LevelStats{}
	}

	xs := make([]float64, len(levels))
	for i, l := range levels {
		xs[i] = float64(l)
	}
	sort.Float64s(xs)

	var ls LevelStats
	if len(xs) > 1 {
		ls.Mean, ls.Std = stat.MeanStdDev(xs, nil)
	} else {
		ls.Mean = xs[0]
	}
	ls.P50 = stat.Quantile(0.5, stat.Empirical, xs, nil)
	ls.P90 = stat.Quantile(0.9, stat.Empirical, xs, nil)
	ls.Max = xs[len(xs)-1]
	return ls
}

// Histogram counts levels into n buckets; levels >= n land in the last bucket.
func Histogram(levels []uint8, n int) []int {
	if n < 1 {
		return nil
	}
	h := make([]int, n)
	for _, l := range levels {
		i := int(l)
		if i >= n {
			i = n - 1
		}
		h[i]++
	}
	return h
}

// LogStats logs the window summary.
func (s WindowStats) LogStats() {
	slog.Info("lod", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Int("entities", s.Entities),
		slog.Int("bias", s.Bias),
		slog.Int("recomputes", s.Recomputes),
		slog.Int("fine_writes", s.FineWrites),
		slog.Int("swaps", s.Swaps),
		slog.Float64("swaps_per_frame", s.SwapsPerFrame),
		slog.Float64("level_mean", s.LevelMean),
		slog.Float64("level_p90", s.LevelP90),
	)
}
