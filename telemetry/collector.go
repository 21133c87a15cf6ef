package telemetry

// Collector accumulates LOD events within frame windows and produces WindowStats.
type Collector struct {
	windowFrames int32

	// Current window tracking
	windowStartFrame int32

	// Event counters for current window
	recomputes   int
	coarseWrites int
	fineWrites   int
	changes      int
	swaps        int
	biasChanges  int
	skipped      int // Frames without a viewpoint
}

// FrameEvents is what the LOD systems did in one frame.
type FrameEvents struct {
	HasViewpoint bool
	Recomputed   bool
	CoarseWrites int
	FineWrites   int
	Changes      int
	Swaps        int
	BiasChanged  bool
}

// NewCollector creates a new stats collector flushing every windowFrames frames.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{windowFrames: int32(windowFrames)}
}

// Record adds one frame's events to the current window.
func (c *Collector) Record(ev FrameEvents) {
	if !ev.HasViewpoint {
		c.skipped++
	}
	if ev.Recomputed {
		c.recomputes++
	}
	if ev.BiasChanged {
		c.biasChanges++
	}
	c.coarseWrites += ev.CoarseWrites
	c.fineWrites += ev.FineWrites
	c.changes += ev.Changes
	c.swaps += ev.Swaps
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame int32) bool {
	return currentFrame-c.windowStartFrame >= c.windowFrames
}

// Flush produces a WindowStats and resets counters for the next window.
// levels holds the current level of every tracked entity.
func (c *Collector) Flush(currentFrame int32, levels []uint8, bias int8) WindowStats {
	frames := currentFrame - c.windowStartFrame
	dist := ComputeLevelStats(levels)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		Frames:           int(frames),
		Entities:         len(levels),
		Bias:             int(bias),

		Recomputes:    c.recomputes,
		CoarseWrites:  c.coarseWrites,
		FineWrites:    c.fineWrites,
		LevelChanges:  c.changes,
		Swaps:         c.swaps,
		BiasChanges:   c.biasChanges,
		SkippedFrames: c.skipped,

		LevelMean: dist.Mean,
		LevelStd:  dist.Std,
		LevelP50:  dist.P50,
		LevelP90:  dist.P90,
		LevelMax:  dist.Max,
	}
	if frames > 0 {
		stats.SwapsPerFrame = float64(c.swaps) / float64(frames)
	}

	c.windowStartFrame = currentFrame
	c.recomputes = 0
	c.coarseWrites = 0
	c.fineWrites = 0
	c.changes = 0
	c.swaps = 0
	c.biasChanges = 0
	c.skipped = 0

	return stats
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() int32 {
	return c.windowFrames
}
