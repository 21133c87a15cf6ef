package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the frame step. They match the system registry IDs.
const (
	PhaseCamera    = "camera"
	PhaseMotion    = "motion"
	PhaseTransform = "transform"
	PhaseLODCoarse = "lod_coarse"
	PhaseLODFine   = "lod_fine"
	PhaseLODSwap   = "lod_swap"
	PhaseTelemetry = "telemetry"
)

// Phases lists the frame phases in execution order.
var Phases = []string{
	PhaseCamera, PhaseMotion, PhaseTransform,
	PhaseLODCoarse, PhaseLODFine, PhaseLODSwap,
	PhaseTelemetry,
}

// PerfSample holds timing data for a single frame step.
type PerfSample struct {
	Step   time.Duration
	Phases map[string]time.Duration
}

// PerfCollector tracks step timings over a rolling window.
type PerfCollector struct {
	samples     []PerfSample
	next        int
	count       int
	phases      map[string]time.Duration
	stepStart   time.Time
	phaseStart  time.Time
	activePhase string

	// Presented frames (graphics mode)
	lastPresent time.Time
	presentGap  time.Duration
}

// NewPerfCollector creates a collector averaging over window steps.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		samples: make([]PerfSample, window),
		phases:  make(map[string]time.Duration),
	}
}

// StartStep begins timing a frame step.
func (p *PerfCollector) StartStep() {
	p.stepStart = time.Now()
	p.phases = make(map[string]time.Duration)
	p.activePhase = ""
}

// StartPhase closes the running phase, if any, and opens the next one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.activePhase = phase
}

// EndStep closes the running phase and stores the sample.
func (p *PerfCollector) EndStep() {
	now := time.Now()
	p.closePhase(now)

	p.samples[p.next] = PerfSample{Step: now.Sub(p.stepStart), Phases: p.phases}
	p.next = (p.next + 1) % len(p.samples)
	if p.count < len(p.samples) {
		p.count++
	}
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.activePhase != "" {
		p.phases[p.activePhase] += now.Sub(p.phaseStart)
		p.activePhase = ""
	}
}

// RecordPresent records the time a frame was presented on screen.
func (p *PerfCollector) RecordPresent() {
	now := time.Now()
	if !p.lastPresent.IsZero() {
		p.presentGap = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats holds aggregated step timings.
type PerfStats struct {
	AvgStep time.Duration
	MinStep time.Duration
	MaxStep time.Duration

	// Average duration and share of step time per phase
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	StepsPerSecond float64
	FPS            float64 // Presented frames per second, 0 when headless
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	out := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if p.presentGap > 0 {
		out.FPS = float64(time.Second) / float64(p.presentGap)
	}
	if p.count == 0 {
		return out
	}

	var total time.Duration
	sums := make(map[string]time.Duration)
	for i := 0; i < p.count; i++ {
		s := p.samples[i]
		total += s.Step
		if i == 0 || s.Step < out.MinStep {
			out.MinStep = s.Step
		}
		if s.Step > out.MaxStep {
			out.MaxStep = s.Step
		}
		for phase, d := range s.Phases {
			sums[phase] += d
		}
	}

	n := time.Duration(p.count)
	out.AvgStep = total / n
	for phase, sum := range sums {
		out.PhaseAvg[phase] = sum / n
		if out.AvgStep > 0 {
			out.PhasePct[phase] = float64(out.PhaseAvg[phase]) / float64(out.AvgStep) * 100
		}
	}
	if out.AvgStep > 0 {
		out.StepsPerSecond = float64(time.Second) / float64(out.AvgStep)
	}
	return out
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_step_us", s.AvgStep.Microseconds()),
		slog.Int64("max_step_us", s.MaxStep.Microseconds()),
		slog.Float64("steps_per_sec", s.StepsPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgStepUS    int64   `csv:"avg_step_us"`
	MinStepUS    int64   `csv:"min_step_us"`
	MaxStepUS    int64   `csv:"max_step_us"`
	StepsPerSec  float64 `csv:"steps_per_sec"`
	FPS          float64 `csv:"fps"`
	CameraPct    float64 `csv:"camera_pct"`
	MotionPct    float64 `csv:"motion_pct"`
	TransformPct float64 `csv:"transform_pct"`
	CoarsePct    float64 `csv:"lod_coarse_pct"`
	FinePct      float64 `csv:"lod_fine_pct"`
	SwapPct      float64 `csv:"lod_swap_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgStepUS:    s.AvgStep.Microseconds(),
		MinStepUS:    s.MinStep.Microseconds(),
		MaxStepUS:    s.MaxStep.Microseconds(),
		StepsPerSec:  s.StepsPerSecond,
		FPS:          s.FPS,
		CameraPct:    s.PhasePct[PhaseCamera],
		MotionPct:    s.PhasePct[PhaseMotion],
		TransformPct: s.PhasePct[PhaseTransform],
		CoarsePct:    s.PhasePct[PhaseLODCoarse],
		FinePct:      s.PhasePct[PhaseLODFine],
		SwapPct:      s.PhasePct[PhaseLODSwap],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
