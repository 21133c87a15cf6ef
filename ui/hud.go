// Package ui draws the LOD demo overlay.
package ui

import (
	"fmt"
	"math"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lodgroups/systems"
	"github.com/pthm-cable/lodgroups/telemetry"
)

// MaxBias bounds the bias slider in both directions.
const MaxBias = 8

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Entities     int
	Frame        int32
	FPS          int32
	Bias         int8
	Triangles    int
	Histogram    []int // Installed representation counts, finest first
	Recomputed   bool
	Swaps        int
	AutoOrbit    bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	r        *Renderer
	width    int32
	barWidth int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{r: NewRenderer(), width: 300, barWidth: 160}
}

// Draw renders the HUD and returns the bias selected on the slider.
func (h *HUD) Draw(data HUDData) int8 {
	t := h.r.Theme
	x, y := t.Padding, t.Padding

	// Title, counters, status, histogram rows, bias label, slider
	height := 5*t.LineHeight + int32(len(data.Histogram))*t.LineHeight + 3*t.Padding + 20
	h.r.DrawPanel(x-4, y-4, h.width, height)

	y = h.r.DrawHeader(x, y, data.Title)
	y = h.r.DrawText(x, y, fmt.Sprintf("Objects: %d | Tris: %d", data.Entities, data.Triangles), t.LabelColor)
	y = h.r.DrawText(x, y, fmt.Sprintf("Frame: %d | FPS: %d", data.Frame, data.FPS), t.LabelColor)

	status, color := "idle", rl.Gray
	if data.Recomputed {
		status, color = "full recompute", rl.Yellow
	} else if data.Swaps > 0 {
		status, color = fmt.Sprintf("%d swaps", data.Swaps), rl.Orange
	}
	if data.AutoOrbit {
		status += " | orbit"
	}
	y = h.r.DrawText(x, y, status, color)

	total := 0
	for _, n := range data.Histogram {
		total += n
	}
	for i, n := range data.Histogram {
		y = h.r.DrawCountBar(x, y, fmt.Sprintf("L%d", i), n, total, h.barWidth)
	}

	y += t.Padding
	y = h.r.DrawText(x, y, fmt.Sprintf("Bias: %+d", data.Bias), t.ValueColor)
	v := gui.SliderBar(
		rl.Rectangle{X: float32(x + 24), Y: float32(y), Width: 200, Height: 18},
		fmt.Sprintf("%d", -MaxBias), fmt.Sprintf("%+d", MaxBias),
		float32(data.Bias), -MaxBias, MaxBias,
	)
	return int8(math.Round(float64(v)))
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	h.r.DrawText(h.r.Theme.Padding, screenHeight-25, controls, rl.Gray)
}

// PerfPanel renders per-system timings.
type PerfPanel struct {
	r    *Renderer
	x, y int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{r: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the panel in frame order.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, registry *systems.SystemRegistry) {
	t := p.r.Theme
	ids := registry.IDs()
	p.r.DrawPanel(p.x-4, p.y-4, 290, int32(len(ids)+3)*t.LineHeight)

	y := p.r.DrawHeader(p.x, p.y, "System Performance")
	y = p.r.DrawText(p.x, y, fmt.Sprintf("Step: %s", stats.AvgStep.Round(time.Microsecond)), rl.Yellow)

	for _, id := range ids {
		avg, ok := stats.PhaseAvg[id]
		if !ok {
			continue
		}
		pct := stats.PhasePct[id]

		color := t.LabelColor
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}
		y = p.r.DrawText(p.x, y, fmt.Sprintf("%-12s %8s %5.1f%%", registry.GetName(id), avg.Round(time.Microsecond), pct), color)
	}
}
