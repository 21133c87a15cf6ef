package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lodgroups/lod"
	"github.com/pthm-cable/lodgroups/telemetry"
	"github.com/pthm-cable/lodgroups/ui"
)

const controlsText = "WASD/Space/Q: fly | RMB: look | [ ]: bias | O: orbit | F3: perf"

// Update handles input and advances one frame.
func (g *Game) Update() {
	if g.headless {
		g.Step(g.fixedStep())
		return
	}
	g.handleInput()
	g.Step(float64(rl.GetFrameTime()))
}

// Draw renders the scene and overlay.
func (g *Game) Draw() {
	if g.headless {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 24, G: 26, B: 32, A: 255})

	triangles := g.scene.Draw(g.rig)

	bias := g.hud.Draw(ui.HUDData{
		Title:        "LOD groups",
		Entities:     g.objects,
		Frame:        g.frame,
		FPS:          rl.GetFPS(),
		Bias:         g.Bias(),
		Triangles:    triangles,
		Histogram:    g.installedHistogram(),
		Recomputed:   g.lastFrame.Recomputed,
		Swaps:        g.lastFrame.Swaps,
		AutoOrbit:    g.autoOrbit,
		ScreenWidth:  int32(g.cfg.Screen.Width),
		ScreenHeight: int32(g.cfg.Screen.Height),
	})
	g.SetBias(bias)

	if g.showPerf {
		g.perfPanel.Draw(g.perf.Stats(), g.registry)
	}
	g.hud.DrawControls(int32(g.cfg.Screen.Height), controlsText)

	rl.EndDrawing()
	g.perf.RecordPresent()
}

// installedHistogram counts entities per installed representation index.
func (g *Game) installedHistogram() []int {
	settings := lod.Settings{Bias: g.Bias()}
	levels := g.currentLevels()
	installed := make([]uint8, len(levels))
	for i, l := range levels {
		installed[i] = settings.Apply(l)
	}
	return telemetry.Histogram(installed, g.cfg.Scene.Levels)
}

// fixedStep returns the simulated frame time for headless runs.
func (g *Game) fixedStep() float64 {
	if g.cfg.Screen.TargetFPS <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(g.cfg.Screen.TargetFPS)
}
