package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lodgroups/ui"
)

// handleInput processes keyboard toggles.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyO) {
		g.autoOrbit = !g.autoOrbit
		if !g.autoOrbit {
			g.rig.LookAt(g.orbit.Center)
		}
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.showPerf = !g.showPerf
	}

	// Bias control with [ ]
	bias := g.Bias()
	if rl.IsKeyPressed(rl.KeyLeftBracket) && bias > -ui.MaxBias {
		g.SetBias(bias - 1)
	}
	if rl.IsKeyPressed(rl.KeyRightBracket) && bias < ui.MaxBias {
		g.SetBias(bias + 1)
	}
}

// handleCameraInput flies the rig with WASD and right-mouse look.
func (g *Game) handleCameraInput(dt float64) {
	var forward, right, up float64
	if rl.IsKeyDown(rl.KeyW) {
		forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		right--
	}
	if rl.IsKeyDown(rl.KeySpace) {
		up++
	}
	if rl.IsKeyDown(rl.KeyQ) {
		up--
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		forward, right, up = forward*3, right*3, up*3
	}
	g.rig.Move(forward, right, up, dt)

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		g.rig.Look(float64(delta.X), float64(delta.Y))
	}
}
