// Package game wires the LOD systems into a runnable scene.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lodgroups/camera"
	"github.com/pthm-cable/lodgroups/components"
	"github.com/pthm-cable/lodgroups/config"
	"github.com/pthm-cable/lodgroups/lod"
	"github.com/pthm-cable/lodgroups/renderer"
	"github.com/pthm-cable/lodgroups/systems"
	"github.com/pthm-cable/lodgroups/telemetry"
	"github.com/pthm-cable/lodgroups/ui"
)

// Options configures a game instance beyond the loaded config.
type Options struct {
	Seed      int64
	Headless  bool
	LogStats  bool
	OutputDir string
}

// Game holds the complete scene state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand

	// Viewpoint
	rig          *camera.Rig
	orbit        camera.Orbit
	autoOrbit    bool
	cameraEntity ecs.Entity

	transforms *ecs.Map1[components.GlobalTransform]
	levels     *ecs.Filter1[components.CurrentLOD]

	// Systems in frame order
	motion    *systems.MotionSystem
	transform *systems.TransformSystem
	resolver  *systems.ResolverSystem[components.Camera]
	groups    *systems.GroupSystem[renderer.SphereDetail]
	registry  *systems.SystemRegistry

	// Telemetry
	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	lastStats telemetry.WindowStats
	lastFrame telemetry.FrameEvents
	levelBuf  []uint8

	// Rendering (nil when headless)
	scene     *renderer.SceneRenderer
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	showPerf  bool

	headless bool
	logStats bool
	frame    int32
	elapsed  float64
	objects  int
}

// NewGame creates a game from the configuration.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	resolver, err := lod.NewResolver(cfg.LOD)
	if err != nil {
		return nil, fmt.Errorf("creating resolver: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	world := ecs.NewWorld()

	// Settings first so the group system keeps the configured bias
	settings := ecs.NewResource[lod.Settings](world)
	settings.Add(&lod.Settings{Bias: cfg.LOD.Bias})

	g := &Game{
		cfg:        cfg,
		world:      world,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		autoOrbit:  opts.Headless,
		transforms: ecs.NewMap1[components.GlobalTransform](world),
		levels:     ecs.NewFilter1[components.CurrentLOD](world),
		transform:  systems.NewTransformSystem(world),
		resolver:   systems.NewResolverSystem[components.Camera](world, resolver),
		groups:     systems.NewGroupSystem[renderer.SphereDetail](world),
		registry:   systems.NewSystemRegistry(),
		perf:       telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:  telemetry.NewCollector(cfg.Derived.StatsFrames),
		output:     output,
		headless:   opts.Headless,
		logStats:   opts.LogStats,
	}

	g.motion = systems.NewMotionSystem(world, g.sceneBounds())
	g.spawnScene()

	if !opts.Headless {
		g.scene = renderer.NewSceneRenderer(world, float32(cfg.Camera.FOV))
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(int32(cfg.Screen.Width)-300, 10)
	}

	slog.Info("scene ready",
		"objects", g.objects,
		"levels", cfg.Scene.Levels,
		"resolver", cfg.LOD.Resolver,
		"threshold", resolver.Resolution(),
		"bias", cfg.LOD.Bias,
	)
	return g, nil
}

// Step advances the scene by dt seconds and runs every LOD pass once.
func (g *Game) Step(dt float64) {
	g.perf.StartStep()

	g.perf.StartPhase(telemetry.PhaseCamera)
	g.updateCamera(dt)

	g.perf.StartPhase(telemetry.PhaseMotion)
	g.motion.Update(g.world, dt)

	g.perf.StartPhase(telemetry.PhaseTransform)
	g.transform.Update(g.world)

	// Coarse and fine passes are driven separately so each gets its own phase
	g.resolver.ResetStats()
	viewpoint, ok := g.resolver.Viewpoint()
	g.perf.StartPhase(telemetry.PhaseLODCoarse)
	if ok {
		g.resolver.Coarse(viewpoint)
	}
	g.perf.StartPhase(telemetry.PhaseLODFine)
	if ok {
		g.resolver.Fine(viewpoint)
	}

	g.perf.StartPhase(telemetry.PhaseLODSwap)
	g.groups.Update(g.world)

	g.frame++
	g.elapsed += dt

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.recordTelemetry()

	g.perf.EndStep()
}

// updateCamera moves the rig and copies its position to the viewpoint entity.
func (g *Game) updateCamera(dt float64) {
	if g.autoOrbit {
		g.rig.Position = g.orbit.At(g.elapsed + dt)
		g.rig.LookAt(g.orbit.Center)
	} else if !g.headless {
		g.handleCameraInput(dt)
	}
	g.transforms.Get(g.cameraEntity).Translation = g.rig.Position
}

// recordTelemetry feeds the collector and flushes finished windows.
func (g *Game) recordTelemetry() {
	rs := g.resolver.Stats()
	gs := g.groups.Stats()
	g.lastFrame = telemetry.FrameEvents{
		HasViewpoint: rs.HasViewpoint,
		Recomputed:   rs.Recomputed,
		CoarseWrites: rs.CoarseWrites,
		FineWrites:   rs.FineWrites,
		Changes:      rs.Changes,
		Swaps:        gs.Swaps,
		BiasChanged:  gs.BiasChanged,
	}
	g.collector.Record(g.lastFrame)

	if !g.collector.ShouldFlush(g.frame) {
		return
	}

	stats := g.collector.Flush(g.frame, g.currentLevels(), g.Bias())
	g.lastStats = stats
	perf := g.perf.Stats()

	if err := g.output.WriteStats(stats); err != nil {
		slog.Error("failed to write lod stats", "error", err)
	}
	if err := g.output.WritePerf(perf, g.frame); err != nil {
		slog.Error("failed to write perf stats", "error", err)
	}
	if g.logStats {
		stats.LogStats()
		slog.Info("perf", "stats", perf)
	}
}

// currentLevels returns the level of every LOD entity. The slice is reused.
func (g *Game) currentLevels() []uint8 {
	g.levelBuf = g.levelBuf[:0]
	query := g.levels.Query()
	for query.Next() {
		g.levelBuf = append(g.levelBuf, query.Get().Level)
	}
	return g.levelBuf
}

// Bias returns the global LOD bias.
func (g *Game) Bias() int8 {
	return g.settings().Bias
}

// SetBias replaces the global LOD bias. Groups pick it up on the next step.
func (g *Game) SetBias(b int8) {
	settings := g.settings()
	if settings.Bias == b {
		return
	}
	slog.Info("lod bias changed", "from", settings.Bias, "to", b)
	settings.Bias = b
}

func (g *Game) settings() *lod.Settings {
	res := ecs.NewResource[lod.Settings](g.world)
	return res.Get()
}

// Frame returns the number of completed steps.
func (g *Game) Frame() int32 {
	return g.frame
}

// LastStats returns the most recently flushed telemetry window.
func (g *Game) LastStats() telemetry.WindowStats {
	return g.lastStats
}

// World exposes the ECS world.
func (g *Game) World() *ecs.World {
	return g.world
}

// Unload flushes and closes output files.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
