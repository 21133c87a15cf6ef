// Package config provides configuration loading and access for the LOD demo.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Resolver kinds accepted in LODConfig.Resolver.
const (
	ResolverLinear = "linear"
	ResolverBands  = "bands"
)

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	LOD       LODConfig       `yaml:"lod"`
	Scene     SceneConfig     `yaml:"scene"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// LODConfig selects the resolver policy and the global bias.
type LODConfig struct {
	Bias      int8      `yaml:"bias"`      // Signed offset added to every resolved level
	Resolver  string    `yaml:"resolver"`  // "linear" or "bands"
	Threshold float64   `yaml:"threshold"` // Squared viewpoint displacement before a full recompute
	Step      float64   `yaml:"step"`      // Linear: world units per level
	Bands     []float64 `yaml:"bands"`     // Bands: ascending distance edges
}

// SceneConfig describes the demo scene grid.
type SceneConfig struct {
	Columns       int     `yaml:"columns"`
	Rows          int     `yaml:"rows"`
	Spacing       float64 `yaml:"spacing"`
	Radius        float64 `yaml:"radius"`
	Levels        int     `yaml:"levels"`         // Representations per group, highest detail first
	DriftFraction float64 `yaml:"drift_fraction"` // Fraction of objects that move on their own
	DriftSpeed    float64 `yaml:"drift_speed"`
	OriginZ       float64 `yaml:"origin_z"`
}

// CameraConfig holds viewpoint rig parameters.
type CameraConfig struct {
	Speed       float64 `yaml:"speed"`
	Sensitivity float64 `yaml:"sensitivity"`
	OrbitRadius float64 `yaml:"orbit_radius"` // Headless scripted path
	OrbitHeight float64 `yaml:"orbit_height"`
	OrbitSpeed  float64 `yaml:"orbit_speed"` // Radians per second
	FOV         float64 `yaml:"fov"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32   float32
	ScreenH32   float32
	ObjectCount int
	DriftEvery  int // Every n-th object drifts (0 = none)
	StatsFrames int // Telemetry window in frames at TargetFPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the LOD systems cannot work with.
func (c *Config) validate() error {
	switch c.LOD.Resolver {
	case ResolverLinear:
		if c.LOD.Step <= 0 {
			return fmt.Errorf("lod.step must be positive, got %v", c.LOD.Step)
		}
	case ResolverBands:
		if len(c.LOD.Bands) == 0 {
			return fmt.Errorf("lod.bands must not be empty for the bands resolver")
		}
	default:
		return fmt.Errorf("unknown lod.resolver %q", c.LOD.Resolver)
	}
	if c.LOD.Threshold < 0 {
		return fmt.Errorf("lod.threshold must not be negative, got %v", c.LOD.Threshold)
	}
	if c.Scene.Levels < 1 || c.Scene.Levels > 256 {
		return fmt.Errorf("scene.levels must be in [1, 256], got %d", c.Scene.Levels)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.ObjectCount = c.Scene.Columns * c.Scene.Rows

	c.Derived.DriftEvery = 0
	if c.Scene.DriftFraction > 0 {
		c.Derived.DriftEvery = int(1 / c.Scene.DriftFraction)
		if c.Derived.DriftEvery < 1 {
			c.Derived.DriftEvery = 1
		}
	}

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.StatsFrames = int(c.Telemetry.StatsWindow * float64(fps))
	if c.Derived.StatsFrames < 1 {
		c.Derived.StatsFrames = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
