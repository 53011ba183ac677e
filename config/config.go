// Package config provides configuration loading and access for the renderer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all renderer configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Projection ProjectionConfig `yaml:"projection"`
	Stars      StarsConfig      `yaml:"stars"`
	Nebula     NebulaConfig     `yaml:"nebula"`
	Asteroids  AsteroidsConfig  `yaml:"asteroids"`
	Flight     FlightConfig     `yaml:"flight"`
	Shake      ShakeConfig      `yaml:"shake"`
	Engine     EngineConfig     `yaml:"engine"`
	Grid       GridConfig       `yaml:"grid"`
	Ship       ShipConfig       `yaml:"ship"`
	Objects    ObjectsConfig    `yaml:"objects"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds world bounds and clip planes.
type WorldConfig struct {
	Size     float64 `yaml:"size"`      // Half-extent of the world in x/y
	NearClip float64 `yaml:"near_clip"` // Points closer than this are clipped
	FarClip  float64 `yaml:"far_clip"`  // Points farther than this are clipped
}

// ProjectionConfig holds perspective projection distances.
// Stars use a longer focal length than meshes, as in the source material.
type ProjectionConfig struct {
	MeshDistance float64 `yaml:"mesh_distance"`
	StarDistance float64 `yaml:"star_distance"`
}

// StarsConfig holds star field parameters.
type StarsConfig struct {
	Count      int     `yaml:"count"`
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	StreakGain float64 `yaml:"streak_gain"` // Extra depth speed per unit warp
	Smoothing  float64 `yaml:"smoothing"`   // Lerp rate for trail/size convergence
}

// NebulaConfig holds nebula blob parameters.
type NebulaConfig struct {
	Count    int     `yaml:"count"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinAlpha int     `yaml:"min_alpha"`
	MaxAlpha int     `yaml:"max_alpha"`
}

// AsteroidsConfig holds asteroid parameters.
type AsteroidsConfig struct {
	Count    int     `yaml:"count"`
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
	Drift    float64 `yaml:"drift"`    // Lateral wander amplitude per second
	MaxSpin  float64 `yaml:"max_spin"` // Rotation rate bound per axis (rad/s scale)
}

// FlightConfig holds camera flight parameters.
type FlightConfig struct {
	MaxSpeed      float64 `yaml:"max_speed"`
	WarpSpeed     float64 `yaml:"warp_speed"`
	Acceleration  float64 `yaml:"acceleration"`
	Deceleration  float64 `yaml:"deceleration"`
	StrafeSpeed   float64 `yaml:"strafe_speed"`
	VerticalSpeed float64 `yaml:"vertical_speed"`
	LerpFactor    float64 `yaml:"lerp_factor"`    // Strafe/vertical smoothing rate
	WarpSmoothing float64 `yaml:"warp_smoothing"` // Warp factor convergence rate
}

// ShakeConfig holds camera shake parameters.
type ShakeConfig struct {
	Strength float64 `yaml:"strength"` // Max pixel offset at intensity 1.0
	Decay    float64 `yaml:"decay"`    // Intensity decay rate per second
	Duration float64 `yaml:"duration"` // Seconds of shake on warp engage
}

// EngineConfig holds engine trail particle parameters.
type EngineConfig struct {
	MaxParticles int     `yaml:"max_particles"`
	EmissionRate float64 `yaml:"emission_rate"` // Particles per second per emitter
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	MinLifetime  float64 `yaml:"min_lifetime"`
	MaxLifetime  float64 `yaml:"max_lifetime"`
	SpreadXY     float64 `yaml:"spread_xy"` // Velocity jitter in x/y
	MinThrust    float64 `yaml:"min_thrust"`
	MaxThrust    float64 `yaml:"max_thrust"`
}

// GridConfig holds ground plane parameters.
type GridConfig struct {
	Lines   int     `yaml:"lines"`
	Spacing float64 `yaml:"spacing"`
	YOffset float64 `yaml:"y_offset"`
}

// ShipConfig holds ship model placement.
type ShipConfig struct {
	Scale float64 `yaml:"scale"`
	Z     float64 `yaml:"z"`
}

// ObjectsConfig holds static scene object placement.
type ObjectsConfig struct {
	CubeScale    float64 `yaml:"cube_scale"`
	PyramidScale float64 `yaml:"pyramid_scale"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per stats window
	PerfWindow  int     `yaml:"perf_window"`  // Frames in the perf rolling window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32  float32 // Screen.Width as float32
	ScreenH32  float32 // Screen.Height as float32
	CenterX32  float32 // Screen center x
	CenterY32  float32 // Screen center y
	WorldSize  float32
	NearClip32 float32
	FarClip32  float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
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
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.CenterX32 = float32(c.Screen.Width) / 2
	c.Derived.CenterY32 = float32(c.Screen.Height) / 2
	c.Derived.WorldSize = float32(c.World.Size)
	c.Derived.NearClip32 = float32(c.World.NearClip)
	c.Derived.FarClip32 = float32(c.World.FarClip)
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
