// Package game owns the frame loop: it wires the config, the ECS star and
// nebula pools, the mesh scene, the flight camera and the compositor into a
// single fixed-dt simulation.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/starflight/camera"
	"github.com/pthm-cable/starflight/components"
	"github.com/pthm-cable/starflight/config"
	"github.com/pthm-cable/starflight/geom"
	"github.com/pthm-cable/starflight/renderer"
	"github.com/pthm-cable/starflight/scene"
	"github.com/pthm-cable/starflight/systems"
	"github.com/pthm-cable/starflight/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}

// Game holds the complete scene state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	starMapper   *ecs.Map2[components.Position, components.Star]
	starFilter   *ecs.Filter2[components.Position, components.Star]
	nebulaMapper *ecs.Map2[components.Position, components.Nebula]
	nebulaFilter *ecs.Filter2[components.Position, components.Nebula]

	starField   systems.StarField
	nebulaField systems.NebulaField

	cam          *camera.Camera
	meshViewport camera.Viewport
	starViewport camera.Viewport

	// meshes holds every polyhedral body including the asteroids; asteroids
	// keeps the typed handles for the depth/respawn pass.
	meshes    []scene.Mesh
	asteroids []*scene.Asteroid
	ship      *scene.Ship
	ground    scene.GroundPlane
	gridBuf   []scene.GridLine

	emitters [2]*systems.Emitter

	comp *renderer.Compositor
	ctx  renderer.Context

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	opts    Options
	dt      float32
	tick    int32
	elapsed float32

	clippedThisFrame int

	// Per-mesh projection scratch, reused across frames.
	projBuf []camera.Projected
	okBuf   []bool
}

// NewGameWithOptions creates a game instance from the global config.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		opts:  opts,
		dt:    1.0 / float32(cfg.Screen.TargetFPS),

		starMapper:   ecs.NewMap2[components.Position, components.Star](world),
		starFilter:   ecs.NewFilter2[components.Position, components.Star](world),
		nebulaMapper: ecs.NewMap2[components.Position, components.Nebula](world),
		nebulaFilter: ecs.NewFilter2[components.Position, components.Nebula](world),

		comp: renderer.NewCompositor(),
		ctx: renderer.Context{
			Width:  int32(cfg.Screen.Width),
			Height: int32(cfg.Screen.Height),
		},
	}

	g.starField = systems.StarField{
		WorldSize:   cfg.Derived.WorldSize,
		NearClip:    cfg.Derived.NearClip32,
		FarClip:     cfg.Derived.FarClip32,
		SpawnZMin:   float32(cfg.Projection.MeshDistance) + 100,
		SpawnZMax:   cfg.Derived.FarClip32 - 100,
		MinSize:     float32(cfg.Stars.MinSize),
		MaxSize:     float32(cfg.Stars.MaxSize),
		StreakGain:  float32(cfg.Stars.StreakGain),
		Smoothing:   float32(cfg.Stars.Smoothing),
		PaletteSize: len(renderer.StarPalette),
	}
	g.nebulaField = systems.NebulaField{
		WorldSize:   cfg.Derived.WorldSize,
		NearClip:    cfg.Derived.NearClip32,
		FarClip:     cfg.Derived.FarClip32,
		MinSize:     float32(cfg.Nebula.MinSize),
		MaxSize:     float32(cfg.Nebula.MaxSize),
		MinAlpha:    float32(cfg.Nebula.MinAlpha),
		MaxAlpha:    float32(cfg.Nebula.MaxAlpha),
		PaletteSize: len(renderer.NebulaPalette),
	}

	g.meshViewport = camera.Viewport{
		CenterX:  cfg.Derived.CenterX32,
		CenterY:  cfg.Derived.CenterY32,
		Distance: float32(cfg.Projection.MeshDistance),
		NearClip: cfg.Derived.NearClip32,
		FarClip:  cfg.Derived.FarClip32,
	}
	g.starViewport = g.meshViewport
	g.starViewport.Distance = float32(cfg.Projection.StarDistance)

	g.cam = camera.New(camera.Params{
		MaxSpeed:      float32(cfg.Flight.MaxSpeed),
		WarpSpeed:     float32(cfg.Flight.WarpSpeed),
		Acceleration:  float32(cfg.Flight.Acceleration),
		Deceleration:  float32(cfg.Flight.Deceleration),
		StrafeSpeed:   float32(cfg.Flight.StrafeSpeed),
		VerticalSpeed: float32(cfg.Flight.VerticalSpeed),
		LerpFactor:    float32(cfg.Flight.LerpFactor),
		WarpSmoothing: float32(cfg.Flight.WarpSmoothing),
		WorldSize:     cfg.Derived.WorldSize,
		ShakeStrength: float32(cfg.Shake.Strength),
		ShakeDecay:    float32(cfg.Shake.Decay),
		ShakeDuration: float32(cfg.Shake.Duration),
	}, g.rng)

	g.ground = scene.GroundPlane{
		NumLines:  cfg.Grid.Lines,
		Spacing:   float32(cfg.Grid.Spacing),
		YOffset:   float32(cfg.Grid.YOffset),
		HalfWidth: cfg.Derived.WorldSize,
		NearClip:  cfg.Derived.NearClip32,
		FarClip:   cfg.Derived.FarClip32,
	}

	g.spawnStars(cfg.Stars.Count)
	g.spawnNebulae(cfg.Nebula.Count)
	g.buildScene(cfg)

	g.collector = telemetry.NewCollector(opts.StatsWindowSec, g.dt)
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.output = om
			if err := g.output.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config snapshot", "error", err)
			}
			slog.Info("writing telemetry output", "dir", g.output.Dir())
		}
	}

	return g
}

func (g *Game) spawnStars(count int) {
	for i := 0; i < count; i++ {
		pos, st := g.starField.Spawn(g.rng)
		g.starMapper.NewEntity(&pos, &st)
	}
}

func (g *Game) spawnNebulae(count int) {
	for i := 0; i < count; i++ {
		pos, nb := g.nebulaField.Spawn(g.rng)
		g.nebulaMapper.NewEntity(&pos, &nb)
	}
}

// buildScene places the static objects, the escort ship, the asteroid belt
// and the ship's engine emitters.
func (g *Game) buildScene(cfg *config.Config) {
	g.meshes = append(g.meshes,
		scene.NewCube(geom.Vec3{X: 200, Y: 50, Z: 500}, float32(cfg.Objects.CubeScale), renderer.Red),
		scene.NewPyramid(geom.Vec3{X: -300, Z: 700}, float32(cfg.Objects.PyramidScale), renderer.GreenNeon),
	)

	g.ship = scene.NewShip(geom.Vec3{Z: float32(cfg.Ship.Z)}, float32(cfg.Ship.Scale))
	g.meshes = append(g.meshes, g.ship)

	params := scene.AsteroidParams{
		NearClip:   cfg.Derived.NearClip32,
		FarClip:    cfg.Derived.FarClip32,
		WorldSize:  cfg.Derived.WorldSize,
		ScaleMin:   float32(cfg.Asteroids.MinScale),
		ScaleMax:   float32(cfg.Asteroids.MaxScale),
		DriftSpeed: float32(cfg.Asteroids.Drift),
		MaxSpin:    float32(cfg.Asteroids.MaxSpin),
	}
	for i := 0; i < cfg.Asteroids.Count; i++ {
		pos := geom.Vec3{
			X: (g.rng.Float32()*2 - 1) * cfg.Derived.WorldSize,
			Y: (g.rng.Float32()*2 - 1) * cfg.Derived.WorldSize,
			Z: float32(cfg.Projection.MeshDistance) + 1000 + g.rng.Float32()*(cfg.Derived.FarClip32-float32(cfg.Projection.MeshDistance)-1000),
		}
		scale := float32(cfg.Asteroids.MinScale) + g.rng.Float32()*float32(cfg.Asteroids.MaxScale-cfg.Asteroids.MinScale)
		a := scene.NewAsteroid(params, pos, scale, g.rng)
		g.asteroids = append(g.asteroids, a)
		g.meshes = append(g.meshes, a)
	}

	mounts := g.ship.EngineMounts()
	for i := range g.emitters {
		g.emitters[i] = systems.NewEmitter(systems.EmitterParams{
			Source:       mounts[i],
			MaxParticles: cfg.Engine.MaxParticles,
			Rate:         float32(cfg.Engine.EmissionRate),
			SizeMin:      float32(cfg.Engine.MinSize),
			SizeMax:      float32(cfg.Engine.MaxSize),
			LifeMin:      float32(cfg.Engine.MinLifetime),
			LifeMax:      float32(cfg.Engine.MaxLifetime),
			SpreadXY:     float32(cfg.Engine.SpreadXY),
			ThrustMin:    float32(cfg.Engine.MinThrust),
			ThrustMax:    float32(cfg.Engine.MaxThrust),
		})
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Camera exposes the flight camera for tests and the HUD.
func (g *Game) Camera() *camera.Camera {
	return g.cam
}

// Unload releases output files. Safe to call with no output configured.
func (g *Game) Unload() {
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Error("failed to close output files", "error", err)
		}
	}
}
