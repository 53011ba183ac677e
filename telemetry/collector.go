package telemetry

import "math"

// FrameSample is one frame's scene load, recorded after compositing.
type FrameSample struct {
	Polys      int
	Sprites    int // Stars, nebulae and trails
	Particles  int
	Clipped    int
	Speed      float64
	WarpFactor float64
}

// Collector accumulates events and frame samples within time windows and
// produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	starResets       int
	nebulaResets     int
	asteroidRespawns int
	warpEngagements  int
	pointsClipped    int

	polys      []float64
	sprites    []float64
	particles  []float64
	speeds     []float64
	warpLevels []float64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick.
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	// dt carries float32 rounding (1/60 is not exact), so the quotient can
	// land just below the whole tick count. Round, never truncate.
	ticksPerWindow := int32(math.Round(windowDurationSec / float64(dt)))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordStarResets adds star pool recycles from one tick.
func (c *Collector) RecordStarResets(n int) {
	c.starResets += n
}

// RecordNebulaResets adds nebula recycles from one tick.
func (c *Collector) RecordNebulaResets(n int) {
	c.nebulaResets += n
}

// RecordAsteroidRespawn records one asteroid respawning past the far plane.
func (c *Collector) RecordAsteroidRespawn() {
	c.asteroidRespawns++
}

// RecordWarpEngagement records the warp drive being toggled on.
func (c *Collector) RecordWarpEngagement() {
	c.warpEngagements++
}

// RecordFrame records one frame's primitive load and flight state.
func (c *Collector) RecordFrame(s FrameSample) {
	c.pointsClipped += s.Clipped
	c.polys = append(c.polys, float64(s.Polys))
	c.sprites = append(c.sprites, float64(s.Sprites))
	c.particles = append(c.particles, float64(s.Particles))
	c.speeds = append(c.speeds, s.Speed)
	c.warpLevels = append(c.warpLevels, s.WarpFactor)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32) WindowStats {
	polyStats := ComputeSeriesStats(c.polys)
	spriteStats := ComputeSeriesStats(c.sprites)
	particleStats := ComputeSeriesStats(c.particles)
	speedStats := ComputeSeriesStats(c.speeds)
	warpStats := ComputeSeriesStats(c.warpLevels)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		StarResets:       c.starResets,
		NebulaResets:     c.nebulaResets,
		AsteroidRespawns: c.asteroidRespawns,
		WarpEngagements:  c.warpEngagements,
		PointsClipped:    c.pointsClipped,

		PolysMean: polyStats.Mean,
		PolysP50:  polyStats.P50,
		PolysP90:  polyStats.P90,

		SpritesMean: spriteStats.Mean,
		SpritesP90:  spriteStats.P90,

		ParticlesMean: particleStats.Mean,
		ParticlesMax:  particleStats.Max,

		SpeedMean: speedStats.Mean,
		SpeedStd:  speedStats.Std,
		SpeedMax:  speedStats.Max,

		WarpFactorMean: warpStats.Mean,
	}

	c.windowStartTick = currentTick
	c.starResets = 0
	c.nebulaResets = 0
	c.asteroidRespawns = 0
	c.warpEngagements = 0
	c.pointsClipped = 0
	c.polys = c.polys[:0]
	c.sprites = c.sprites[:0]
	c.particles = c.particles[:0]
	c.speeds = c.speeds[:0]
	c.warpLevels = c.warpLevels[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
