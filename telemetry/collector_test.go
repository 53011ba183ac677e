package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindowBoundary(t *testing.T) {
	// 5 second windows at 60Hz = 300 ticks.
	c := NewCollector(5.0, 1.0/60.0)

	if got := c.WindowDurationTicks(); got != 300 {
		t.Fatalf("window ticks = %d, want 300", got)
	}

	if c.ShouldFlush(299) {
		t.Error("flushed before window elapsed")
	}
	if !c.ShouldFlush(300) {
		t.Error("did not flush at window boundary")
	}

	c.Flush(300)
	if c.ShouldFlush(599) {
		t.Error("second window flushed early")
	}
	if !c.ShouldFlush(600) {
		t.Error("second window did not flush at boundary")
	}
}

func TestCollectorWindowRounding(t *testing.T) {
	// The float32 dt makes windowSec/dt land fractionally below the whole
	// tick count; the quotient must round, not truncate.
	tests := []struct {
		name      string
		windowSec float64
		dt        float32
		want      int32
	}{
		{"5s at 60Hz", 5.0, 1.0 / 60.0, 300},
		{"1s at 60Hz", 1.0, 1.0 / 60.0, 60},
		{"10s at 30Hz", 10.0, 1.0 / 30.0, 300},
		{"0.5s at 60Hz", 0.5, 1.0 / 60.0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(tt.windowSec, tt.dt)
			if got := c.WindowDurationTicks(); got != tt.want {
				t.Errorf("window ticks = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCollectorTinyWindow(t *testing.T) {
	// A window shorter than one tick still flushes every tick.
	c := NewCollector(0.001, 1.0/60.0)
	if got := c.WindowDurationTicks(); got != 1 {
		t.Errorf("window ticks = %d, want clamped to 1", got)
	}
}

func TestCollectorFlushAggregatesAndResets(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	c.RecordStarResets(3)
	c.RecordStarResets(2)
	c.RecordNebulaResets(1)
	c.RecordAsteroidRespawn()
	c.RecordWarpEngagement()
	c.RecordFrame(FrameSample{Polys: 40, Sprites: 700, Particles: 100, Clipped: 12, Speed: 200, WarpFactor: 0})
	c.RecordFrame(FrameSample{Polys: 60, Sprites: 700, Particles: 300, Clipped: 8, Speed: 1500, WarpFactor: 1})

	s := c.Flush(60)

	if s.StarResets != 5 {
		t.Errorf("star resets = %d, want 5", s.StarResets)
	}
	if s.NebulaResets != 1 || s.AsteroidRespawns != 1 || s.WarpEngagements != 1 {
		t.Errorf("event counts = %d/%d/%d, want 1/1/1", s.NebulaResets, s.AsteroidRespawns, s.WarpEngagements)
	}
	if s.PointsClipped != 20 {
		t.Errorf("points clipped = %d, want 20", s.PointsClipped)
	}
	if math.Abs(s.PolysMean-50) > 0.001 {
		t.Errorf("polys mean = %v, want 50", s.PolysMean)
	}
	if s.ParticlesMax != 300 {
		t.Errorf("particles max = %v, want 300", s.ParticlesMax)
	}
	if math.Abs(s.SpeedMean-850) > 0.001 {
		t.Errorf("speed mean = %v, want 850", s.SpeedMean)
	}
	if math.Abs(s.WarpFactorMean-0.5) > 0.001 {
		t.Errorf("warp factor mean = %v, want 0.5", s.WarpFactorMean)
	}
	if math.Abs(s.SimTimeSec-1.0) > 0.001 {
		t.Errorf("sim time = %v, want 1.0", s.SimTimeSec)
	}

	// Counters reset for the next window.
	s2 := c.Flush(120)
	if s2.StarResets != 0 || s2.PointsClipped != 0 || s2.PolysMean != 0 {
		t.Errorf("second window not clean: %+v", s2)
	}
	if s2.WindowStartTick != 60 {
		t.Errorf("second window start = %d, want 60", s2.WindowStartTick)
	}
}
