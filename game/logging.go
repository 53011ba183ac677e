package game

import (
	"log/slog"

	"github.com/pthm-cable/starflight/telemetry"
)

// recordTelemetry samples the frame and flushes the stats window when due.
func (g *Game) recordTelemetry() {
	stats := g.comp.Stats()
	g.collector.RecordFrame(telemetry.FrameSample{
		Polys:      stats.Polys,
		Sprites:    stats.Stars + stats.Nebulae + stats.Trails,
		Particles:  stats.Particles,
		Clipped:    g.clippedThisFrame,
		Speed:      float64(g.cam.Speed),
		WarpFactor: float64(g.cam.WarpFactor),
	})

	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	window := g.collector.Flush(g.tick)
	perf := g.perf.Stats()

	if g.opts.LogStats {
		window.LogStats()
		perf.LogStats()
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(window); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perf, window.WindowEndTick); err != nil {
			slog.Error("failed to write perf stats", "error", err)
		}
	}
}
