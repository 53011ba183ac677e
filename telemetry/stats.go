// Package telemetry accumulates per-frame scene and timing data into
// windowed statistics for structured logging and CSV export.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated scene statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Lifecycle events during the window
	StarResets       int `csv:"star_resets"`
	NebulaResets     int `csv:"nebula_resets"`
	AsteroidRespawns int `csv:"asteroid_respawns"`
	WarpEngagements  int `csv:"warp_engagements"`

	// Clipping
	PointsClipped int `csv:"points_clipped"`

	// Per-frame primitive load, sampled every frame
	PolysMean float64 `csv:"polys_mean"`
	PolysP50  float64 `csv:"polys_p50"`
	PolysP90  float64 `csv:"polys_p90"`

	SpritesMean float64 `csv:"sprites_mean"`
	SpritesP90  float64 `csv:"sprites_p90"`

	ParticlesMean float64 `csv:"particles_mean"`
	ParticlesMax  float64 `csv:"particles_max"`

	// Flight profile
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedMax  float64 `csv:"speed_max"`

	WarpFactorMean float64 `csv:"warp_factor_mean"`
}

// SeriesStats summarizes one sampled per-frame series.
type SeriesStats struct {
	Mean, Std, P10, P50, P90, Max float64
}

// ComputeSeriesStats aggregates a sampled series. Quantiles interpolate over
// the sorted samples; an empty series yields zeros.
func ComputeSeriesStats(values []float64) SeriesStats {
	if len(values) == 0 {
		return SeriesStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	// MeanStdDev returns NaN std for a single sample.
	if len(sorted) < 2 {
		std = 0
	}

	return SeriesStats{
		Mean: mean,
		Std:  std,
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
		Max:  sorted[len(sorted)-1],
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("star_resets", s.StarResets),
		slog.Int("nebula_resets", s.NebulaResets),
		slog.Int("asteroid_respawns", s.AsteroidRespawns),
		slog.Int("warp_engagements", s.WarpEngagements),
		slog.Int("points_clipped", s.PointsClipped),
		slog.Float64("polys_mean", s.PolysMean),
		slog.Float64("polys_p50", s.PolysP50),
		slog.Float64("polys_p90", s.PolysP90),
		slog.Float64("sprites_mean", s.SpritesMean),
		slog.Float64("sprites_p90", s.SpritesP90),
		slog.Float64("particles_mean", s.ParticlesMean),
		slog.Float64("particles_max", s.ParticlesMax),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("warp_factor_mean", s.WarpFactorMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("frame_stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"star_resets", s.StarResets,
		"nebula_resets", s.NebulaResets,
		"asteroid_respawns", s.AsteroidRespawns,
		"warp_engagements", s.WarpEngagements,
		"points_clipped", s.PointsClipped,
		"polys_mean", s.PolysMean,
		"polys_p90", s.PolysP90,
		"sprites_mean", s.SpritesMean,
		"particles_mean", s.ParticlesMean,
		"particles_max", s.ParticlesMax,
		"speed_mean", s.SpeedMean,
		"speed_max", s.SpeedMax,
		"warp_factor_mean", s.WarpFactorMean,
	)
}
