// Package systems implements the per-tick update rules for scene entities.
// Functions operate on component pointers so the game loop can apply them
// while iterating ECS queries.
package systems

import (
	"math/rand"

	"github.com/pthm-cable/starflight/components"
	"github.com/pthm-cable/starflight/geom"
)

// StarField holds the spawn and update parameters for the star pool.
//
// Star depths are camera-relative: the camera's forward motion reaches the
// stars as a per-frame depth delta, and the clip planes bound the depth
// directly.
type StarField struct {
	WorldSize float32
	NearClip  float32
	FarClip   float32
	SpawnZMin float32 // Fresh stars start at least this deep
	SpawnZMax float32
	MinSize   float32
	MaxSize   float32

	StreakGain float32 // Extra depth speed per unit warp factor
	Smoothing  float32 // Lerp rate for trail/size convergence

	PaletteSize int
}

// Spawn creates a star at a random position within world bounds.
func (f StarField) Spawn(rng *rand.Rand) (components.Position, components.Star) {
	size := f.MinSize + rng.Float32()*(f.MaxSize-f.MinSize)

	pos := components.Position{
		X: uniform(rng, -f.WorldSize, f.WorldSize),
		Y: uniform(rng, -f.WorldSize, f.WorldSize),
		Z: uniform(rng, f.SpawnZMin, f.SpawnZMax),
	}
	st := components.Star{
		BaseSize:   size,
		Size:       size,
		TrailLen:   0,
		TrailAlpha: 255,
		Palette:    uint8(rng.Intn(f.PaletteSize)),
	}
	return pos, st
}

// Update advances one star by the camera's depth delta and converges its
// trail state toward the warp-active or warp-idle targets. When the depth
// leaves the clip range the star is reset in place; a star is never allowed
// to hold an invalid depth across a tick boundary. Returns true on reset.
func (f StarField) Update(pos *components.Position, st *components.Star, depthDelta, warpFactor float32, rng *rand.Rand) bool {
	pos.Z += depthDelta
	// Streak boost: warp pulls stars toward the camera faster than the
	// camera itself moves.
	pos.Z -= depthDelta * warpFactor * f.StreakGain

	if warpFactor > 0.1 {
		st.TrailLen = geom.Lerp(st.TrailLen, f.MaxSize*30*warpFactor, f.Smoothing)
		st.TrailAlpha = geom.Lerp(st.TrailAlpha, 50, f.Smoothing)
		st.Size = geom.Lerp(st.Size, f.MaxSize*3, f.Smoothing)
	} else {
		st.TrailLen = geom.Lerp(st.TrailLen, 0, f.Smoothing)
		st.TrailAlpha = geom.Lerp(st.TrailAlpha, 255, f.Smoothing)
		st.Size = geom.Lerp(st.Size, st.BaseSize, f.Smoothing)
	}

	if pos.Z >= f.NearClip && pos.Z <= f.FarClip {
		return false
	}

	passedFar := pos.Z > f.FarClip

	pos.X = uniform(rng, -f.WorldSize, f.WorldSize)
	pos.Y = uniform(rng, -f.WorldSize, f.WorldSize)
	st.Size = st.BaseSize
	st.TrailLen = 0
	st.TrailAlpha = 255

	if passedFar {
		// Re-enter from just beyond the spawn band so the star drifts
		// back into view instead of popping at the far plane.
		pos.Z = f.NearClip + f.WorldSize + uniform(rng, 0, f.WorldSize/2)
	} else {
		// Streaked past the camera: recycle to the far end.
		pos.Z = f.FarClip - uniform(rng, 0, f.WorldSize/2)
	}
	return true
}

// uniform returns a random float32 in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
