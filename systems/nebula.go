package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/starflight/components"
	"github.com/pthm-cable/starflight/geom"
)

// NebulaField holds spawn and update parameters for nebula blobs.
// Nebulae sit at a larger scale than stars and couple to only half the
// camera's depth delta, which reads as parallax.
type NebulaField struct {
	WorldSize float32
	NearClip  float32
	FarClip   float32
	MinSize   float32
	MaxSize   float32
	MinAlpha  float32
	MaxAlpha  float32

	PaletteSize int
}

// Spawn creates a nebula blob far from the camera.
func (f NebulaField) Spawn(rng *rand.Rand) (components.Position, components.Nebula) {
	baseAlpha := uniform(rng, f.MinAlpha, f.MaxAlpha)

	pos := components.Position{
		X: uniform(rng, -f.WorldSize*2, f.WorldSize*2),
		Y: uniform(rng, -f.WorldSize*2, f.WorldSize*2),
		Z: uniform(rng, f.FarClip/2, f.FarClip*1.5),
	}
	nb := components.Nebula{
		BaseAlpha: baseAlpha,
		Alpha:     baseAlpha,
		FadeSpeed: uniform(rng, 0.01, 0.05),
		Size:      uniform(rng, f.MinSize, f.MaxSize),
		Palette:   uint8(rng.Intn(f.PaletteSize)),
	}
	return pos, nb
}

// Update advances one nebula blob: half-rate depth motion, alpha pulsing
// against the frame clock, and a brightness push during warp. Blobs that
// drift out of [NearClip, 2*FarClip] are reset far behind the far plane.
// Returns true on reset.
func (f NebulaField) Update(pos *components.Position, nb *components.Nebula, depthDelta, warpFactor, timeSec float32, rng *rand.Rand) bool {
	pos.Z += depthDelta * 0.5

	pulse := float32(math.Sin(float64(timeSec * nb.FadeSpeed)))
	nb.Alpha = geom.Clamp(nb.BaseAlpha+pulse*nb.BaseAlpha*0.5, 0, 255)

	if warpFactor > 0.1 {
		nb.Alpha = geom.Lerp(nb.Alpha, 255, 0.05)
	} else {
		nb.Alpha = geom.Lerp(nb.Alpha, nb.BaseAlpha, 0.05)
	}

	if pos.Z >= f.NearClip && pos.Z <= f.FarClip*2 {
		return false
	}

	pos.X = uniform(rng, -f.WorldSize*2, f.WorldSize*2)
	pos.Y = uniform(rng, -f.WorldSize*2, f.WorldSize*2)
	pos.Z = f.FarClip + uniform(rng, f.WorldSize, f.WorldSize*2)
	return true
}
