package camera

import "github.com/pthm-cable/starflight/geom"

// Viewport holds the screen-space parameters for perspective projection.
// Two viewports exist in practice: stars use a longer focal length than
// meshes, sharing the same clip planes and screen center.
type Viewport struct {
	CenterX, CenterY float32
	Distance         float32 // Focal length of the perspective divide
	NearClip         float32
	FarClip          float32
}

// Projected is a world point mapped to the screen.
type Projected struct {
	X, Y float32
	// SizeFactor falls off linearly from 1.0 at the near clip to 0.1 at
	// the far clip; callers scale sizes and alpha by it.
	SizeFactor float32
	// Depth is the camera-space z distance, preserved for sort keys.
	Depth float32
}

// Project maps a world point to screen coordinates relative to camPos.
// Returns false when the point's view depth falls outside the clip range;
// a clipped point is not an error, the caller simply omits the primitive.
// Pure; called once per point per frame.
func (v Viewport) Project(world, camPos geom.Vec3) (Projected, bool) {
	p := world.Sub(camPos)

	if p.Z < v.NearClip || p.Z > v.FarClip {
		return Projected{}, false
	}

	// NearClip > 0 keeps the divisor away from zero.
	factor := v.Distance / p.Z

	normalized := (p.Z - v.NearClip) / (v.FarClip - v.NearClip)
	size := 1.0 - normalized
	if size < 0.1 {
		size = 0.1
	}

	return Projected{
		X:          p.X*factor + v.CenterX,
		Y:          p.Y*factor + v.CenterY,
		SizeFactor: size,
		Depth:      p.Z,
	}, true
}
