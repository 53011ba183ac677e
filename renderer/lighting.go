package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starflight/geom"
)

// lightDir is the fixed scene light, normalized once at init.
var lightDir = geom.Vec3{X: 1, Y: 1, Z: -1}.Normalize()

// faceNormals covers the six axis-aligned faces in declaration order:
// front, back, bottom, top, right, left. Faces past the table (asteroid
// fans) get a zero normal and fall to the ambient floor.
var faceNormals = [6]geom.Vec3{
	{Z: -1},
	{Z: 1},
	{Y: -1},
	{Y: 1},
	{X: 1},
	{X: -1},
}

// ShadeFace applies the flat directional shading to a mesh face: intensity
// from the face normal against the scene light, floored at 0.2 ambient, then
// a per-face gradient that darkens later faces by up to 20%.
func ShadeFace(base rl.Color, faceIdx, faceCount int) rl.Color {
	var n geom.Vec3
	if faceIdx < len(faceNormals) {
		n = faceNormals[faceIdx]
	}

	intensity := geom.Clamp(n.Dot(lightDir), 0.2, 1.0)
	gradient := 1.0 - float32(faceIdx)/float32(faceCount)*0.2

	return scaleColor(base, intensity*gradient)
}

// PulseShade modulates a face color with a slow sine pulse phased by face
// index, bounded to [0.5, 1.0] so no face ever goes fully dark.
func PulseShade(base rl.Color, elapsed float32, faceIdx int) rl.Color {
	pulse := 0.8 + 0.2*float32(math.Sin(float64(elapsed*3+float32(faceIdx)*0.5)))
	return scaleColor(base, geom.Clamp(pulse, 0.5, 1.0))
}

func scaleColor(c rl.Color, f float32) rl.Color {
	return rl.NewColor(scaleChan(c.R, f), scaleChan(c.G, f), scaleChan(c.B, f), c.A)
}

func scaleChan(v uint8, f float32) uint8 {
	s := float32(v) * f
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}
