// Package geom provides the small fixed-function 3D math the renderer needs:
// three-axis point rotation, linear interpolation, and clamping helpers.
package geom

import "math"

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to unit length, or the zero vector unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Rotate3D rotates p around the X, then Y, then Z axis. The order matters:
// results are not interchangeable with any other composition, so every
// caller in the pipeline goes through this one function.
func Rotate3D(p Vec3, angleX, angleY, angleZ float32) Vec3 {
	x, y, z := p.X, p.Y, p.Z

	cosX, sinX := cossin(angleX)
	y, z = y*cosX-z*sinX, y*sinX+z*cosX

	cosY, sinY := cossin(angleY)
	x, z = x*cosY+z*sinY, -x*sinY+z*cosY

	cosZ, sinZ := cossin(angleZ)
	x, y = x*cosZ-y*sinZ, x*sinZ+y*cosZ

	return Vec3{x, y, z}
}

func cossin(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(c), float32(s)
}

// Lerp interpolates from a to b by t. Callers clamp t where monotonic
// convergence is required.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}
