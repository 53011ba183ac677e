package scene

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starflight/geom"
	"github.com/pthm-cable/starflight/renderer"
)

var asteroidColor = rl.NewColor(100, 80, 70, 255)

// AsteroidParams holds the spawn and respawn ranges for the asteroid belt.
type AsteroidParams struct {
	NearClip  float32
	FarClip   float32
	WorldSize float32

	ScaleMin, ScaleMax float32
	DriftSpeed         float32 // Lateral wander amplitude per second
	MaxSpin            float32 // Per-axis rotation speed bound
}

// Asteroid is an irregular tumbling body that drifts past the camera and
// respawns far ahead with a fresh shape scale and spin.
type Asteroid struct {
	params AsteroidParams
	pose   Pose
	verts  []geom.Vec3
	faces  [][]int

	spinX, spinY, spinZ float32
}

// NewAsteroid builds a randomized lump: 8 to 12 vertices scattered in the
// unit cube plus a center vertex, faced as a triangle fan around the center
// with the outer ring closed by one big polygon.
func NewAsteroid(params AsteroidParams, pos geom.Vec3, scale float32, rng *rand.Rand) *Asteroid {
	n := 8 + rng.Intn(5)

	verts := make([]geom.Vec3, 0, n+1)
	for i := 0; i < n; i++ {
		verts = append(verts, geom.Vec3{
			X: rng.Float32() - 0.5,
			Y: rng.Float32() - 0.5,
			Z: rng.Float32() - 0.5,
		})
	}
	center := len(verts)
	verts = append(verts, geom.Vec3{})

	faces := make([][]int, 0, n+1)
	for i := 0; i < n; i++ {
		faces = append(faces, []int{i, (i + 1) % n, center})
	}
	ring := make([]int, n)
	for i := range ring {
		ring[i] = i
	}
	faces = append(faces, ring)

	a := &Asteroid{
		params: params,
		pose:   Pose{Position: pos, Scale: scale},
		verts:  verts,
		faces:  faces,
	}
	a.rerollSpin(rng)
	return a
}

func (a *Asteroid) rerollSpin(rng *rand.Rand) {
	a.spinX = uniform(rng, -a.params.MaxSpin, a.params.MaxSpin)
	a.spinY = uniform(rng, -a.params.MaxSpin, a.params.MaxSpin)
	a.spinZ = uniform(rng, -a.params.MaxSpin, a.params.MaxSpin)
}

func (a *Asteroid) LocalVertices() []geom.Vec3 { return a.verts }
func (a *Asteroid) Faces() [][]int             { return a.faces }
func (a *Asteroid) Pose() *Pose                { return &a.pose }

// Update applies only the tumble; drift, depth coupling and respawn happen
// in Advance because they need the camera delta and the shared rng.
func (a *Asteroid) Update(dt float32) {
	a.pose.AngleX += a.spinX * dt
	a.pose.AngleY += a.spinY * dt
	a.pose.AngleZ += a.spinZ * dt
}

// Advance drifts the asteroid laterally, advances its depth by the camera
// delta and respawns it far ahead once it crosses the near clip. A body
// carried past the far band wraps to the near side instead. Returns true on
// a full respawn.
func (a *Asteroid) Advance(dt, depthDelta float32, rng *rand.Rand) bool {
	p := &a.pose
	p.Position.X += uniform(rng, -a.params.DriftSpeed, a.params.DriftSpeed) * dt
	p.Position.Y += uniform(rng, -a.params.DriftSpeed, a.params.DriftSpeed) * dt
	p.Position.Z += depthDelta

	switch {
	case p.Position.Z < a.params.NearClip:
		p.Position.Z = a.params.FarClip + uniform(rng, 0, a.params.WorldSize/2)
		p.Position.X = uniform(rng, -a.params.WorldSize, a.params.WorldSize)
		p.Position.Y = uniform(rng, -a.params.WorldSize, a.params.WorldSize)
		p.Scale = uniform(rng, a.params.ScaleMin, a.params.ScaleMax)
		a.rerollSpin(rng)
		return true
	case p.Position.Z > a.params.FarClip+a.params.WorldSize:
		p.Position.Z = a.params.NearClip + uniform(rng, 0, a.params.WorldSize/2)
	}
	return false
}

func (a *Asteroid) FaceColor(faceIdx int) rl.Color {
	return renderer.ShadeFace(asteroidColor, faceIdx, len(a.faces))
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
