package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starflight/geom"
	"github.com/pthm-cable/starflight/renderer"
)

// Ship part indices, in merge order.
const (
	ShipBody = iota
	ShipLeftWing
	ShipRightWing
	ShipCockpit
)

var shipPartColors = [...]rl.Color{
	rl.NewColor(150, 150, 255, 255),
	rl.NewColor(100, 100, 180, 255),
	rl.NewColor(100, 100, 180, 255),
	rl.NewColor(80, 80, 120, 255),
}

// Elongated box hull, front quad first.
var shipBodyVerts = []geom.Vec3{
	{X: -0.5, Y: -0.2, Z: -1.0}, {X: 0.5, Y: -0.2, Z: -1.0},
	{X: 0.5, Y: 0.2, Z: -1.0}, {X: -0.5, Y: 0.2, Z: -1.0},
	{X: -0.5, Y: -0.2, Z: 1.0}, {X: 0.5, Y: -0.2, Z: 1.0},
	{X: 0.5, Y: 0.2, Z: 1.0}, {X: -0.5, Y: 0.2, Z: 1.0},
}

// Thin slab wing, top quad first. The right wing mirrors it in x.
var shipLeftWingVerts = []geom.Vec3{
	{X: -1.5, Z: -0.2}, {X: -0.5, Z: -0.2}, {X: -0.5, Z: 0.2}, {X: -1.5, Z: 0.2},
	{X: -1.5, Y: -0.1, Z: -0.2}, {X: -0.5, Y: -0.1, Z: -0.2},
	{X: -0.5, Y: -0.1, Z: 0.2}, {X: -1.5, Y: -0.1, Z: 0.2},
}

var shipRightWingVerts = []geom.Vec3{
	{X: 0.5, Z: -0.2}, {X: 1.5, Z: -0.2}, {X: 1.5, Z: 0.2}, {X: 0.5, Z: 0.2},
	{X: 0.5, Y: -0.1, Z: -0.2}, {X: 1.5, Y: -0.1, Z: -0.2},
	{X: 1.5, Y: -0.1, Z: 0.2}, {X: 0.5, Y: -0.1, Z: 0.2},
}

// Canopy pyramid, apex first, sitting on a small quad base.
var shipCockpitVerts = []geom.Vec3{
	{Y: 0.5, Z: -1.0},
	{X: -0.3, Y: 0.1, Z: -1.2}, {X: 0.3, Y: 0.1, Z: -1.2},
	{X: 0.3, Y: 0.1, Z: -0.8}, {X: -0.3, Y: 0.1, Z: -0.8},
}

var shipCockpitFaces = [][]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1}, {1, 2, 3, 4},
}

// Ship is the composite escort vessel: a hull, two wings and a cockpit
// merged into one face list so the render pass treats it like any other
// mesh. Face ownership survives the merge for per-part coloring.
type Ship struct {
	pose     Pose
	verts    []geom.Vec3
	faces    [][]int
	partEnds []int
	elapsed  float32
}

func NewShip(pos geom.Vec3, scale float32) *Ship {
	verts, faces, ends := mergeParts([]part{
		{verts: shipBodyVerts, faces: boxFaces(), ratio: 1.5},
		{verts: shipLeftWingVerts, faces: boxFaces(), ratio: 0.5, offset: geom.Vec3{X: -1.0}},
		{verts: shipRightWingVerts, faces: boxFaces(), ratio: 0.5, offset: geom.Vec3{X: 1.0}},
		{verts: shipCockpitVerts, faces: shipCockpitFaces, ratio: 0.7, offset: geom.Vec3{Y: 0.3, Z: -0.5}},
	})
	return &Ship{
		pose:     Pose{Position: pos, Scale: scale},
		verts:    verts,
		faces:    faces,
		partEnds: ends,
	}
}

func (s *Ship) LocalVertices() []geom.Vec3 { return s.verts }
func (s *Ship) Faces() [][]int             { return s.faces }
func (s *Ship) Pose() *Pose                { return &s.pose }

// Update applies a gentle yaw and accumulates elapsed time for the hull
// light pulse.
func (s *Ship) Update(dt float32) {
	s.pose.AngleY += 0.002 * dt
	s.elapsed += dt
}

// PartForFace returns which sub-body a merged face index belongs to.
func (s *Ship) PartForFace(faceIdx int) int {
	for p, end := range s.partEnds {
		if faceIdx < end {
			return p
		}
	}
	return len(s.partEnds) - 1
}

// FaceColor gives each part its own base color with a pulsing running-light
// intensity instead of the directional shading used by the other meshes.
func (s *Ship) FaceColor(faceIdx int) rl.Color {
	return renderer.PulseShade(shipPartColors[s.PartForFace(faceIdx)], s.elapsed, faceIdx)
}

// EngineMounts returns the two exhaust positions in the ship's local frame,
// scaled to world units. The emitters rotate these with the ship's pose.
func (s *Ship) EngineMounts() [2]geom.Vec3 {
	sc := s.pose.Scale
	return [2]geom.Vec3{
		{X: -0.8 * sc, Y: -0.1 * sc, Z: 0.8 * sc},
		{X: 0.8 * sc, Y: -0.1 * sc, Z: 0.8 * sc},
	}
}
