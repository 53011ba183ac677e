package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starflight/geom"
	"github.com/pthm-cable/starflight/renderer"
)

// Unit cube centered on the origin, front quad first.
var cubeVerts = []geom.Vec3{
	{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5},
}

// Cube is a slowly tumbling shaded cube.
type Cube struct {
	pose  Pose
	faces [][]int
	color rl.Color
}

func NewCube(pos geom.Vec3, size float32, color rl.Color) *Cube {
	return &Cube{
		pose:  Pose{Position: pos, Scale: size},
		faces: boxFaces(),
		color: color,
	}
}

func (c *Cube) LocalVertices() []geom.Vec3 { return cubeVerts }
func (c *Cube) Faces() [][]int             { return c.faces }
func (c *Cube) Pose() *Pose                { return &c.pose }

// Update tumbles the cube at a different rate on each axis so no face stays
// hidden.
func (c *Cube) Update(dt float32) {
	c.pose.AngleX += 0.05 * dt
	c.pose.AngleY += 0.07 * dt
	c.pose.AngleZ += 0.03 * dt
}

func (c *Cube) FaceColor(faceIdx int) rl.Color {
	return renderer.ShadeFace(c.color, faceIdx, len(c.faces))
}
