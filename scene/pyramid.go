package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starflight/geom"
	"github.com/pthm-cable/starflight/renderer"
)

// Apex-up square pyramid: four triangle sides then the quad base.
var pyramidVerts = []geom.Vec3{
	{Y: 0.5},
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
}

var pyramidFaces = [][]int{
	{0, 1, 2},
	{0, 2, 3},
	{0, 3, 4},
	{0, 4, 1},
	{1, 2, 3, 4},
}

// Pyramid is a slowly spinning shaded pyramid.
type Pyramid struct {
	pose  Pose
	color rl.Color
}

func NewPyramid(pos geom.Vec3, size float32, color rl.Color) *Pyramid {
	return &Pyramid{
		pose:  Pose{Position: pos, Scale: size},
		color: color,
	}
}

func (p *Pyramid) LocalVertices() []geom.Vec3 { return pyramidVerts }
func (p *Pyramid) Faces() [][]int             { return pyramidFaces }
func (p *Pyramid) Pose() *Pose                { return &p.pose }

func (p *Pyramid) Update(dt float32) {
	p.pose.AngleX += 0.04 * dt
	p.pose.AngleY += 0.06 * dt
}

func (p *Pyramid) FaceColor(faceIdx int) rl.Color {
	return renderer.ShadeFace(p.color, faceIdx, len(pyramidFaces))
}
