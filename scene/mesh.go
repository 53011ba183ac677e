// Package scene holds the renderable 3D bodies of the flythrough: the
// wireframe-shaded primitives, the procedural asteroids, the composite ship
// and the ground grid. Bodies expose local geometry plus a mutable pose; the
// render pass transforms, projects and depth-sorts their faces.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starflight/geom"
)

// Pose is a body's placement in the world. Position z is the camera-relative
// view depth, like every other depth in the scene.
type Pose struct {
	Position               geom.Vec3
	Scale                  float32
	AngleX, AngleY, AngleZ float32
}

// Mesh is a renderable polyhedral body. Faces index into LocalVertices and
// may be triangles or quads; their declaration order is stable because face
// shading keys off the index.
type Mesh interface {
	LocalVertices() []geom.Vec3
	Faces() [][]int
	Pose() *Pose
	Update(dt float32)
	FaceColor(faceIdx int) rl.Color
}

// part is a sub-body merged into a composite mesh. Vertices are scaled by
// Ratio then shifted by Offset, both in the parent's local space.
type part struct {
	verts  []geom.Vec3
	faces  [][]int
	ratio  float32
	offset geom.Vec3
}

// mergeParts flattens sub-bodies into one vertex and face list, remapping
// face indices past the merged vertices. ends[i] is one past the last face
// of part i, so face ownership can be recovered by range lookup.
func mergeParts(parts []part) (verts []geom.Vec3, faces [][]int, ends []int) {
	for _, p := range parts {
		base := len(verts)
		for _, v := range p.verts {
			verts = append(verts, v.Scale(p.ratio).Add(p.offset))
		}
		for _, f := range p.faces {
			mapped := make([]int, len(f))
			for i, idx := range f {
				mapped[i] = idx + base
			}
			faces = append(faces, mapped)
		}
		ends = append(ends, len(faces))
	}
	return verts, faces, ends
}

// boxFaces is the shared quad topology for any 8-vertex box laid out as
// front quad then back quad: front, back, bottom, top, right, left.
func boxFaces() [][]int {
	return [][]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{2, 3, 7, 6},
		{1, 2, 6, 5},
		{0, 3, 7, 4},
	}
}
