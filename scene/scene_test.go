package scene

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/starflight/camera"
	"github.com/pthm-cable/starflight/geom"
	"github.com/pthm-cable/starflight/renderer"
)

func TestCubeFaceProjection(t *testing.T) {
	v := camera.Viewport{CenterX: 600, CenterY: 400, Distance: 300, NearClip: 1, FarClip: 6000}
	c := NewCube(geom.Vec3{Z: 300}, 1, renderer.Red)

	// Zero rotation, unit scale: transform is a pure translation.
	type projFace struct {
		meanDepth float32
		xs, ys    map[float32]bool
	}
	var faces []projFace
	for _, face := range c.Faces() {
		pf := projFace{xs: map[float32]bool{}, ys: map[float32]bool{}}
		for _, vi := range face {
			world := c.LocalVertices()[vi].Scale(c.Pose().Scale).Add(c.Pose().Position)
			p, ok := v.Project(world, geom.Vec3{})
			if !ok {
				t.Fatalf("cube vertex %d clipped", vi)
			}
			pf.meanDepth += p.Depth
			pf.xs[p.X] = true
			pf.ys[p.Y] = true
		}
		pf.meanDepth /= float32(len(face))
		faces = append(faces, pf)
	}

	// Front and back quads sit on constant-depth planes and project to
	// axis-aligned squares: two distinct x values, two distinct y values.
	for _, i := range []int{0, 1} {
		if len(faces[i].xs) != 2 || len(faces[i].ys) != 2 {
			t.Errorf("face %d not axis-aligned: %d x values, %d y values", i, len(faces[i].xs), len(faces[i].ys))
		}
	}

	// Mean depths order the faces back to front: the back quad is deepest,
	// the front quad shallowest, the four side faces tie in between.
	if faces[1].meanDepth != 300.5 {
		t.Errorf("back face depth = %v, want 300.5", faces[1].meanDepth)
	}
	if faces[0].meanDepth != 299.5 {
		t.Errorf("front face depth = %v, want 299.5", faces[0].meanDepth)
	}
	for i := 2; i < 6; i++ {
		if faces[i].meanDepth != 300 {
			t.Errorf("side face %d depth = %v, want 300", i, faces[i].meanDepth)
		}
	}
}

func TestShipMerge(t *testing.T) {
	s := NewShip(geom.Vec3{Z: 1000}, 150)

	if got := len(s.LocalVertices()); got != 29 {
		t.Errorf("vertex count = %d, want 29", got)
	}
	if got := len(s.Faces()); got != 23 {
		t.Errorf("face count = %d, want 23", got)
	}

	// Face indices attribute back to their part across merge boundaries.
	tests := []struct {
		faceIdx int
		part    int
	}{
		{0, ShipBody},
		{5, ShipBody},
		{6, ShipLeftWing},
		{11, ShipLeftWing},
		{12, ShipRightWing},
		{17, ShipRightWing},
		{18, ShipCockpit},
		{22, ShipCockpit},
	}
	for _, tt := range tests {
		if got := s.PartForFace(tt.faceIdx); got != tt.part {
			t.Errorf("PartForFace(%d) = %d, want %d", tt.faceIdx, got, tt.part)
		}
	}

	// Merged faces must only reference merged vertices.
	for i, f := range s.Faces() {
		for _, vi := range f {
			if vi < 0 || vi >= len(s.LocalVertices()) {
				t.Fatalf("face %d references vertex %d out of range", i, vi)
			}
		}
	}

	// Cockpit vertices landed after the body and wings with ratio and
	// offset applied: the apex sits at 0.5*0.7 + 0.3 above the origin.
	apex := s.LocalVertices()[24]
	if apex.Y != 0.5*0.7+0.3 {
		t.Errorf("cockpit apex y = %v, want %v", apex.Y, 0.5*0.7+0.3)
	}

	mounts := s.EngineMounts()
	if mounts[0].X != -120 || mounts[1].X != 120 {
		t.Errorf("engine mounts at x %v, %v, want -120, 120", mounts[0].X, mounts[1].X)
	}
}

func testAsteroidParams() AsteroidParams {
	return AsteroidParams{
		NearClip:   1,
		FarClip:    6000,
		WorldSize:  3000,
		ScaleMin:   50,
		ScaleMax:   200,
		DriftSpeed: 5,
		MaxSpin:    0.02,
	}
}

func TestAsteroidShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := NewAsteroid(testAsteroidParams(), geom.Vec3{Z: 2000}, 100, rng)

	n := len(a.LocalVertices()) - 1 // Outline vertices, excluding the center
	if n < 8 || n > 12 {
		t.Fatalf("outline vertex count = %d, want 8..12", n)
	}
	if got := len(a.Faces()); got != n+1 {
		t.Errorf("face count = %d, want fan of %d plus base", got, n)
	}

	// Every fan triangle touches the center vertex; the base face walks the
	// full outline.
	center := n
	for i := 0; i < n; i++ {
		f := a.Faces()[i]
		if len(f) != 3 || f[2] != center {
			t.Errorf("fan face %d = %v, want triangle ending at center %d", i, f, center)
		}
	}
	base := a.Faces()[n]
	if len(base) != n {
		t.Errorf("base face has %d vertices, want %d", len(base), n)
	}
}

func TestAsteroidRespawn(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	params := testAsteroidParams()
	a := NewAsteroid(params, geom.Vec3{X: 10, Y: 10, Z: 0.5}, 100, rng)

	// Below the near clip: full respawn far ahead with a fresh scale.
	if !a.Advance(1.0/60.0, 0, rng) {
		t.Fatal("no respawn reported below the near clip")
	}
	z := a.Pose().Position.Z
	if z < params.FarClip || z > params.FarClip+params.WorldSize/2 {
		t.Errorf("respawn depth %v outside [%v, %v]", z, params.FarClip, params.FarClip+params.WorldSize/2)
	}
	if s := a.Pose().Scale; s < params.ScaleMin || s > params.ScaleMax {
		t.Errorf("respawn scale %v outside [%v, %v]", s, params.ScaleMin, params.ScaleMax)
	}

	// Past the far band: wrap to the near side without a full respawn.
	a.Pose().Position.Z = params.FarClip + params.WorldSize + 1
	if a.Advance(1.0/60.0, 0, rng) {
		t.Fatal("far-band wrap reported as respawn")
	}
	z = a.Pose().Position.Z
	if z < params.NearClip || z > params.NearClip+params.WorldSize/2 {
		t.Errorf("wrap depth %v outside [%v, %v]", z, params.NearClip, params.NearClip+params.WorldSize/2)
	}
}

func TestGroundPlaneLines(t *testing.T) {
	g := GroundPlane{
		NumLines:  40,
		Spacing:   80,
		YOffset:   100,
		HalfWidth: 3000,
		NearClip:  1,
		FarClip:   6000,
	}

	lines := g.Lines(0, nil)
	if len(lines) == 0 {
		t.Fatal("no grid lines emitted")
	}

	for _, ln := range lines {
		if ln.Alpha == 0 {
			t.Fatal("fully faded line emitted")
		}
		if ln.Thickness < 1 || ln.Thickness > 3 {
			t.Fatalf("thickness %v outside [1, 3]", ln.Thickness)
		}
		if ln.From.Y != 100 || ln.To.Y != 100 {
			t.Fatal("grid line off the plane")
		}
	}

	// The center depth line is the brightest and thickest.
	var center *GridLine
	for i := range lines {
		ln := &lines[i]
		if !ln.Vertical && ln.From.Z == 0 {
			center = ln
		}
	}
	if center == nil {
		t.Fatal("no center depth line")
	}
	if center.Alpha != 255 || center.Thickness != 3 {
		t.Errorf("center line alpha=%d thickness=%v, want 255 and 3", center.Alpha, center.Thickness)
	}

	// Axis lines recenter on the camera.
	shifted := g.Lines(500, nil)
	found := false
	for _, ln := range shifted {
		if ln.Vertical && ln.From.X == 500 {
			found = true
		}
	}
	if !found {
		t.Error("axis lines did not follow the camera")
	}
}
