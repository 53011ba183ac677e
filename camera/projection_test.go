package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/starflight/geom"
)

func testViewport() Viewport {
	return Viewport{
		CenterX:  600,
		CenterY:  400,
		Distance: 300,
		NearClip: 1,
		FarClip:  6000,
	}
}

func TestProjectClipping(t *testing.T) {
	v := testViewport()

	tests := []struct {
		name    string
		z       float32
		visible bool
	}{
		{"behind camera", -100, false},
		{"in front of near clip", 0.5, false},
		{"at near clip", 1, true},
		{"mid range", 3000, true},
		{"at far clip", 6000, true},
		{"beyond far clip", 6000.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := v.Project(geom.Vec3{X: 50, Y: -20, Z: tt.z}, geom.Vec3{})
			if ok != tt.visible {
				t.Fatalf("visible = %v, want %v", ok, tt.visible)
			}
			if ok {
				if math.IsNaN(float64(p.X)) || math.IsInf(float64(p.X), 0) {
					t.Errorf("non-finite screen x %v", p.X)
				}
				if p.Depth != tt.z {
					t.Errorf("depth = %v, want %v", p.Depth, tt.z)
				}
			}
		})
	}
}

func TestProjectScreenCenter(t *testing.T) {
	v := testViewport()

	// A point straight ahead at exactly the focal distance lands on the
	// screen center with a unit perspective factor.
	p, ok := v.Project(geom.Vec3{Z: 300}, geom.Vec3{})
	if !ok {
		t.Fatal("point unexpectedly clipped")
	}
	if p.X != v.CenterX || p.Y != v.CenterY {
		t.Errorf("projected to (%v, %v), want screen center (%v, %v)", p.X, p.Y, v.CenterX, v.CenterY)
	}

	// factor == 1.0 leaves lateral offsets unscaled.
	q, _ := v.Project(geom.Vec3{X: 10, Y: -10, Z: 300}, geom.Vec3{})
	if q.X != v.CenterX+10 || q.Y != v.CenterY-10 {
		t.Errorf("unit factor broken: got (%v, %v)", q.X, q.Y)
	}
}

func TestProjectCameraRelative(t *testing.T) {
	v := testViewport()

	// Shifting world point and camera together must not change the result.
	a, _ := v.Project(geom.Vec3{X: 100, Y: 50, Z: 500}, geom.Vec3{})
	b, _ := v.Project(geom.Vec3{X: 350, Y: -150, Z: 500}, geom.Vec3{X: 250, Y: -200})
	if a != b {
		t.Errorf("projection not camera-relative: %v vs %v", a, b)
	}
}

func TestSizeFactorFalloff(t *testing.T) {
	v := testViewport()

	prev := float32(1.1)
	for z := v.NearClip; z <= v.FarClip; z += 50 {
		p, ok := v.Project(geom.Vec3{Z: z}, geom.Vec3{})
		if !ok {
			t.Fatalf("z=%v clipped inside range", z)
		}
		if p.SizeFactor > prev {
			t.Fatalf("size factor increased with depth at z=%v: %v > %v", z, p.SizeFactor, prev)
		}
		if p.SizeFactor < 0.1 || p.SizeFactor > 1.0 {
			t.Fatalf("size factor %v out of [0.1, 1.0] at z=%v", p.SizeFactor, z)
		}
		prev = p.SizeFactor
	}

	near, _ := v.Project(geom.Vec3{Z: v.NearClip}, geom.Vec3{})
	if near.SizeFactor != 1.0 {
		t.Errorf("size factor at near clip = %v, want 1.0", near.SizeFactor)
	}
	far, _ := v.Project(geom.Vec3{Z: v.FarClip}, geom.Vec3{})
	if far.SizeFactor != 0.1 {
		t.Errorf("size factor at far clip = %v, want 0.1", far.SizeFactor)
	}
}
