package renderer

import (
	"sort"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCompositorPolySortOrder(t *testing.T) {
	c := NewCompositor()
	c.Begin()

	depths := []float32{120, 5900, 40, 3000, 40, 950}
	for _, d := range depths {
		pts := c.Points()
		pts = append(pts, rl.NewVector2(0, 0), rl.NewVector2(1, 0), rl.NewVector2(0, 1))
		c.AddPoly(d, Red, pts)
	}

	// Sort the way Flush does, without touching a window.
	polys := c.SortedPolys()
	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Depth > polys[j].Depth
	})

	for i := 1; i < len(polys); i++ {
		if polys[i].Depth > polys[i-1].Depth {
			t.Fatalf("poly %d at depth %v drawn after shallower %v", i, polys[i].Depth, polys[i-1].Depth)
		}
	}
	if polys[0].Depth != 5900 || polys[len(polys)-1].Depth != 40 {
		t.Errorf("farthest/nearest = %v/%v, want 5900/40", polys[0].Depth, polys[len(polys)-1].Depth)
	}
}

func TestCompositorPointPooling(t *testing.T) {
	c := NewCompositor()

	c.Begin()
	pts := c.Points()
	pts = append(pts, rl.NewVector2(0, 0), rl.NewVector2(1, 0), rl.NewVector2(0, 1), rl.NewVector2(1, 1))
	c.AddPoly(10, Red, pts)
	c.Begin()

	// The freed slice comes back with its capacity intact.
	reused := c.Points()
	if reused == nil || cap(reused) < 4 {
		t.Errorf("pooled points not reused, cap = %d", cap(reused))
	}
	if len(reused) != 0 {
		t.Errorf("pooled points not reset, len = %d", len(reused))
	}
}

func TestCompositorStats(t *testing.T) {
	c := NewCompositor()
	c.Begin()

	c.AddStar(Sprite{Depth: 100})
	c.AddStar(Sprite{Depth: 200})
	c.AddNebula(Sprite{Depth: 5000})
	c.AddTrail(Line{})
	c.AddGridLine(Line{})
	c.AddGridLine(Line{})
	c.AddParticle(Sprite{Depth: 900})

	got := c.Stats()
	want := Stats{Nebulae: 1, Stars: 2, Trails: 1, GridLines: 2, Particles: 1}
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}

	c.Begin()
	if got := c.Stats(); got != (Stats{}) {
		t.Errorf("stats after Begin = %+v, want zero", got)
	}
}

func TestGridLineColor(t *testing.T) {
	h := GridLineColor(255, false)
	if h.B <= DarkGrey.B {
		t.Error("depth line not tinted blue")
	}
	if h.A != 255 {
		t.Errorf("alpha = %d, want 255", h.A)
	}

	v := GridLineColor(100, true)
	if v.R <= DarkGrey.R {
		t.Error("axis line not tinted red")
	}
	if v.A != 100 {
		t.Errorf("alpha = %d, want 100", v.A)
	}
}

func TestShadeFaceBounds(t *testing.T) {
	base := rl.NewColor(200, 200, 0, 255)
	for i := 0; i < 12; i++ {
		c := ShadeFace(base, i, 12)
		if c.R > base.R || c.G > base.G || c.B > base.B {
			t.Errorf("face %d shaded brighter than base: %+v", i, c)
		}
		if c.A != base.A {
			t.Errorf("face %d alpha changed", i)
		}
	}

	// Faces past the normal table fall to the ambient floor times the
	// gradient, never black.
	far := ShadeFace(base, 11, 12)
	if far.R == 0 && far.G == 0 {
		t.Error("ambient floor lost")
	}
}

func TestPulseShadeBounds(t *testing.T) {
	base := rl.NewColor(150, 150, 255, 255)
	for tick := 0; tick < 200; tick++ {
		c := PulseShade(base, float32(tick)*0.05, tick%23)
		// Pulse intensity stays in [0.5, 1.0].
		if float32(c.R) < float32(base.R)*0.5-1 || c.R > base.R {
			t.Fatalf("tick %d: pulse intensity escaped bounds, r=%d", tick, c.R)
		}
	}
}
