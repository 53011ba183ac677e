package game

import (
	"testing"

	"github.com/pthm-cable/starflight/config"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	config.MustInit("")
	return NewGameWithOptions(Options{
		Seed:           1,
		StatsWindowSec: 5.0,
	})
}

func TestHeadlessTicks(t *testing.T) {
	g := newTestGame(t)
	defer g.Unload()

	for i := 0; i < 600; i++ {
		g.UpdateHeadless()
	}

	if g.Tick() != 600 {
		t.Errorf("tick = %d, want 600", g.Tick())
	}
	if g.Camera().Speed <= 0 {
		t.Error("constant forward thrust did not accelerate the camera")
	}
}

func TestStarPoolInvariants(t *testing.T) {
	g := newTestGame(t)
	defer g.Unload()
	cfg := config.Cfg()

	for i := 0; i < 1200; i++ {
		g.UpdateHeadless()
	}

	// The pool is fixed size and no star ever holds an invalid depth across
	// a tick boundary.
	count := 0
	q := g.starFilter.Query()
	for q.Next() {
		pos, _ := q.Get()
		if pos.Z < cfg.Derived.NearClip32 || pos.Z > cfg.Derived.FarClip32 {
			t.Fatalf("star at invalid depth %v", pos.Z)
		}
		count++
	}
	if count != cfg.Stars.Count {
		t.Errorf("star count = %d, want %d", count, cfg.Stars.Count)
	}
}

func TestSceneComposition(t *testing.T) {
	g := newTestGame(t)
	defer g.Unload()
	cfg := config.Cfg()

	// One cube, one pyramid, one ship plus the asteroid belt.
	if got := len(g.meshes); got != 3+cfg.Asteroids.Count {
		t.Errorf("mesh count = %d, want %d", got, 3+cfg.Asteroids.Count)
	}
	if len(g.asteroids) != cfg.Asteroids.Count {
		t.Errorf("asteroid count = %d, want %d", len(g.asteroids), cfg.Asteroids.Count)
	}

	g.UpdateHeadless()

	// The collect pass must produce work: the star field alone guarantees
	// sprites, and the scene meshes produce faces unless all happen to be
	// clipped, which the fixed cube placement prevents.
	stats := g.comp.Stats()
	if stats.Stars == 0 {
		t.Error("no stars collected")
	}
	if stats.Polys == 0 {
		t.Error("no mesh faces collected")
	}
	if stats.GridLines == 0 {
		t.Error("no grid lines collected")
	}
}

func TestEmittersFollowShip(t *testing.T) {
	g := newTestGame(t)
	defer g.Unload()

	for i := 0; i < 120; i++ {
		g.UpdateHeadless()
	}

	for i, e := range g.emitters {
		if e.Count() == 0 {
			t.Errorf("emitter %d produced no particles", i)
		}
	}
}
