package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/starflight/geom"
)

func testEmitterParams() EmitterParams {
	return EmitterParams{
		Source:       geom.Vec3{X: -120, Y: -15, Z: 120},
		MaxParticles: 500,
		Rate:         1000,
		SizeMin:      1,
		SizeMax:      4,
		LifeMin:      0.5,
		LifeMax:      1.5,
		SpreadXY:     10,
		ThrustMin:    50,
		ThrustMax:    100,
	}
}

func TestEmitterNeverExceedsCap(t *testing.T) {
	e := NewEmitter(testEmitterParams())
	rng := rand.New(rand.NewSource(1))

	// Huge dt values would emit thousands of particles per tick without
	// the cap.
	for i := 0; i < 100; i++ {
		e.Update(5.0, geom.Vec3{}, geom.Vec3{}, 0, rng)
		if e.Count() > 500 {
			t.Fatalf("tick %d: %d particles exceeds cap", i, e.Count())
		}
	}
}

func TestEmitterFractionalRate(t *testing.T) {
	params := testEmitterParams()
	params.Rate = 3
	params.MaxParticles = 10000
	params.LifeMin = 1e6 // Keep everything alive for the duration
	params.LifeMax = 1e6
	e := NewEmitter(params)
	rng := rand.New(rand.NewSource(2))

	// At 3/s with dt=0.1, per-tick emission truncates to zero without the
	// carry accumulator. Over 10s the count must land on rate*time exactly.
	for i := 0; i < 100; i++ {
		e.Update(0.1, geom.Vec3{}, geom.Vec3{}, 0, rng)
	}
	if got := e.Count(); got < 29 || got > 30 {
		t.Errorf("emitted %d particles over 10s at 3/s, want ~30", got)
	}
}

func TestEmitterPrunesDead(t *testing.T) {
	params := testEmitterParams()
	params.LifeMin = 0.2
	params.LifeMax = 0.2
	e := NewEmitter(params)
	rng := rand.New(rand.NewSource(3))

	e.Update(0.1, geom.Vec3{}, geom.Vec3{}, 0, rng)
	if e.Count() == 0 {
		t.Fatal("no particles emitted")
	}

	// Every particle shares a 0.2s lifetime, so a 1s tick outlives the
	// existing pool and the particles emitted during that same tick.
	e.Update(1.0, geom.Vec3{}, geom.Vec3{}, 0, rng)
	if e.Count() != 0 {
		t.Errorf("%d particles survived past their lifetime", e.Count())
	}
}

func TestEmitterSourceRotatesWithParent(t *testing.T) {
	params := testEmitterParams()
	params.Source = geom.Vec3{X: 1, Y: 0, Z: 0}
	params.SpreadXY = 0
	params.ThrustMin = 0
	params.ThrustMax = 0
	e := NewEmitter(params)
	rng := rand.New(rand.NewSource(4))

	// Half turn about Y moves the source from +x to -x.
	e.Update(0.01, geom.Vec3{}, geom.Vec3{Y: math.Pi}, 0, rng)
	if e.Count() == 0 {
		t.Fatal("no particles emitted")
	}
	p := e.Particles()[0]
	if math.Abs(float64(p.Pos.X+1)) > 1e-4 {
		t.Errorf("spawn x = %v, want -1 after half-turn rotation", p.Pos.X)
	}
}
