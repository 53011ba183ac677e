package systems

import (
	"math/rand"

	"github.com/pthm-cable/starflight/geom"
)

// Particle is a single engine trail particle. Particles are destroyed when
// their remaining lifetime reaches zero; they are the only entities in the
// scene with a finite lifecycle.
type Particle struct {
	Pos       geom.Vec3
	Vel       geom.Vec3
	Size      float32
	Lifetime  float32
	Remaining float32
}

// EmitterParams configures an engine trail emitter.
type EmitterParams struct {
	Source       geom.Vec3 // Emission point relative to the parent mesh origin
	MaxParticles int
	Rate         float32 // Particles per second

	SizeMin, SizeMax float32
	LifeMin, LifeMax float32
	SpreadXY         float32 // Velocity jitter in x and y
	ThrustMin        float32 // Rearward (z) velocity range
	ThrustMax        float32
}

// Emitter owns a capped pool of engine trail particles attached to a parent
// mesh. The emission counter carries fractional particles across frames so
// the long-run rate is exact regardless of frame timing.
type Emitter struct {
	params    EmitterParams
	particles []Particle
	carry     float32
}

// NewEmitter creates an emitter with preallocated particle storage.
func NewEmitter(params EmitterParams) *Emitter {
	return &Emitter{
		params:    params,
		particles: make([]Particle, 0, params.MaxParticles),
	}
}

// Update emits new particles at the parent's rotated source offset, then
// advances and prunes the pool. depthDelta keeps particles moving with the
// camera-relative scene like every other entity.
func (e *Emitter) Update(dt float32, parentPos, parentRot geom.Vec3, depthDelta float32, rng *rand.Rand) {
	e.carry += dt * e.params.Rate
	emit := int(e.carry)
	e.carry -= float32(emit)

	for i := 0; i < emit; i++ {
		if len(e.particles) >= e.params.MaxParticles {
			break
		}

		source := geom.Rotate3D(e.params.Source, parentRot.X, parentRot.Y, parentRot.Z)
		life := uniform(rng, e.params.LifeMin, e.params.LifeMax)

		e.particles = append(e.particles, Particle{
			Pos: parentPos.Add(source),
			Vel: geom.Vec3{
				X: uniform(rng, -e.params.SpreadXY, e.params.SpreadXY),
				Y: uniform(rng, -e.params.SpreadXY, e.params.SpreadXY),
				Z: uniform(rng, e.params.ThrustMin, e.params.ThrustMax),
			},
			Size:      uniform(rng, e.params.SizeMin, e.params.SizeMax),
			Lifetime:  life,
			Remaining: life,
		})
	}

	alive := 0
	for i := range e.particles {
		p := &e.particles[i]

		p.Remaining -= dt
		if p.Remaining <= 0 {
			continue
		}

		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt
		p.Pos.Z += p.Vel.Z*dt + depthDelta

		e.particles[alive] = e.particles[i]
		alive++
	}
	e.particles = e.particles[:alive]
}

// Particles returns the live particle slice. The slice is owned by the
// emitter and valid until the next Update.
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// Count returns the number of live particles.
func (e *Emitter) Count() int {
	return len(e.particles)
}
