package game

import (
	"github.com/pthm-cable/starflight/camera"
	"github.com/pthm-cable/starflight/geom"
	"github.com/pthm-cable/starflight/telemetry"
)

// Update runs one graphical frame tick: input then simulation. Drawing and
// telemetry happen in Draw so the perf phases line up with the real work.
func (g *Game) Update() {
	g.perf.StartFrame()

	g.perf.StartPhase(telemetry.PhaseInput)
	in := readInput()

	g.perf.StartPhase(telemetry.PhaseSimulate)
	g.step(in)
}

// UpdateHeadless runs one tick without a window: constant forward thrust,
// full collect pass for clipping stats, no drawing.
func (g *Game) UpdateHeadless() {
	g.perf.StartFrame()

	g.perf.StartPhase(telemetry.PhaseSimulate)
	g.step(camera.Input{Forward: true})

	g.perf.StartPhase(telemetry.PhaseCollect)
	g.collect()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.recordTelemetry()

	g.perf.EndFrame()
}

// step advances the whole scene by one fixed-dt tick.
func (g *Game) step(in camera.Input) {
	dt := g.dt

	if in.WarpToggled && !g.cam.WarpActive {
		g.collector.RecordWarpEngagement()
	}
	g.cam.Update(dt, in)

	delta := g.cam.DepthDelta
	warp := g.cam.WarpFactor

	starResets := 0
	q := g.starFilter.Query()
	for q.Next() {
		pos, st := q.Get()
		if g.starField.Update(pos, st, delta, warp, g.rng) {
			starResets++
		}
	}
	g.collector.RecordStarResets(starResets)

	nebulaResets := 0
	nq := g.nebulaFilter.Query()
	for nq.Next() {
		pos, nb := nq.Get()
		if g.nebulaField.Update(pos, nb, delta, warp, g.elapsed, g.rng) {
			nebulaResets++
		}
	}
	g.collector.RecordNebulaResets(nebulaResets)

	for _, m := range g.meshes {
		m.Update(dt)
	}
	for _, a := range g.asteroids {
		if a.Advance(dt, delta, g.rng) {
			g.collector.RecordAsteroidRespawn()
		}
	}

	shipPose := g.ship.Pose()
	shipRot := geom.Vec3{X: shipPose.AngleX, Y: shipPose.AngleY, Z: shipPose.AngleZ}
	for _, e := range g.emitters {
		e.Update(dt, shipPose.Position, shipRot, delta, g.rng)
	}

	g.tick++
	g.elapsed += dt
}
