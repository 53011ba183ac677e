package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starflight/config"
	"github.com/pthm-cable/starflight/geom"
	"github.com/pthm-cable/starflight/renderer"
	"github.com/pthm-cable/starflight/scene"
	"github.com/pthm-cable/starflight/telemetry"
)

// Draw renders one frame: collect the draw lists, composite them back to
// front, overlay the HUD, then record telemetry for the tick.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseCollect)
	g.collect()

	g.perf.StartPhase(telemetry.PhaseComposite)
	rl.BeginDrawing()
	g.ctx.Clear()
	g.comp.Flush(g.ctx)

	renderer.DrawHUD(g.ctx, renderer.HUDState{
		Speed:      g.cam.Speed,
		WarpFactor: g.cam.WarpFactor,
		WarpMax:    float32(config.Cfg().Flight.WarpSpeed),
	})

	g.perf.StartPhase(telemetry.PhasePresent)
	rl.EndDrawing()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.recordTelemetry()

	g.perf.EndFrame()
}

// collect walks the scene and fills the compositor's draw lists. Pure
// math; safe to run headless.
func (g *Game) collect() {
	g.comp.Begin()
	camPos := g.cam.DrawPos()
	clipped := 0

	// Stars use the longer focal length. Brightness fades with the depth
	// size factor scaled by the warp trail alpha.
	q := g.starFilter.Query()
	for q.Next() {
		pos, st := q.Get()
		world := geom.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}

		p, ok := g.starViewport.Project(world, camPos)
		if !ok {
			clipped++
			continue
		}

		size := st.Size * p.SizeFactor
		if size < 0.5 {
			size = 0.5
		}
		alpha := geom.Clamp(255*p.SizeFactor*(st.TrailAlpha/255), 0, 255)
		color := renderer.WithAlpha(renderer.StarPalette[st.Palette], uint8(alpha))

		g.comp.AddStar(renderer.Sprite{
			X: p.X, Y: p.Y,
			Radius: size / 2,
			Color:  color,
			Depth:  p.Depth,
		})

		// The streak trails away from the camera behind the star.
		if st.TrailLen > 0.5 {
			tail := world
			tail.Z += st.TrailLen
			tp, ok := g.starViewport.Project(tail, camPos)
			if ok {
				g.comp.AddTrail(renderer.Line{
					From:      rl.NewVector2(p.X, p.Y),
					To:        rl.NewVector2(tp.X, tp.Y),
					Thickness: size/2 + 1,
					Color:     renderer.WithAlpha(color, uint8(alpha*0.5)),
				})
			}
		}
	}

	nq := g.nebulaFilter.Query()
	for nq.Next() {
		pos, nb := nq.Get()
		world := geom.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}

		p, ok := g.starViewport.Project(world, camPos)
		if !ok {
			clipped++
			continue
		}

		// Blobs never shrink below a visible floor.
		size := nb.Size * p.SizeFactor
		if size < 50 {
			size = 50
		}
		g.comp.AddNebula(renderer.Sprite{
			X: p.X, Y: p.Y,
			Radius: size / 2,
			Color:  renderer.WithAlpha(renderer.NebulaPalette[nb.Palette], uint8(nb.Alpha)),
			Depth:  p.Depth,
		})
	}

	g.gridBuf = g.ground.Lines(g.cam.X, g.gridBuf[:0])
	for _, ln := range g.gridBuf {
		p1, ok1 := g.meshViewport.Project(ln.From, camPos)
		p2, ok2 := g.meshViewport.Project(ln.To, camPos)
		if !ok1 || !ok2 {
			clipped++
			continue
		}
		g.comp.AddGridLine(renderer.Line{
			From:      rl.NewVector2(p1.X, p1.Y),
			To:        rl.NewVector2(p2.X, p2.Y),
			Thickness: ln.Thickness,
			Color:     renderer.GridLineColor(ln.Alpha, ln.Vertical),
		})
	}

	for _, m := range g.meshes {
		clipped += g.collectMesh(m, camPos)
	}

	for _, e := range g.emitters {
		for _, pt := range e.Particles() {
			p, ok := g.meshViewport.Project(pt.Pos, camPos)
			if !ok {
				clipped++
				continue
			}

			size := pt.Size * p.SizeFactor
			if size <= 0.5 {
				continue
			}
			alpha := geom.Clamp(255*pt.Remaining/pt.Lifetime, 0, 255)

			g.comp.AddParticle(renderer.Sprite{
				X: p.X, Y: p.Y,
				Radius: size / 2,
				Color:  renderer.WithAlpha(renderer.Orange, uint8(alpha)),
				Depth:  p.Depth,
			})
		}
	}

	g.clippedThisFrame = clipped
}

// collectMesh transforms and projects one mesh, adding every fully visible
// face as a depth-keyed polygon. A face with any clipped vertex is dropped
// whole. Returns the number of clipped vertices.
func (g *Game) collectMesh(m scene.Mesh, camPos geom.Vec3) int {
	pose := m.Pose()
	verts := m.LocalVertices()

	g.projBuf = g.projBuf[:0]
	g.okBuf = g.okBuf[:0]

	clipped := 0
	for _, v := range verts {
		world := geom.Rotate3D(v, pose.AngleX, pose.AngleY, pose.AngleZ).
			Scale(pose.Scale).
			Add(pose.Position)

		p, ok := g.meshViewport.Project(world, camPos)
		if !ok {
			clipped++
		}
		g.projBuf = append(g.projBuf, p)
		g.okBuf = append(g.okBuf, ok)
	}

	for i, face := range m.Faces() {
		visible := true
		for _, vi := range face {
			if !g.okBuf[vi] {
				visible = false
				break
			}
		}
		if !visible {
			continue
		}

		var depth float32
		pts := g.comp.Points()
		for _, vi := range face {
			depth += g.projBuf[vi].Depth
			pts = append(pts, rl.NewVector2(g.projBuf[vi].X, g.projBuf[vi].Y))
		}
		depth /= float32(len(face))

		g.comp.AddPoly(depth, m.FaceColor(i), pts)
	}

	return clipped
}
