// Mesh preview tool - interactive single-mesh viewer with sliders.
//
// Usage: go run ./cmd/meshpreview
package main

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starflight/camera"
	"github.com/pthm-cable/starflight/geom"
	"github.com/pthm-cable/starflight/renderer"
	"github.com/pthm-cable/starflight/scene"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

// PreviewParams holds the pose values driven by the sliders.
type PreviewParams struct {
	Scale  float32
	Depth  float32
	AngleX float32
	AngleY float32
	AngleZ float32
}

const (
	meshCube = iota
	meshPyramid
	meshAsteroid
	meshShip
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Mesh Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(12345))

	params := PreviewParams{
		Scale: 100,
		Depth: 600,
	}

	viewport := camera.Viewport{
		CenterX:  10 + previewSize/2,
		CenterY:  windowHeight / 2,
		Distance: 300,
		NearClip: 1,
		FarClip:  6000,
	}
	ctx := renderer.Context{Width: windowWidth, Height: windowHeight}

	selected := int32(meshCube)
	mesh := buildMesh(selected, rng)
	animating := true

	var projBuf []camera.Projected
	var okBuf []bool

	type face struct {
		pts   []rl.Vector2
		color rl.Color
		depth float32
	}
	var faces []face

	for !rl.WindowShouldClose() {
		if animating {
			mesh.Update(rl.GetFrameTime())
			pose := mesh.Pose()
			params.AngleX = wrapAngle(pose.AngleX)
			params.AngleY = wrapAngle(pose.AngleY)
			params.AngleZ = wrapAngle(pose.AngleZ)
		}

		pose := mesh.Pose()
		pose.Position = geom.Vec3{Z: params.Depth}
		pose.Scale = params.Scale
		if !animating {
			pose.AngleX = params.AngleX
			pose.AngleY = params.AngleY
			pose.AngleZ = params.AngleZ
		}

		// Project every vertex, then gather the fully visible faces.
		verts := mesh.LocalVertices()
		projBuf = projBuf[:0]
		okBuf = okBuf[:0]
		for _, v := range verts {
			world := geom.Rotate3D(v, pose.AngleX, pose.AngleY, pose.AngleZ).
				Scale(pose.Scale).
				Add(pose.Position)
			p, ok := viewport.Project(world, geom.Vec3{})
			projBuf = append(projBuf, p)
			okBuf = append(okBuf, ok)
		}

		faces = faces[:0]
		for i, f := range mesh.Faces() {
			visible := true
			for _, vi := range f {
				if !okBuf[vi] {
					visible = false
					break
				}
			}
			if !visible {
				continue
			}
			var depth float32
			pts := make([]rl.Vector2, 0, len(f))
			for _, vi := range f {
				depth += projBuf[vi].Depth
				pts = append(pts, rl.NewVector2(projBuf[vi].X, projBuf[vi].Y))
			}
			faces = append(faces, face{
				pts:   pts,
				color: mesh.FaceColor(i),
				depth: depth / float32(len(f)),
			})
		}
		sort.SliceStable(faces, func(i, j int) bool {
			return faces[i].depth > faces[j].depth
		})

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview area
		rl.DrawRectangle(10, 10, previewSize, windowHeight-20, renderer.Fog)
		rl.BeginScissorMode(10, 10, previewSize, windowHeight-20)
		for _, f := range faces {
			ctx.FillPolygon(f.pts, f.color)
		}
		rl.EndScissorMode()
		rl.DrawRectangleLines(10, 10, previewSize, windowHeight-20, rl.DarkGray)

		rl.DrawText(fmt.Sprintf("Verts: %d  Faces: %d  Drawn: %d", len(verts), len(mesh.Faces()), len(faces)),
			15, windowHeight-35, 16, rl.LightGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Mesh Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		newSelected := gui.ToggleGroup(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth-30) / 4, Height: 24},
			"CUBE;PYRAMID;ASTEROID;SHIP",
			selected,
		)
		if newSelected != selected {
			selected = newSelected
			mesh = buildMesh(selected, rng)
		}
		panelY += 40

		params.Scale = labelledSlider(panelX, &panelY, "Scale", params.Scale, 20, 250, "%.0f")
		params.Depth = labelledSlider(panelX, &panelY, "Depth (view z)", params.Depth, 200, 2000, "%.0f")

		animating = gui.CheckBox(
			rl.Rectangle{X: panelX, Y: panelY, Width: 20, Height: 20},
			"Animate (mesh spin rates)", animating,
		)
		panelY += 35

		twoPi := float32(2 * math.Pi)
		params.AngleX = labelledSlider(panelX, &panelY, "Angle X", params.AngleX, 0, twoPi, "%.2f")
		params.AngleY = labelledSlider(panelX, &panelY, "Angle Y", params.AngleY, 0, twoPi, "%.2f")
		params.AngleZ = labelledSlider(panelX, &panelY, "Angle Z", params.AngleZ, 0, twoPi, "%.2f")

		if selected == meshAsteroid {
			if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 26}, "Reroll shape") {
				mesh = buildMesh(selected, rng)
			}
			panelY += 35
		}

		rl.EndDrawing()
	}
}

// labelledSlider draws one caption+slider+value row and advances the panel
// cursor, mirroring the layout of the other preview tools.
func labelledSlider(x float32, y *float32, label string, value, min, max float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v
}

func buildMesh(kind int32, rng *rand.Rand) scene.Mesh {
	switch kind {
	case meshPyramid:
		return scene.NewPyramid(geom.Vec3{}, 100, renderer.GreenNeon)
	case meshAsteroid:
		return scene.NewAsteroid(asteroidParams(), geom.Vec3{Z: 600}, 100, rng)
	case meshShip:
		return scene.NewShip(geom.Vec3{}, 100)
	default:
		return scene.NewCube(geom.Vec3{}, 100, renderer.Red)
	}
}

// asteroidParams covers the flight-scene wraparound fields the preview never
// exercises; only the spin bound matters here.
func asteroidParams() scene.AsteroidParams {
	return scene.AsteroidParams{
		NearClip:   1,
		FarClip:    6000,
		WorldSize:  3000,
		ScaleMin:   50,
		ScaleMax:   200,
		DriftSpeed: 5,
		MaxSpin:    0.02,
	}
}

func wrapAngle(a float32) float32 {
	twoPi := float32(2 * math.Pi)
	a = float32(math.Mod(float64(a), float64(twoPi)))
	if a < 0 {
		a += twoPi
	}
	return a
}
