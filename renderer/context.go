package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Context is the thin draw surface over raylib. It carries only the screen
// extent; all state lives in the primitives handed to it.
type Context struct {
	Width, Height int32
}

// Clear fills the frame with the deep-space fog color.
func (Context) Clear() {
	rl.ClearBackground(Fog)
}

func (Context) Circle(x, y, radius float32, color rl.Color) {
	rl.DrawCircleV(rl.NewVector2(x, y), radius, color)
}

func (Context) Line(from, to rl.Vector2, thickness float32, color rl.Color) {
	rl.DrawLineEx(from, to, thickness, color)
}

// FillPolygon draws a filled convex-ish polygon as a triangle fan with a
// thin black outline. raylib culls clockwise fans, so the winding is fixed
// up front from the signed area.
func (Context) FillPolygon(pts []rl.Vector2, color rl.Color) {
	if len(pts) < 3 {
		return
	}
	if signedArea(pts) < 0 {
		reversePoints(pts)
	}
	rl.DrawTriangleFan(pts, color)
	for i := range pts {
		rl.DrawLineV(pts[i], pts[(i+1)%len(pts)], rl.Black)
	}
}

// AtmosphereGlow layers five translucent bands rising from the bottom of
// the screen, each taller and stronger than the last.
func (ctx Context) AtmosphereGlow() {
	for i := 0; i < 5; i++ {
		alpha := uint8(float32(50) * float32(i) / 4)
		bandHeight := ctx.Height / 5 * int32(i+1)
		rl.DrawRectangle(0, ctx.Height-bandHeight, ctx.Width, bandHeight, WithAlpha(BlueDeep, alpha))
	}
}

func signedArea(pts []rl.Vector2) float32 {
	var area float32
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area / 2
}

func reversePoints(pts []rl.Vector2) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
