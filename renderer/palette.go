// Package renderer turns the simulated scene into draw calls. It owns the
// color palette, the flat face shading, the layered draw-list compositor and
// the HUD overlay.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Fog is the deep-space clear color.
var Fog = rl.NewColor(5, 5, 15, 255)

var (
	White        = rl.NewColor(255, 255, 255, 255)
	LightGrey    = rl.NewColor(180, 180, 190, 255)
	DarkGrey     = rl.NewColor(60, 60, 70, 255)
	CyanLight    = rl.NewColor(0, 200, 255, 255)
	Orange       = rl.NewColor(255, 120, 0, 255)
	YellowBright = rl.NewColor(255, 255, 0, 255)
	GreenNeon    = rl.NewColor(50, 255, 50, 255)
	BlueDeep     = rl.NewColor(20, 20, 60, 255)
	Red          = rl.NewColor(255, 0, 0, 255)
	Purple       = rl.NewColor(100, 0, 150, 255)
	Teal         = rl.NewColor(0, 150, 150, 255)
)

// StarPalette and NebulaPalette are indexed by the palette byte stored on the
// entity so components stay free of render types.
var (
	StarPalette   = []rl.Color{White, LightGrey, CyanLight}
	NebulaPalette = []rl.Color{BlueDeep, Purple, Teal}
)

// GridLineColor tints the base grey toward blue for depth lines and toward
// red for the lines running along the flight axis, brightening with alpha.
func GridLineColor(alpha uint8, vertical bool) rl.Color {
	tint := alpha / 10
	c := DarkGrey
	if vertical {
		c.R = satAdd(c.R, tint)
	} else {
		c.B = satAdd(c.B, tint)
	}
	c.A = alpha
	return c
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c rl.Color, a uint8) rl.Color {
	c.A = a
	return c
}

func satAdd(a, b uint8) uint8 {
	s := int(a) + int(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
