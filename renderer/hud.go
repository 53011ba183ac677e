package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starflight/geom"
)

// HUDState is the flight telemetry shown each frame.
type HUDState struct {
	Speed      float32
	WarpFactor float32
	WarpMax    float32 // Speed that maps to the full crosshair ring
}

// DrawHUD renders the speed readout, warp status line and crosshair on top
// of the composited frame.
func DrawHUD(ctx Context, s HUDState) {
	warping := s.WarpFactor > 0.5

	speedColor := CyanLight
	if warping {
		speedColor = GreenNeon
	}
	rl.DrawText(fmt.Sprintf("SPEED: %.1f U/S", s.Speed), 10, 10, 24, speedColor)

	warpText, warpColor := "WARP: STANDBY", LightGrey
	if warping {
		warpText, warpColor = "WARP: ACTIVE", YellowBright
	}
	rl.DrawText(warpText, 10, 40, 24, warpColor)

	cx := float32(ctx.Width) / 2
	cy := float32(ctx.Height) / 2
	rl.DrawLineEx(rl.NewVector2(cx-10, cy), rl.NewVector2(cx+10, cy), 2, CyanLight)
	rl.DrawLineEx(rl.NewVector2(cx, cy-10), rl.NewVector2(cx, cy+10), 2, CyanLight)
	rl.DrawCircleLines(int32(cx), int32(cy), 4, CyanLight)

	// The outer ring grows and brightens with forward speed.
	if s.Speed > 0 && s.WarpMax > 0 {
		frac := geom.Clamp01(s.Speed / s.WarpMax)
		radius := geom.Lerp(10, 30, frac)
		alpha := uint8(geom.Lerp(0, 200, frac))
		rl.DrawRing(rl.NewVector2(cx, cy), radius-1, radius+1, 0, 360, 0, WithAlpha(YellowBright, alpha))
	}
}
