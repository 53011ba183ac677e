package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starflight/camera"
)

// readInput polls the keyboard into a camera input snapshot. Movement keys
// are level-triggered; warp is the key-down edge so it acts as a toggle.
func readInput() camera.Input {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	return camera.Input{
		Forward:     rl.IsKeyDown(rl.KeyW),
		Backward:    rl.IsKeyDown(rl.KeyS),
		Left:        rl.IsKeyDown(rl.KeyA),
		Right:       rl.IsKeyDown(rl.KeyD),
		Up:          rl.IsKeyDown(rl.KeySpace),
		Down:        rl.IsKeyDown(rl.KeyLeftShift),
		WarpToggled: rl.IsKeyPressed(rl.KeyE),
	}
}
