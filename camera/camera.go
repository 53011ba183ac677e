// Package camera provides the piloted flight camera and the perspective
// projection it feeds. Scene depths are camera-relative: the camera never
// accumulates a z coordinate, its forward motion instead reaches every
// entity as the per-tick DepthDelta.
package camera

import (
	"math/rand"

	"github.com/pthm-cable/starflight/geom"
)

// Params holds the tuning constants for camera flight.
type Params struct {
	MaxSpeed     float32 // Forward speed bound outside warp
	WarpSpeed    float32 // Forward speed bound under warp
	Acceleration float32
	Deceleration float32

	StrafeSpeed   float32
	VerticalSpeed float32
	LerpFactor    float32 // Strafe/vertical smoothing rate
	WarpSmoothing float32 // Warp factor convergence rate

	WorldSize float32 // Lateral position bound

	ShakeStrength float32 // Max pixel offset at intensity 1.0
	ShakeDecay    float32 // Intensity decay rate per second
	ShakeDuration float32 // Shake length on warp engage
}

// Input is the per-tick key state consumed by the camera. Movement keys are
// level-triggered; WarpToggled is the key-down edge of the warp toggle.
type Input struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
	WarpToggled       bool
}

// Camera integrates piloted motion: smoothed strafe/vertical position,
// accelerated forward speed with a warp boost state, and transient shake.
// Only the simulation loop mutates it, once per tick.
type Camera struct {
	params Params
	rng    *rand.Rand

	// X, Y is the camera's lateral world position.
	X, Y             float32
	targetX, targetY float32

	// Speed is the signed forward speed in world units per second.
	Speed      float32
	WarpActive bool
	// WarpFactor smooths toward 0 or 1 and drives star streaking, the
	// speed target, and HUD state.
	WarpFactor float32

	// DepthDelta is the forward distance covered last tick, applied by the
	// simulation loop to every depth-coupled entity.
	DepthDelta float32

	shakeIntensity float32
	shakeDuration  float32
	shakeX, shakeY float32
}

// New creates a camera at the world origin.
func New(params Params, rng *rand.Rand) *Camera {
	return &Camera{params: params, rng: rng}
}

// Update advances the camera by one tick from the current input state.
func (c *Camera) Update(dt float32, in Input) {
	if in.WarpToggled {
		c.WarpActive = !c.WarpActive
		if c.WarpActive {
			c.shakeIntensity = 1.0
			c.shakeDuration = c.params.ShakeDuration
		}
	}

	// Warp factor converges geometrically; clamping t keeps the factor in
	// [0,1] even across a dt spike.
	var targetSpeed float32
	if c.WarpActive {
		targetSpeed = c.params.WarpSpeed
		c.WarpFactor = geom.Lerp(c.WarpFactor, 1.0, geom.Clamp01(c.params.WarpSmoothing*dt))
	} else {
		targetSpeed = c.params.MaxSpeed
		c.WarpFactor = geom.Lerp(c.WarpFactor, 0.0, geom.Clamp01(c.params.WarpSmoothing*dt))
	}

	switch {
	case in.Forward:
		c.Speed = minf(targetSpeed, c.Speed+c.params.Acceleration*dt)
	case in.Backward:
		c.Speed = maxf(-c.params.MaxSpeed/2, c.Speed-c.params.Acceleration*dt)
	default:
		if c.Speed > 0 {
			c.Speed = maxf(0, c.Speed-c.params.Deceleration*dt)
		} else if c.Speed < 0 {
			c.Speed = minf(0, c.Speed+c.params.Deceleration*dt)
		}
	}

	c.DepthDelta = c.Speed * dt

	if in.Left {
		c.targetX -= c.params.StrafeSpeed * dt
	}
	if in.Right {
		c.targetX += c.params.StrafeSpeed * dt
	}
	if in.Up {
		c.targetY -= c.params.VerticalSpeed * dt
	}
	if in.Down {
		c.targetY += c.params.VerticalSpeed * dt
	}

	c.X = geom.Lerp(c.X, c.targetX, c.params.LerpFactor*dt)
	c.Y = geom.Lerp(c.Y, c.targetY, c.params.LerpFactor*dt)

	c.X = geom.Clamp(c.X, -c.params.WorldSize, c.params.WorldSize)
	c.Y = geom.Clamp(c.Y, -c.params.WorldSize/2, c.params.WorldSize/2)

	c.updateShake(dt)
}

// updateShake applies a decaying random offset. Intensity decays
// multiplicatively and latches to zero below a small threshold so the
// effect terminates instead of trailing off forever.
func (c *Camera) updateShake(dt float32) {
	if c.shakeDuration <= 0 {
		c.shakeX = 0
		c.shakeY = 0
		return
	}

	c.shakeX = (c.rng.Float32()*2 - 1) * c.shakeIntensity * c.params.ShakeStrength
	c.shakeY = (c.rng.Float32()*2 - 1) * c.shakeIntensity * c.params.ShakeStrength
	c.shakeDuration -= dt
	c.shakeIntensity *= 1.0 - c.params.ShakeDecay*dt*5

	if c.shakeIntensity < 0.01 {
		c.shakeIntensity = 0
		c.shakeDuration = 0
	}
}

// DrawPos returns the shaken camera position used for projection this tick.
// The z component is always zero; depths are camera-relative.
func (c *Camera) DrawPos() geom.Vec3 {
	return geom.Vec3{X: c.X + c.shakeX, Y: c.Y + c.shakeY}
}

// Shaking reports whether a shake transient is active.
func (c *Camera) Shaking() bool {
	return c.shakeDuration > 0
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
