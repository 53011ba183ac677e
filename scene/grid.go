package scene

import (
	"github.com/pthm-cable/starflight/geom"
)

// GridLine is one ground-plane segment with its distance fade baked in.
// Endpoints are world points with camera-relative depth.
type GridLine struct {
	From, To  geom.Vec3
	Alpha     uint8
	Thickness float32
	Vertical  bool
}

// GroundPlane emits the grid of fading lines below the flight path.
// Depth lines run across the world at fixed view depths; axis lines follow
// the camera laterally and run the full clip range.
type GroundPlane struct {
	NumLines  int
	Spacing   float32
	YOffset   float32 // Plane height below the camera center
	HalfWidth float32
	NearClip  float32
	FarClip   float32
}

// Lines appends the frame's grid segments to dst and returns it. Lines fade
// and thin with distance from the camera plane; fully faded lines are
// skipped. camX recenters the axis lines each frame so the grid appears
// infinite under lateral flight.
func (g GroundPlane) Lines(camX float32, dst []GridLine) []GridLine {
	half := g.NumLines / 2
	for i := -half; i <= half; i++ {
		d := float32(i) * g.Spacing
		dist := d
		if dist < 0 {
			dist = -dist
		}

		alpha := 255 - int(dist/10)
		if alpha <= 0 {
			continue
		}
		thickness := 3 - int(dist/200)
		if thickness < 1 {
			thickness = 1
		}

		dst = append(dst, GridLine{
			From:      geom.Vec3{X: -g.HalfWidth, Y: g.YOffset, Z: d},
			To:        geom.Vec3{X: g.HalfWidth, Y: g.YOffset, Z: d},
			Alpha:     uint8(alpha),
			Thickness: float32(thickness),
		})
		dst = append(dst, GridLine{
			From:      geom.Vec3{X: camX + d, Y: g.YOffset, Z: g.NearClip},
			To:        geom.Vec3{X: camX + d, Y: g.YOffset, Z: g.FarClip},
			Alpha:     uint8(alpha),
			Thickness: float32(thickness),
			Vertical:  true,
		})
	}
	return dst
}
