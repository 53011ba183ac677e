package components

// Star holds the visual state of one background star.
// Stars are pooled: they are reset, never destroyed.
type Star struct {
	BaseSize   float32 // Size at spawn, restored when warp ends
	Size       float32 // Current size, smoothed toward the warp target
	TrailLen   float32 // Warp streak length in world units
	TrailAlpha float32 // 0..255, dims while streaking
	Palette    uint8   // Index into the renderer's star palette
}

// Nebula holds the visual state of one nebula blob.
type Nebula struct {
	BaseAlpha float32 // Resting alpha the pulse oscillates around
	Alpha     float32 // Current alpha, 0..255
	FadeSpeed float32 // Pulse frequency
	Size      float32 // Blob radius in world units
	Palette   uint8   // Index into the renderer's nebula palette
}
