package renderer

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sprite is a filled circle primitive: stars, nebula blobs and particles.
type Sprite struct {
	X, Y   float32
	Radius float32
	Color  rl.Color
	Depth  float32
}

// Line is a thick screen-space segment: star trails and grid lines.
type Line struct {
	From, To  rl.Vector2
	Thickness float32
	Color     rl.Color
}

// Poly is a filled face polygon with its depth sort key.
type Poly struct {
	Points []rl.Vector2
	Color  rl.Color
	Depth  float32
}

// Stats counts the primitives accepted this frame, for telemetry.
type Stats struct {
	Nebulae   int
	Stars     int
	Trails    int
	GridLines int
	Polys     int
	Particles int
}

// Compositor collects the frame's primitives into per-layer draw lists and
// flushes them in a fixed back-to-front layer order. Lists and polygon
// point slices are pooled across frames so a steady scene allocates
// nothing.
type Compositor struct {
	nebulae   []Sprite
	stars     []Sprite
	trails    []Line
	gridLines []Line
	polys     []Poly
	particles []Sprite

	pointPool [][]rl.Vector2
}

func NewCompositor() *Compositor {
	return &Compositor{}
}

// Begin resets every draw list for a new frame, returning polygon point
// slices to the pool.
func (c *Compositor) Begin() {
	for i := range c.polys {
		c.pointPool = append(c.pointPool, c.polys[i].Points[:0])
		c.polys[i].Points = nil
	}
	c.nebulae = c.nebulae[:0]
	c.stars = c.stars[:0]
	c.trails = c.trails[:0]
	c.gridLines = c.gridLines[:0]
	c.polys = c.polys[:0]
	c.particles = c.particles[:0]
}

// Points borrows a point slice from the pool for an AddPoly call.
func (c *Compositor) Points() []rl.Vector2 {
	if n := len(c.pointPool); n > 0 {
		pts := c.pointPool[n-1]
		c.pointPool = c.pointPool[:n-1]
		return pts
	}
	return nil
}

func (c *Compositor) AddNebula(s Sprite)   { c.nebulae = append(c.nebulae, s) }
func (c *Compositor) AddStar(s Sprite)     { c.stars = append(c.stars, s) }
func (c *Compositor) AddTrail(l Line)      { c.trails = append(c.trails, l) }
func (c *Compositor) AddGridLine(l Line)   { c.gridLines = append(c.gridLines, l) }
func (c *Compositor) AddParticle(s Sprite) { c.particles = append(c.particles, s) }

// AddPoly takes ownership of pts until the next Begin.
func (c *Compositor) AddPoly(depth float32, color rl.Color, pts []rl.Vector2) {
	c.polys = append(c.polys, Poly{Points: pts, Color: color, Depth: depth})
}

// Flush draws the frame in layer order: nebulae, atmosphere glow, stars and
// their trails, the ground grid, mesh faces, then particles on top. The
// depth-keyed layers are painter-sorted farthest first; the stable sort
// keeps insertion order for equal depths so face declaration order breaks
// ties deterministically.
func (c *Compositor) Flush(ctx Context) {
	sortByDepth(c.nebulae)
	for _, s := range c.nebulae {
		ctx.Circle(s.X, s.Y, s.Radius, s.Color)
	}

	ctx.AtmosphereGlow()

	for _, l := range c.trails {
		ctx.Line(l.From, l.To, l.Thickness, l.Color)
	}
	for _, s := range c.stars {
		ctx.Circle(s.X, s.Y, s.Radius, s.Color)
	}

	for _, l := range c.gridLines {
		ctx.Line(l.From, l.To, l.Thickness, l.Color)
	}

	sort.SliceStable(c.polys, func(i, j int) bool {
		return c.polys[i].Depth > c.polys[j].Depth
	})
	for i := range c.polys {
		ctx.FillPolygon(c.polys[i].Points, c.polys[i].Color)
	}

	sortByDepth(c.particles)
	for _, s := range c.particles {
		ctx.Circle(s.X, s.Y, s.Radius, s.Color)
	}
}

// SortedPolys exposes the post-Flush polygon order.
func (c *Compositor) SortedPolys() []Poly { return c.polys }

func (c *Compositor) Stats() Stats {
	return Stats{
		Nebulae:   len(c.nebulae),
		Stars:     len(c.stars),
		Trails:    len(c.trails),
		GridLines: len(c.gridLines),
		Polys:     len(c.polys),
		Particles: len(c.particles),
	}
}

func sortByDepth(s []Sprite) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Depth > s[j].Depth
	})
}
