package flappy

import "github.com/vovakirdan/flappy/internal/core"

// Camera is the world-space offset of the left edge of the view.
// Only the scroller moves it; renderers and the stream manager read it.
type Camera struct {
	Offset    core.Vec2
	ViewWidth float64 // Visible columns
}

// Advance scrolls the camera forward by dx.
func (c *Camera) Advance(dx float64) {
	c.Offset.X += dx
}

// Reset returns the camera to the world origin.
func (c *Camera) Reset() {
	c.Offset = core.Vec2{}
}

// ToScreen converts a world position to view-relative coordinates.
func (c Camera) ToScreen(world core.Vec2) core.Vec2 {
	return world.Sub(c.Offset)
}

// Visible reports whether any part of r is horizontally inside the view.
func (c Camera) Visible(r core.Rect) bool {
	return r.Right() > c.Offset.X && r.Pos.X < c.Offset.X+c.ViewWidth
}

// Bands returns the fatal sky and ground strips spanning the view.
// The sky occupies row -1 and the ground row columnHeight.
func (c Camera) Bands(columnHeight int) (sky, ground core.Rect) {
	sky = core.R(c.Offset.X, -1, c.ViewWidth, 1)
	ground = core.R(c.Offset.X, float64(columnHeight), c.ViewWidth, 1)
	return sky, ground
}
