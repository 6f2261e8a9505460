package game

// Camera is the viewport: X/Y is the top-left corner in world pixels.
type Camera struct {
	X, Y float64
	W, H float64
}

// Follow centres the viewport on (px, py) and clamps it to the map.
func (c *Camera) Follow(px, py, mapW, mapH float64) {
	c.X = clampF(px-c.W/2, 0, max(0, mapW-c.W))
	c.Y = clampF(py-c.H/2, 0, max(0, mapH-c.H))
}

// ScreenToWorld converts viewport pixels to world pixels.
func (c Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + c.X, sy + c.Y
}

// WorldToScreen converts world pixels to viewport pixels.
func (c Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - c.X, wy - c.Y
}

// Visible reports whether r overlaps the viewport.
func (c Camera) Visible(r RectF) bool {
	return r.Intersects(RectF{X0: c.X, Y0: c.Y, X1: c.X + c.W, Y1: c.Y + c.H})
}

