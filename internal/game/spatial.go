package game

// RectF is an axis-aligned rectangle in world-pixel space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

// CenteredRect builds the box of an entity of size w×h centred on (x, y).
func CenteredRect(x, y, w, h float64) RectF {
	return RectF{X0: x - w/2, Y0: y - h/2, X1: x + w/2, Y1: y + h/2}
}

// Intersects reports strict overlap; touching edges do not collide.
func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

// ContainsPoint is inclusive on every edge.
func (r RectF) ContainsPoint(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// NextLevelButton is the click target shown on the level-complete screen,
// in viewport pixels.
func NextLevelButton(viewW, viewH float64) RectF {
	x := viewW/2 - NextLevelButtonW/2
	y := viewH/2 + NextLevelButtonOffset
	return RectF{X0: x, Y0: y, X1: x + NextLevelButtonW, Y1: y + NextLevelButtonH}
}
