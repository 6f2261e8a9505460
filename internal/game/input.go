package game

// Input is the per-tick control state handed to Session.Tick.
// Fire flags are edge triggers: set them only on the tick the button went down.
type Input struct {
	Up, Down, Left, Right bool
	Aim                   float64 // radians, world space
	FirePrimary           bool    // armor-piercing
	FireSecondary         bool    // high-explosive
}

// AimFromScreen returns the aim angle from the player toward a pointer given
// in viewport pixels.
func (s *Session) AimFromScreen(sx, sy float64) float64 {
	wx, wy := s.Camera.ScreenToWorld(sx, sy)
	return AimAngle(s.Player.X, s.Player.Y, wx, wy)
}
