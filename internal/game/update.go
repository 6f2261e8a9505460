package game

import "math"

// updatePlayer integrates the movement keys. A move whose destination tile is
// water is dropped entirely; there is no sliding along the shore.
func (s *Session) updatePlayer(in Input) {
	p := &s.Player
	var dx, dy float64
	if in.Up {
		dy -= p.Speed
	}
	if in.Down {
		dy += p.Speed
	}
	if in.Left {
		dx -= p.Speed
	}
	if in.Right {
		dx += p.Speed
	}
	if dx == 0 && dy == 0 {
		return
	}
	if dx != 0 && dy != 0 {
		dx *= 1 / math.Sqrt2
		dy *= 1 / math.Sqrt2
	}

	nx := p.X + dx
	ny := p.Y + dy
	tx, ty := s.Terrain.TileAt(nx, ny)

	nx = clampF(nx, p.W/2, s.Tuning.MapWidth-p.W/2)
	ny = clampF(ny, p.H/2, s.Tuning.MapHeight-p.H/2)

	if s.Terrain.IsBlocking(tx, ty) {
		return
	}
	p.X = nx
	p.Y = ny
}

func (s *Session) inMap(x, y float64) bool {
	return x >= 0 && x <= s.Tuning.MapWidth && y >= 0 && y <= s.Tuning.MapHeight
}

func (s *Session) updateBullets() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.X += b.VX
		b.Y += b.VY
		b.Lifetime--
		if b.Lifetime <= 0 || !s.inMap(b.X, b.Y) {
			if b.Ammo == AmmoHE {
				s.Particles.Burst(s.rng, b.X, b.Y, 15, Palette.Blast)
			}
			continue
		}
		kept = append(kept, b)
	}
	s.Bullets = kept
}

func (s *Session) updateTurrets() {
	t := &s.Tuning
	p := &s.Player
	for i := range s.Turrets {
		tu := &s.Turrets[i]
		scale := t.LevelScale(tu.Level)
		if dist(tu.X, tu.Y, p.X, p.Y) >= t.TurretDetect*scale {
			continue
		}
		tu.Angle = AimAngle(tu.X, tu.Y, p.X, p.Y)
		if s.now.Sub(tu.LastFired) > t.TurretFireRate {
			damage := int(math.Floor(float64(t.TurretDamage) * scale))
			s.fireHostile(tu.X, tu.Y, tu.Angle, damage)
			tu.LastFired = s.now
		}
	}
}

func (s *Session) updateEnemies() {
	t := &s.Tuning
	p := &s.Player
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		e.X += e.VX
		e.Y += e.VY

		// Reached the far side of the viewport: it leaves the field.
		if dist(e.X, e.Y, e.TargetX, e.TargetY) < t.EnemyArrival {
			continue
		}

		if dist(e.X, e.Y, p.X, p.Y) < t.EnemyDetect {
			e.TurretAngle = AimAngle(e.X, e.Y, p.X, p.Y)
			if s.now.Sub(e.LastFired) > t.EnemyFireRate {
				s.fireHostile(e.X, e.Y, e.TurretAngle, t.EnemyDamage)
				e.LastFired = s.now
			}
		} else {
			e.TurretAngle = e.Angle
		}
		kept = append(kept, e)
	}
	s.Enemies = kept
}

func (s *Session) updatePowerups() {
	kept := s.Powerups[:0]
	for _, pu := range s.Powerups {
		if s.now.After(pu.Expiry) {
			s.Particles.Burst(s.rng, pu.X, pu.Y, 10, pickupColor(pu.Ammo))
			continue
		}
		kept = append(kept, pu)
	}
	s.Powerups = kept
}

// checkAmmoLevels drops a resupply once an ammo type is at or below half of
// its level-start count, one live power-up per type at most.
func (s *Session) checkAmmoLevels() {
	start := [AmmoTypeCount]int{AmmoAP: s.Tuning.StartAP, AmmoHE: s.Tuning.StartHE}
	for a := AmmoAP; a < AmmoTypeCount; a++ {
		if float64(s.Player.Ammo[a]) > float64(start[a])/2 {
			continue
		}
		if s.hasPowerup(a) {
			continue
		}
		s.spawnPowerup(a)
	}
}

func (s *Session) hasPowerup(a AmmoType) bool {
	for i := range s.Powerups {
		if s.Powerups[i].Ammo == a {
			return true
		}
	}
	return false
}
