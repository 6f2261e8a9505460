package game

// resolveCollisions applies every hit of the tick. Player rounds are checked
// first, then hostile rounds against the player, then pickups.
func (s *Session) resolveCollisions() {
	s.resolvePlayerRounds()
	s.resolveHostileRounds()
	s.resolvePickups()
}

// resolvePlayerRounds lets each player bullet strike at most one target:
// the first live turret it overlaps, otherwise the first live enemy tank.
func (s *Session) resolvePlayerRounds() {
	killed := false
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Hostile {
			kept = append(kept, b)
			continue
		}
		br := b.Bounds()
		hit := false
		for i := range s.Turrets {
			tu := &s.Turrets[i]
			if tu.HP.IsDead() || !br.Intersects(tu.Bounds()) {
				continue
			}
			hit = true
			if s.damageTarget(&tu.HP, b, tu.X, tu.Y, s.Tuning.ScoreTurret) {
				killed = true
			}
			break
		}
		if !hit {
			for i := range s.Enemies {
				e := &s.Enemies[i]
				if e.HP.IsDead() || !br.Intersects(e.Bounds()) {
					continue
				}
				hit = true
				if s.damageTarget(&e.HP, b, e.X, e.Y, s.Tuning.ScoreTank) {
					killed = true
				}
				break
			}
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept

	if killed {
		s.removeDead()
	}
}

// damageTarget applies b to hp and reports whether the target was destroyed.
func (s *Session) damageTarget(hp *Health, b Bullet, x, y float64, points int) bool {
	hp.Damage(b.Damage)
	s.Particles.Burst(s.rng, b.X, b.Y, 10, Palette.Muzzle)
	if !hp.IsDead() {
		return false
	}
	s.Particles.Burst(s.rng, x, y, 30, Palette.Blast)
	s.Events.Emit(Event{Type: EventExplosion, X: x, Y: y, Sound: SoundExplosion, Data: points})
	s.addScore(points)
	return true
}

func (s *Session) removeDead() {
	turrets := s.Turrets[:0]
	for _, tu := range s.Turrets {
		if !tu.HP.IsDead() {
			turrets = append(turrets, tu)
		}
	}
	s.Turrets = turrets

	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.HP.IsDead() {
			enemies = append(enemies, e)
		}
	}
	s.Enemies = enemies
}

func (s *Session) resolveHostileRounds() {
	pr := s.Player.Bounds()
	hurt := false
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		if !b.Hostile || !pr.Intersects(b.Bounds()) {
			kept = append(kept, b)
			continue
		}
		s.Player.HP.Damage(b.Damage)
		s.Particles.Burst(s.rng, b.X, b.Y, 10, Palette.Hit)
		hurt = true
	}
	s.Bullets = kept
	if hurt {
		s.emitHealth()
	}
}

func (s *Session) resolvePickups() {
	pr := s.Player.Bounds()
	kept := s.Powerups[:0]
	for _, pu := range s.Powerups {
		if !pr.Intersects(pu.Bounds()) {
			kept = append(kept, pu)
			continue
		}
		gain := s.Tuning.PowerupAP
		if pu.Ammo == AmmoHE {
			gain = s.Tuning.PowerupHE
		}
		s.Player.Ammo[pu.Ammo] += gain
		s.Particles.Burst(s.rng, pu.X, pu.Y, 20, pickupColor(pu.Ammo))
		s.Events.Emit(Event{Type: EventPickup, X: pu.X, Y: pu.Y, Sound: SoundPickup, Ammo: pu.Ammo, Data: gain})
		s.emitAmmo(pu.Ammo)
	}
	s.Powerups = kept
}
