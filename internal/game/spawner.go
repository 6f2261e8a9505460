package game

import "math"

// spawnTurrets places count turrets uniformly over the map, away from the
// player. Placement retries without a cap.
func (s *Session) spawnTurrets(count, level int) {
	t := &s.Tuning
	scale := t.LevelScale(level)
	size := t.TurretSize * scale
	for range count {
		var x, y float64
		for {
			x = s.rng.Float64()*(t.MapWidth-2*t.TurretSize) + t.TurretSize
			y = s.rng.Float64()*(t.MapHeight-2*t.TurretSize) + t.TurretSize
			if dist(x, y, s.Player.X, s.Player.Y) >= t.TurretMinDistance {
				break
			}
		}
		s.Turrets = append(s.Turrets, Turret{
			X: x, Y: y,
			W: size, H: size,
			HP:    NewHealth(t.TurretHealth),
			Level: level,
		})
	}
}

func (s *Session) spawnWave() {
	s.Wave++
	s.WaveInProgress = true
	n := min(s.Tuning.MaxWaveTanks, s.Wave)
	for range n {
		s.spawnEnemyTank()
	}
	s.Events.Emit(Event{Type: EventWaveStarted, Data: s.Wave})
}

// spawnEnemyTank enters a tank just outside a random viewport edge, headed for
// a point just outside the opposite one.
func (s *Session) spawnEnemyTank() {
	t := &s.Tuning
	c := s.Camera
	off := t.EnemyEdgeOffset
	left, right := c.X, c.X+c.W
	top, bottom := c.Y, c.Y+c.H

	var x, y, tx, ty, angle float64
	switch s.rng.Intn(4) {
	case 0: // top
		x, y = left+s.rng.Float64()*c.W, top-off
		tx, ty = left+s.rng.Float64()*c.W, bottom+off
		angle = math.Pi / 2
	case 1: // right
		x, y = right+off, top+s.rng.Float64()*c.H
		tx, ty = left-off, top+s.rng.Float64()*c.H
		angle = math.Pi
	case 2: // bottom
		x, y = left+s.rng.Float64()*c.W, bottom+off
		tx, ty = left+s.rng.Float64()*c.W, top-off
		angle = -math.Pi / 2
	default: // left
		x, y = left-off, top+s.rng.Float64()*c.H
		tx, ty = right+off, top+s.rng.Float64()*c.H
		angle = 0
	}

	var vx, vy float64
	if d := dist(x, y, tx, ty); d > 0 {
		vx = (tx - x) / d * t.EnemySpeed
		vy = (ty - y) / d * t.EnemySpeed
	}
	s.Enemies = append(s.Enemies, EnemyTank{
		X: x, Y: y,
		W: t.EnemySize, H: t.EnemySize,
		VX: vx, VY: vy,
		Angle:       angle,
		TurretAngle: angle,
		HP:          NewHealth(t.EnemyHealth),
		TargetX:     tx,
		TargetY:     ty,
	})
}

// spawnPowerup drops a resupply of type a somewhere in the visible area.
// After PowerupAttempts rejected samples the last one is used as is.
func (s *Session) spawnPowerup(a AmmoType) {
	t := &s.Tuning
	c := s.Camera
	minX, maxX := c.X+t.PowerupMargin, c.X+c.W-t.PowerupMargin
	minY, maxY := c.Y+t.PowerupMargin, c.Y+c.H-t.PowerupMargin

	var x, y float64
	for attempt := 0; attempt < max(1, t.PowerupAttempts); attempt++ {
		x = rangeF(s.rng, minX, maxX)
		y = rangeF(s.rng, minY, maxY)
		if s.validPowerupSpot(x, y) {
			break
		}
	}

	s.Powerups = append(s.Powerups, Powerup{
		X: x, Y: y,
		Size:   t.PowerupSize,
		Ammo:   a,
		Expiry: s.now.Add(t.PowerupLifetime),
	})
	s.Particles.Burst(s.rng, x, y, 15, pickupColor(a))
}

func (s *Session) validPowerupSpot(x, y float64) bool {
	tx, ty := s.Terrain.TileAt(x, y)
	if !s.Terrain.InBounds(tx, ty) || s.Terrain.At(tx, ty) == TerrainWater {
		return false
	}
	return dist(x, y, s.Player.X, s.Player.Y) > s.Tuning.PowerupMinDistance
}
