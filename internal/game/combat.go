package game

import "math"

// Fire shoots one round of the given type from the player's gun. It reports
// false when the game is not running or that ammo is exhausted.
func (s *Session) Fire(a AmmoType) bool {
	if !s.running || s.State != StateRunning {
		return false
	}
	if a < 0 || a >= AmmoTypeCount {
		return false
	}
	p := &s.Player
	if p.Ammo[a] <= 0 {
		return false
	}
	t := &s.Tuning

	size, damage := t.APSize, t.APDamage
	flash, sound := Palette.Muzzle, SoundShotAP
	if a == AmmoHE {
		size, damage = t.HESize, t.HEDamage
		flash, sound = Palette.Blast, SoundShotHE
	}

	cos, sin := math.Cos(p.Angle), math.Sin(p.Angle)
	mx := p.X + cos*t.MuzzleOffset
	my := p.Y + sin*t.MuzzleOffset
	s.Bullets = append(s.Bullets, Bullet{
		X: mx, Y: my,
		VX: cos * t.BulletSpeed, VY: sin * t.BulletSpeed,
		Size:     size,
		Ammo:     a,
		Damage:   damage,
		Lifetime: t.BulletLifetime,
	})
	s.Particles.Burst(s.rng, mx, my, 10, flash)

	p.Ammo[a]--
	p.CurrentAmmo = a
	s.Events.Emit(Event{Type: EventShot, X: mx, Y: my, Sound: sound, Ammo: a})
	s.emitAmmo(a)
	return true
}

// fireHostile launches a turret or enemy round from (x, y) along angle.
func (s *Session) fireHostile(x, y, angle float64, damage int) {
	t := &s.Tuning
	cos, sin := math.Cos(angle), math.Sin(angle)
	mx := x + cos*t.HostileMuzzle
	my := y + sin*t.HostileMuzzle
	speed := t.BulletSpeed * t.HostileSpeedMul
	s.Bullets = append(s.Bullets, Bullet{
		X: mx, Y: my,
		VX: cos * speed, VY: sin * speed,
		Size:     t.APSize,
		Ammo:     AmmoAP,
		Damage:   damage,
		Lifetime: t.BulletLifetime,
		Hostile:  true,
	})
	s.Particles.Burst(s.rng, mx, my, 5, Palette.Muzzle)
	s.Events.Emit(Event{Type: EventShot, X: mx, Y: my, Sound: SoundShotHostile})
}
