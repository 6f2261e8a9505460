package game

import "time"

type AmmoType int

const (
	AmmoAP AmmoType = iota // armor-piercing
	AmmoHE                 // high-explosive
	AmmoTypeCount
)

func (a AmmoType) String() string {
	switch a {
	case AmmoAP:
		return "AP"
	case AmmoHE:
		return "HE"
	}
	return "?"
}

type Player struct {
	X, Y        float64
	W, H        float64
	Angle       float64 // aim, radians
	Speed       float64
	HP          Health
	Ammo        [AmmoTypeCount]int
	CurrentAmmo AmmoType
}

func (p *Player) Bounds() RectF { return CenteredRect(p.X, p.Y, p.W, p.H) }

type Turret struct {
	X, Y      float64
	W, H      float64
	Angle     float64
	LastFired time.Time
	HP        Health
	Level     int
}

func (t *Turret) Bounds() RectF { return CenteredRect(t.X, t.Y, t.W, t.H) }

type EnemyTank struct {
	X, Y             float64
	W, H             float64
	VX, VY           float64
	Angle            float64 // body heading
	TurretAngle      float64
	HP               Health
	LastFired        time.Time
	TargetX, TargetY float64
}

func (e *EnemyTank) Bounds() RectF { return CenteredRect(e.X, e.Y, e.W, e.H) }

type Bullet struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Ammo     AmmoType
	Damage   int
	Lifetime int // ticks
	Hostile  bool
}

func (b *Bullet) Bounds() RectF { return CenteredRect(b.X, b.Y, b.Size, b.Size) }

type Powerup struct {
	X, Y   float64
	Size   float64
	Ammo   AmmoType
	Expiry time.Time
}

func (p *Powerup) Bounds() RectF { return CenteredRect(p.X, p.Y, p.Size, p.Size) }

// pickupColor is the particle colour of a power-up of the given kind.
func pickupColor(a AmmoType) RGB {
	if a == AmmoAP {
		return Palette.PickupAP
	}
	return Palette.PickupHE
}
