package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

var Palette = struct {
	Desert      RGB
	Cactus      RGB
	CactusPlant RGB
	Water       RGB
	Player      RGB
	PlayerGun   RGB
	Turret      RGB
	TurretGun   RGB
	Enemy       RGB
	EnemyGun    RGB
	APRound     RGB
	HERound     RGB
	Hostile     RGB
	Muzzle      RGB
	Blast       RGB
	Hit         RGB
	PickupAP    RGB
	PickupHE    RGB
	Button      RGB
}{
	Desert:      RGB{R: 230, G: 200, B: 140},
	Cactus:      RGB{R: 220, G: 190, B: 130},
	CactusPlant: RGB{R: 60, G: 140, B: 60},
	Water:       RGB{R: 60, G: 120, B: 200},
	Player:      RGB{R: 60, G: 110, B: 50},
	PlayerGun:   RGB{R: 40, G: 80, B: 35},
	Turret:      RGB{R: 120, G: 60, B: 60},
	TurretGun:   RGB{R: 80, G: 40, B: 40},
	Enemy:       RGB{R: 110, G: 100, B: 80},
	EnemyGun:    RGB{R: 70, G: 65, B: 50},
	APRound:     RGB{R: 255, G: 255, B: 0},
	HERound:     RGB{R: 255, G: 85, B: 0},
	Hostile:     RGB{R: 255, G: 0, B: 0},
	Muzzle:      RGB{R: 255, G: 170, B: 0},
	Blast:       RGB{R: 255, G: 85, B: 0},
	Hit:         RGB{R: 255, G: 0, B: 0},
	PickupAP:    RGB{R: 85, G: 170, B: 255},
	PickupHE:    RGB{R: 255, G: 170, B: 85},
	Button:      RGB{R: 76, G: 175, B: 80},
}
