// Package scene flattens a game session into point-sprite buffers. Every
// sprite is 8 floats: x, y, size, r, g, b, a, rotation.
package scene

import (
	"fmt"
	"math"

	"tanks/internal/game"
)

const Stride = 8

// Frame holds the buffers for one rendered frame. World-space layers are drawn
// through the session camera; Overlay is in viewport pixels.
type Frame struct {
	Tiles     []float32 // terrain squares
	Boxes     []float32 // rotated bodies: tanks, turrets, power-ups
	Sprites   []float32 // barrels, rounds, health bars
	Particles []float32
	Glow      []float32 // additive highlights
	Overlay   []float32 // HUD pips and the next-level button
	Text      []float32 // HUD and banner lettering, over Overlay
}

func (f *Frame) reset() {
	f.Tiles = f.Tiles[:0]
	f.Boxes = f.Boxes[:0]
	f.Sprites = f.Sprites[:0]
	f.Particles = f.Particles[:0]
	f.Glow = f.Glow[:0]
	f.Overlay = f.Overlay[:0]
	f.Text = f.Text[:0]
}

func push(buf []float32, x, y, size float64, c game.RGB, a, rot float64) []float32 {
	return append(buf,
		float32(x), float32(y), float32(size),
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255,
		float32(a), float32(rot))
}

// Build refills f from s, reusing its backing arrays.
func Build(s *game.Session, f *Frame) {
	f.reset()
	if s.Terrain == nil {
		return
	}
	cam := s.Camera

	buildTerrain(s, f)

	for i := range s.Powerups {
		pu := &s.Powerups[i]
		if !cam.Visible(pu.Bounds()) {
			continue
		}
		c := game.Palette.PickupAP
		if pu.Ammo == game.AmmoHE {
			c = game.Palette.PickupHE
		}
		f.Boxes = push(f.Boxes, pu.X, pu.Y, pu.Size, c, 1, math.Pi/4)
	}

	for i := range s.Turrets {
		tu := &s.Turrets[i]
		if !cam.Visible(tu.Bounds()) {
			continue
		}
		f.Boxes = push(f.Boxes, tu.X, tu.Y, tu.W, game.Palette.Turret, 1, 0)
		f.Sprites = barrel(f.Sprites, tu.X, tu.Y, tu.Angle, tu.W*0.6, game.Palette.TurretGun)
		f.Sprites = healthBar(f.Sprites, tu.X, tu.Y-tu.H/2-6, tu.W, tu.HP.Fraction())
	}

	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !cam.Visible(e.Bounds()) {
			continue
		}
		f.Boxes = push(f.Boxes, e.X, e.Y, e.W, game.Palette.Enemy, 1, e.Angle)
		f.Sprites = barrel(f.Sprites, e.X, e.Y, e.TurretAngle, e.W*0.6, game.Palette.EnemyGun)
		f.Sprites = healthBar(f.Sprites, e.X, e.Y-e.H/2-6, e.W, e.HP.Fraction())
	}

	p := &s.Player
	f.Boxes = push(f.Boxes, p.X, p.Y, p.W, game.Palette.Player, 1, 0)
	f.Sprites = barrel(f.Sprites, p.X, p.Y, p.Angle, p.W*0.8, game.Palette.PlayerGun)

	for i := range s.Bullets {
		b := &s.Bullets[i]
		c := game.Palette.APRound
		switch {
		case b.Hostile:
			c = game.Palette.Hostile
		case b.Ammo == game.AmmoHE:
			c = game.Palette.HERound
			f.Glow = push(f.Glow, b.X, b.Y, b.Size*3, c.Mul(160), 1, 0)
		}
		f.Sprites = push(f.Sprites, b.X, b.Y, b.Size, c, 1, 0)
	}

	f.Particles = s.Particles.RenderData(f.Particles)
	buildOverlay(s, f)
}

func buildTerrain(s *game.Session, f *Frame) {
	g := s.Terrain
	cam := s.Camera
	ts := g.TileSize
	x0 := max(0, int(math.Floor(cam.X/ts)))
	y0 := max(0, int(math.Floor(cam.Y/ts)))
	x1 := min(g.W-1, int(math.Floor((cam.X+cam.W)/ts)))
	y1 := min(g.H-1, int(math.Floor((cam.Y+cam.H)/ts)))
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			cx := (float64(tx) + 0.5) * ts
			cy := (float64(ty) + 0.5) * ts
			switch g.At(tx, ty) {
			case game.TerrainWater:
				f.Tiles = push(f.Tiles, cx, cy, ts, game.Palette.Water, 1, 0)
			case game.TerrainCactus:
				f.Tiles = push(f.Tiles, cx, cy, ts, game.Palette.Cactus, 1, 0)
				f.Tiles = push(f.Tiles, cx, cy, ts*0.35, game.Palette.CactusPlant, 1, 0)
			default:
				f.Tiles = push(f.Tiles, cx, cy, ts, game.Palette.Desert, 1, 0)
			}
		}
	}
}

// barrel lays a gun as a short run of squares from the hull centre outward.
func barrel(buf []float32, x, y, angle, length float64, c game.RGB) []float32 {
	const segs = 4
	cos, sin := math.Cos(angle), math.Sin(angle)
	for i := 1; i <= segs; i++ {
		d := length * float64(i) / segs
		buf = push(buf, x+cos*d, y+sin*d, 6, c, 1, 0)
	}
	return buf
}

const barCells = 8

func healthBar(buf []float32, x, y, width, frac float64) []float32 {
	cell := width / barCells
	filled := int(math.Ceil(frac * barCells))
	col := game.HealthBarColor(frac)
	left := x - width/2 + cell/2
	for i := range barCells {
		c, a := col, 1.0
		if i >= filled {
			c, a = game.RGB{R: 40, G: 40, B: 40}, 0.6
		}
		buf = push(buf, left+float64(i)*cell, y, cell, c, a, 0)
	}
	return buf
}

// HUD pip rows, viewport pixels.
const (
	pipSize   = 8
	pipGap    = 3
	pipLeft   = 12
	pipTop    = 12
	pipRowGap = 14
	hpPerPip  = 10

	hudPx    = 2 // view pixels per font dot
	bannerPx = 4
)

var textColor = game.RGB{R: 255, G: 255, B: 255}

func buildOverlay(s *game.Session, f *Frame) {
	p := &s.Player
	hp := (p.HP.Current + hpPerPip - 1) / hpPerPip
	f.Overlay = pips(f.Overlay, pipTop, hp, game.HealthBarColor(p.HP.Fraction()))
	f.Overlay = pips(f.Overlay, pipTop+pipRowGap, p.Ammo[game.AmmoAP], game.Palette.APRound)
	f.Overlay = pips(f.Overlay, pipTop+2*pipRowGap, p.Ammo[game.AmmoHE], game.Palette.HERound)

	hud := fmt.Sprintf("SCORE %d  LEVEL %d  WAVE %d", s.Score, s.Level, s.Wave)
	f.Text = drawString(f.Text, hud, s.Camera.W-textWidth(hud, hudPx)-pipLeft, pipTop-pipSize/2, hudPx, textColor)

	w, h := s.Camera.W, s.Camera.H
	switch s.State {
	case game.StateLevelComplete:
		b := game.NextLevelButton(w, h)
		side := b.Y1 - b.Y0
		for x := b.X0 + side/2; x < b.X1; x += side {
			f.Overlay = push(f.Overlay, x, b.Y0+side/2, side, game.Palette.Button, 1, 0)
		}
		f.Text = drawCentered(f.Text, fmt.Sprintf("LEVEL %d COMPLETE!", s.Level), w/2, h/2, bannerPx, textColor)
		f.Text = drawCentered(f.Text, "NEXT LEVEL", (b.X0+b.X1)/2, (b.Y0+b.Y1)/2, hudPx, textColor)
	case game.StateGameOver:
		f.Overlay = band(f.Overlay, w, h, game.Palette.Hit)
		f.Text = drawCentered(f.Text, "GAME OVER", w/2, h/2, bannerPx, textColor)
		f.Text = drawCentered(f.Text, fmt.Sprintf("FINAL SCORE %d", s.Score), w/2, h/2+bannerPx*glyphH+hudPx*4, hudPx, textColor)
	case game.StateGameComplete:
		f.Overlay = band(f.Overlay, w, h, game.Palette.Button)
		f.Text = drawCentered(f.Text, "ALL LEVELS COMPLETE!", w/2, h/2, bannerPx, textColor)
		f.Text = drawCentered(f.Text, fmt.Sprintf("FINAL SCORE %d", s.Score), w/2, h/2+bannerPx*glyphH+hudPx*4, hudPx, textColor)
	}
}

func pips(buf []float32, y float64, n int, c game.RGB) []float32 {
	for i := range n {
		x := pipLeft + float64(i)*(pipSize+pipGap) + pipSize/2
		buf = push(buf, x, y, pipSize, c, 1, 0)
	}
	return buf
}

// band is a translucent strip across the middle of the viewport.
func band(buf []float32, w, h float64, c game.RGB) []float32 {
	const side = 40
	for x := side / 2.0; x < w; x += side {
		buf = push(buf, x, h/2, side, c, 0.45, 0)
	}
	return buf
}
