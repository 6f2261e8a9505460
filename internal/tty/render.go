package tty

import (
	"github.com/gdamore/tcell/v2"

	"tanks/internal/game"
)

// Renderer draws a session as coloured glyphs. Terrain sets each cell's
// background; entities are drawn over it keeping that background.
type Renderer struct {
	v  viewport
	bg []tcell.Color
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(c canvas, s *game.Session) {
	w, h := c.Size()
	r.v = newViewport(w, h)
	if n := r.v.cols * r.v.rows; cap(r.bg) < n {
		r.bg = make([]tcell.Color, n)
	} else {
		r.bg = r.bg[:n]
	}

	r.drawTerrain(c, s)
	cam := s.Camera

	for i := range s.Powerups {
		pu := &s.Powerups[i]
		ch, col := 'A', game.Palette.PickupAP
		if pu.Ammo == game.AmmoHE {
			ch, col = 'H', game.Palette.PickupHE
		}
		r.put(c, cam, pu.X, pu.Y, ch, col, true)
	}
	for i := range s.Particles.P {
		p := &s.Particles.P[i]
		r.put(c, cam, p.X, p.Y, '·', p.Col, false)
	}
	for i := range s.Turrets {
		tu := &s.Turrets[i]
		r.put(c, cam, tu.X, tu.Y, 'T', game.Palette.Turret, true)
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		r.put(c, cam, e.X, e.Y, 'E', game.Palette.Enemy, true)
	}
	for i := range s.Bullets {
		b := &s.Bullets[i]
		ch, col := '•', game.Palette.APRound
		switch {
		case b.Hostile:
			col = game.Palette.Hostile
		case b.Ammo == game.AmmoHE:
			ch, col = '*', game.Palette.HERound
		}
		r.put(c, cam, b.X, b.Y, ch, col, false)
	}
	p := &s.Player
	r.put(c, cam, p.X, p.Y, aimGlyph(p.Angle), game.Palette.Player, true)

	r.drawBanner(c, s.State)
	r.drawStatus(c, s.HUD().String(), w, h)
}

func (r *Renderer) drawTerrain(c canvas, s *game.Session) {
	plant := rgb(game.Palette.CactusPlant)
	water := rgb(game.Palette.Water.Mul(200))
	for cy := 0; cy < r.v.rows; cy++ {
		for cx := 0; cx < r.v.cols; cx++ {
			wx, wy := r.v.world(s.Camera, cx, cy)
			t := s.Terrain.At(s.Terrain.TileAt(wx, wy))
			ch, bg := terrainCell(t)
			fg := plant
			if t == game.TerrainWater {
				fg = water
			}
			r.bg[cy*r.v.cols+cx] = bg
			c.SetContent(cx, cy, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

func (r *Renderer) put(c canvas, cam game.Camera, wx, wy float64, ch rune, col game.RGB, bold bool) {
	cx, cy, ok := r.v.cell(cam, wx, wy)
	if !ok {
		return
	}
	st := tcell.StyleDefault.Foreground(rgb(col)).Background(r.bg[cy*r.v.cols+cx]).Bold(bold)
	c.SetContent(cx, cy, ch, nil, st)
}

// drawBanner prints the end-of-level prompt inside the next-level button.
func (r *Renderer) drawBanner(c canvas, state game.GameState) {
	var msg string
	var col game.RGB
	switch state {
	case game.StateLevelComplete:
		msg, col = " LEVEL COMPLETE - press N ", game.Palette.Button
	case game.StateGameComplete:
		msg, col = " ALL LEVELS COMPLETE - press R ", game.Palette.Button
	case game.StateGameOver:
		msg, col = " GAME OVER - press R ", game.Palette.Hit
	default:
		return
	}
	b := game.NextLevelButton(game.ViewWidth, game.ViewHeight)
	cy := int((b.Y0 + b.Y1) / 2 / r.v.ch)
	text := []rune(msg)
	x0 := (r.v.cols - len(text)) / 2
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(rgb(col)).Bold(true)
	for i, ch := range text {
		if x := x0 + i; x >= 0 && x < r.v.cols && cy < r.v.rows {
			c.SetContent(x, cy, ch, nil, st)
		}
	}
}

func (r *Renderer) drawStatus(c canvas, line string, w, h int) {
	row := h - 1
	if row < 0 {
		return
	}
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	text := []rune(line)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(text) {
			ch = text[x]
		}
		c.SetContent(x, row, ch, nil, st)
	}
}

// buttonHit reports whether the cell (cx, cy) lies on the next-level button.
func (r *Renderer) buttonHit(cx, cy int) bool {
	sx, sy := r.v.screenPoint(cx, cy)
	return game.NextLevelButton(game.ViewWidth, game.ViewHeight).ContainsPoint(sx, sy)
}
