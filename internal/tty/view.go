package tty

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"tanks/internal/game"
)

// canvas is the part of tcell.Screen the renderer draws through.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// viewport maps the 800x600 game view onto a grid of terminal cells. The last
// screen row is reserved for the status line.
type viewport struct {
	cols, rows int
	cw, ch     float64 // world pixels per cell
}

func newViewport(w, h int) viewport {
	rows := max(1, h-1)
	cols := max(1, w)
	return viewport{
		cols: cols,
		rows: rows,
		cw:   game.ViewWidth / float64(cols),
		ch:   game.ViewHeight / float64(rows),
	}
}

// cell returns the cell holding world point (wx, wy), or ok=false when the
// point is off screen.
func (v viewport) cell(cam game.Camera, wx, wy float64) (cx, cy int, ok bool) {
	sx, sy := cam.WorldToScreen(wx, wy)
	if sx < 0 || sy < 0 {
		return 0, 0, false
	}
	cx = int(sx / v.cw)
	cy = int(sy / v.ch)
	if cx >= v.cols || cy >= v.rows {
		return 0, 0, false
	}
	return cx, cy, true
}

// world returns the world position of the centre of cell (cx, cy).
func (v viewport) world(cam game.Camera, cx, cy int) (float64, float64) {
	return cam.ScreenToWorld((float64(cx)+0.5)*v.cw, (float64(cy)+0.5)*v.ch)
}

// screenPoint is the inverse of cell in view pixels, used for the button.
func (v viewport) screenPoint(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * v.cw, (float64(cy) + 0.5) * v.ch
}

func rgb(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// aimGlyphs is indexed by octant, starting east and turning clockwise
// (screen y grows downward).
var aimGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

func aimGlyph(angle float64) rune {
	oct := int(math.Round(angle/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return aimGlyphs[oct]
}

func terrainCell(t game.Terrain) (rune, tcell.Color) {
	switch t {
	case game.TerrainWater:
		return '~', rgb(game.Palette.Water)
	case game.TerrainCactus:
		return '♣', rgb(game.Palette.Cactus)
	}
	return ' ', rgb(game.Palette.Desert)
}
