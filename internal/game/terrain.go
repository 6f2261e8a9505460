package game

import "math"

type Terrain uint8

const (
	TerrainDesert Terrain = iota
	TerrainCactus
	TerrainWater
)

func (t Terrain) String() string {
	switch t {
	case TerrainDesert:
		return "desert"
	case TerrainCactus:
		return "cactus"
	case TerrainWater:
		return "water"
	}
	return "unknown"
}

// TerrainGrid is the static tile map. Cells are row-major.
type TerrainGrid struct {
	W, H     int
	TileSize float64
	Cells    []Terrain
}

// NewTerrainGrid returns an all-desert grid.
func NewTerrainGrid(w, h int, tileSize float64) *TerrainGrid {
	return &TerrainGrid{
		W:        w,
		H:        h,
		TileSize: tileSize,
		Cells:    make([]Terrain, w*h),
	}
}

// GenerateTerrain draws every cell independently: below desert is Desert,
// below cactus is Cactus, the rest is Water.
func GenerateTerrain(w, h int, tileSize, desert, cactus float64, src Source) *TerrainGrid {
	g := NewTerrainGrid(w, h, tileSize)
	for i := range g.Cells {
		r := src.Float64()
		switch {
		case r < desert:
			g.Cells[i] = TerrainDesert
		case r < cactus:
			g.Cells[i] = TerrainCactus
		default:
			g.Cells[i] = TerrainWater
		}
	}
	return g
}

func (g *TerrainGrid) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < g.W && ty >= 0 && ty < g.H
}

// At returns the tile kind; out-of-grid reads as Desert.
func (g *TerrainGrid) At(tx, ty int) Terrain {
	if !g.InBounds(tx, ty) {
		return TerrainDesert
	}
	return g.Cells[ty*g.W+tx]
}

func (g *TerrainGrid) Set(tx, ty int, t Terrain) {
	if !g.InBounds(tx, ty) {
		return
	}
	g.Cells[ty*g.W+tx] = t
}

// IsBlocking reports whether a tile stops the player. Outside the grid
// movement is permitted.
func (g *TerrainGrid) IsBlocking(tx, ty int) bool {
	return g.At(tx, ty) == TerrainWater
}

// TileAt maps world pixels to tile coordinates (floor division).
func (g *TerrainGrid) TileAt(x, y float64) (int, int) {
	return int(math.Floor(x / g.TileSize)), int(math.Floor(y / g.TileSize))
}
