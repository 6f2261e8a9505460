package scene

import (
	"testing"
	"time"

	"tanks/internal/game"
)

func newSession(t *testing.T) *game.Session {
	t.Helper()
	clock := game.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s := game.NewSession(game.DefaultTuning(), game.NewRand(5), clock, nil)
	s.Start()
	return s
}

func TestBuildCoversViewport(t *testing.T) {
	s := newSession(t)
	var f Frame
	Build(s, &f)

	// Camera at (400,300): tile columns 12..37 and rows 9..28.
	tiles := 0
	for i := 0; i < len(f.Tiles); i += Stride {
		if f.Tiles[i+2] == float32(s.Tuning.TileSize) {
			tiles++
		}
	}
	if tiles != 26*20 {
		t.Fatalf("tiles = %d, want %d", tiles, 26*20)
	}
	if len(f.Boxes) == 0 || len(f.Boxes)%Stride != 0 {
		t.Fatalf("boxes buffer %d floats", len(f.Boxes))
	}
	if len(f.Overlay) != (10+10+5)*Stride {
		t.Fatalf("overlay = %d sprites, want 25 pips", len(f.Overlay)/Stride)
	}
}

func TestBuildReusesBuffers(t *testing.T) {
	s := newSession(t)
	var f Frame
	Build(s, &f)
	n := len(f.Tiles)
	Build(s, &f)
	if len(f.Tiles) != n {
		t.Fatalf("second build has %d tile floats, first %d", len(f.Tiles), n)
	}
}

func TestOverlayShowsNextLevelButton(t *testing.T) {
	s := newSession(t)
	s.State = game.StateLevelComplete
	var f Frame
	Build(s, &f)

	b := game.NextLevelButton(s.Camera.W, s.Camera.H)
	found := 0
	for i := 0; i < len(f.Overlay); i += Stride {
		x, y := float64(f.Overlay[i]), float64(f.Overlay[i+1])
		if f.Overlay[i+2] == 50 && b.ContainsPoint(x, y) {
			found++
		}
	}
	if found != 4 {
		t.Fatalf("button squares = %d, want 4", found)
	}
}

func TestHealthBarCells(t *testing.T) {
	buf := healthBar(nil, 100, 50, 32, 0.4)
	if len(buf) != barCells*Stride {
		t.Fatalf("cells = %d", len(buf)/Stride)
	}
	// 0.4 fills ceil(3.2) = 4 cells; the fifth is the dimmed background.
	if buf[3*Stride+6] != 1 || buf[4*Stride+6] != 0.6 {
		t.Fatalf("fill boundary wrong: alphas %v %v", buf[3*Stride+6], buf[4*Stride+6])
	}
}

func TestDrawString(t *testing.T) {
	if got := textWidth("AB", 2); got != 22 {
		t.Fatalf("textWidth = %v, want 22", got)
	}
	if got := textWidth("", 2); got != 0 {
		t.Fatalf("empty textWidth = %v", got)
	}

	buf := drawString(nil, "I", 10, 20, 2, textColor)
	if len(buf) != 11*Stride {
		t.Fatalf("'I' = %d dots, want 11", len(buf)/Stride)
	}
	// Top row of 'I' starts at the second column.
	if buf[0] != 13 || buf[1] != 21 || buf[2] != 2 {
		t.Fatalf("first dot = (%v,%v) size %v, want (13,21) size 2", buf[0], buf[1], buf[2])
	}

	lower := drawString(nil, "go!", 0, 0, 1, textColor)
	upper := drawString(nil, "GO!", 0, 0, 1, textColor)
	if len(lower) != len(upper) {
		t.Fatal("lower case should render as upper case")
	}
	if got := drawString(nil, "  ", 0, 0, 1, textColor); len(got) != 0 {
		t.Fatalf("blanks drew %d dots", len(got)/Stride)
	}
}

func TestBannerText(t *testing.T) {
	s := newSession(t)
	var f Frame
	Build(s, &f)
	running := len(f.Text)
	if running == 0 {
		t.Fatal("HUD line should always be lettered")
	}

	s.State = game.StateGameOver
	Build(s, &f)
	if len(f.Text) <= running {
		t.Fatalf("game over text %d floats, running HUD %d", len(f.Text), running)
	}
	for i := 0; i < len(f.Text); i += Stride {
		x, y := f.Text[i], f.Text[i+1]
		if x < 0 || x > float32(s.Camera.W) || y < 0 || y > float32(s.Camera.H) {
			t.Fatalf("dot (%v,%v) outside the view", x, y)
		}
	}
}

func TestViewSizeFollowsCamera(t *testing.T) {
	s := newSession(t)
	if w, h := ViewSize(s.Camera); w != game.ViewWidth || h != game.ViewHeight {
		t.Fatalf("ViewSize = %dx%d, want %dx%d", w, h, game.ViewWidth, game.ViewHeight)
	}
	if w, h := ViewSize(game.Camera{W: 640.5, H: 0}); w != 641 || h != 1 {
		t.Fatalf("ViewSize = %dx%d, want 641x1", w, h)
	}

	cam := game.Camera{W: 800, H: 600}
	// A window twice the view size (HiDPI or a stretched window).
	if x, y := ToView(cam, 800, 300, 1600, 1200); x != 400 || y != 150 {
		t.Fatalf("ToView = (%v,%v), want (400,150)", x, y)
	}
	if x, y := ToView(cam, 10, 20, 0, 0); x != 10 || y != 20 {
		t.Fatalf("ToView on an empty window = (%v,%v), want passthrough", x, y)
	}
}
