package tty

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"tanks/internal/game"
)

type fakeCell struct {
	ch    rune
	style tcell.Style
}

// fakeCanvas records SetContent calls in place of a terminal screen.
type fakeCanvas struct {
	w, h  int
	cells map[[2]int]fakeCell
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]fakeCell)}
}

func (f *fakeCanvas) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = fakeCell{ch: primary, style: style}
}

func (f *fakeCanvas) Size() (int, int) { return f.w, f.h }

func (f *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < f.w; x++ {
		b.WriteRune(f.cells[[2]int{x, y}].ch)
	}
	return b.String()
}

func newSession(t *testing.T) *game.Session {
	t.Helper()
	clock := game.NewManualClock(time.Unix(1000, 0))
	s := game.NewSession(game.DefaultTuning(), game.NewRand(7), clock, nil)
	s.Start()
	return s
}

func TestViewportCell(t *testing.T) {
	v := newViewport(80, 25)
	if v.cols != 80 || v.rows != 24 {
		t.Fatalf("grid = %dx%d, want 80x24", v.cols, v.rows)
	}
	cam := game.Camera{X: 400, Y: 300, W: game.ViewWidth, H: game.ViewHeight}

	cx, cy, ok := v.cell(cam, 800, 600)
	if !ok || cx != 40 || cy != 12 {
		t.Fatalf("centre cell = (%d,%d,%v), want (40,12,true)", cx, cy, ok)
	}
	if _, _, ok := v.cell(cam, 399, 300); ok {
		t.Fatal("point left of the camera should be off screen")
	}
	if _, _, ok := v.cell(cam, 1200, 300); ok {
		t.Fatal("point on the right edge should be off screen")
	}

	wx, wy := v.world(cam, 0, 0)
	if wx != 405 || wy != 312.5 {
		t.Fatalf("cell (0,0) centre = (%v,%v), want (405,312.5)", wx, wy)
	}
}

func TestAimGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{math.Pi, '←'},
		{-math.Pi / 2, '↑'},
		{-math.Pi / 4, '↗'},
		{3 * math.Pi / 4, '↙'},
		{0.3, '→'},
	}
	for _, tt := range tests {
		if got := aimGlyph(tt.angle); got != tt.want {
			t.Errorf("aimGlyph(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestKeysHoldWindow(t *testing.T) {
	var k Keys
	now := time.Unix(0, 0)
	k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), now)
	k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), now)

	c := k.Take(now.Add(holdWindow / 2))
	if !c.Up || !c.Right || c.Down || c.Left {
		t.Fatalf("inside hold window: %+v", c.Input)
	}
	c = k.Take(now.Add(holdWindow))
	if c.Up || c.Right {
		t.Fatalf("hold window should have lapsed: %+v", c.Input)
	}
}

func TestKeysOneShots(t *testing.T) {
	var k Keys
	now := time.Unix(0, 0)
	for _, r := range " enr" {
		if !k.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), now) {
			t.Fatalf("key %q should not quit", r)
		}
	}
	c := k.Take(now)
	if !c.FirePrimary || !c.FireSecondary || !c.Advance || !c.Restart {
		t.Fatalf("first take = %+v", c)
	}
	c = k.Take(now)
	if c.FirePrimary || c.FireSecondary || c.Advance || c.Restart {
		t.Fatalf("one-shots should clear after Take: %+v", c)
	}
}

func TestKeysAimAndQuit(t *testing.T) {
	var k Keys
	now := time.Unix(0, 0)
	k.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now)
	k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), now)
	if got := k.Take(now).Aim; math.Abs(got-2*aimStep) > 1e-9 {
		t.Fatalf("aim = %v, want %v", got, 2*aimStep)
	}
	for range 24 {
		k.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), now)
	}
	if got := k.Take(now).Aim; got < -math.Pi || got > math.Pi {
		t.Fatalf("aim %v not wrapped into [-pi, pi]", got)
	}

	if k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now) {
		t.Fatal("q should quit")
	}
	if k.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now) {
		t.Fatal("Esc should quit")
	}
}

func TestRenderPlayerAndStatus(t *testing.T) {
	s := newSession(t)
	c := newFakeCanvas(80, 25)
	NewRenderer().Draw(c, s)

	// Player starts mid-map with the camera centred on it.
	got := c.cells[[2]int{40, 12}]
	if got.ch != '→' {
		t.Fatalf("player glyph = %q, want '→'", got.ch)
	}
	status := c.row(24)
	if !strings.HasPrefix(status, "Score 0  Level 1  Wave 0  Health 100  AP 10  HE 5") {
		t.Fatalf("status line = %q", status)
	}
}

func TestRenderLevelCompleteBanner(t *testing.T) {
	s := newSession(t)
	s.Turrets = s.Turrets[:0]
	s.Tick(game.Input{})
	if s.State != game.StateLevelComplete {
		t.Fatalf("state = %v, want level-complete", s.State)
	}

	c := newFakeCanvas(80, 25)
	r := NewRenderer()
	r.Draw(c, s)
	// Button centre is y=385 of 600, 25 px per row.
	if row := c.row(15); !strings.Contains(row, "LEVEL COMPLETE - press N") {
		t.Fatalf("banner row = %q", row)
	}
	if !r.buttonHit(40, 15) {
		t.Fatal("centre of the banner should hit the button")
	}
	if r.buttonHit(40, 2) {
		t.Fatal("top row should miss the button")
	}
}

func TestStepAdvancesOnClick(t *testing.T) {
	s := newSession(t)
	s.Turrets = s.Turrets[:0]
	s.Tick(game.Input{})

	r := NewRenderer()
	r.Draw(newFakeCanvas(80, 25), s)

	var k Keys
	k.HandleMouse(tcell.NewEventMouse(40, 15, tcell.Button1, tcell.ModNone))
	c := k.Take(time.Unix(0, 0))
	step(s, r, &k, &c)
	if s.State != game.StateRunning || s.Level != 2 {
		t.Fatalf("after click: state %v level %d, want running level 2", s.State, s.Level)
	}
	if _, _, ok := k.TakeClick(); ok {
		t.Fatal("click should be consumed")
	}
}

func TestDryFire(t *testing.T) {
	s := newSession(t)
	if dryFire(s, game.Input{FirePrimary: true}) {
		t.Fatal("loaded gun is not a dry fire")
	}
	s.Player.Ammo[game.AmmoHE] = 0
	if !dryFire(s, game.Input{FireSecondary: true}) {
		t.Fatal("empty HE should dry fire")
	}
}

func TestMonoStreamer(t *testing.T) {
	m := &monoStreamer{samples: []float64{0.1, -0.2, 0.3}}
	buf := make([][2]float64, 2)

	n, ok := m.Stream(buf)
	if n != 2 || !ok || buf[1] != [2]float64{-0.2, -0.2} {
		t.Fatalf("first stream = %d %v %v", n, ok, buf)
	}
	n, ok = m.Stream(buf)
	if n != 1 || !ok || buf[0] != [2]float64{0.3, 0.3} {
		t.Fatalf("second stream = %d %v %v", n, ok, buf)
	}
	if n, ok = m.Stream(buf); n != 0 || ok {
		t.Fatalf("drained stream = %d %v, want 0 false", n, ok)
	}
}

// endlessSource never runs dry, like a terminal that keeps reporting resizes.
type endlessSource struct{}

func (endlessSource) PollEvent() tcell.Event {
	return tcell.NewEventInterrupt(nil)
}

// finiteSource reports n events, then nil as a finalized screen does.
type finiteSource struct{ n int }

func (f *finiteSource) PollEvent() tcell.Event {
	if f.n == 0 {
		return nil
	}
	f.n--
	return tcell.NewEventInterrupt(nil)
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	done := make(chan struct{})
	events := pollEvents(endlessSource{}, done, 0)
	if ev := <-events; ev == nil {
		t.Fatal("expected a forwarded event")
	}
	close(done)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("forwarding goroutine still running after done was closed")
		}
	}
}

func TestPollEventsStopsAtFini(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	events := pollEvents(&finiteSource{n: 3}, done, 10)

	got := 0
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				if got != 3 {
					t.Fatalf("forwarded %d events, want 3", got)
				}
				return
			}
			got++
		case <-timeout:
			t.Fatal("channel not closed after the source ran dry")
		}
	}
}
