package tty

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"tanks/internal/game"
)

const (
	// Terminals report key presses and autorepeat but never releases, so a
	// movement key counts as held for this long after its last report.
	holdWindow = 120 * time.Millisecond
	aimStep    = math.Pi / 12
)

// Controls is one tick's worth of terminal input.
type Controls struct {
	game.Input
	Advance bool
	Restart bool
}

// Keys turns the tcell event stream into per-tick Controls.
type Keys struct {
	up, down, left, right time.Time // held until

	aim     float64
	fireAP  bool
	fireHE  bool
	advance bool
	restart bool
	click   bool
	clickX  int
	clickY  int
}

// HandleKey records ev. It returns false when the player asked to quit.
func (k *Keys) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	until := now.Add(holdWindow)
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		k.rotate(-aimStep)
	case tcell.KeyRight:
		k.rotate(aimStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'w', 'W':
			k.up = until
		case 's', 'S':
			k.down = until
		case 'a', 'A':
			k.left = until
		case 'd', 'D':
			k.right = until
		case 'j':
			k.rotate(-aimStep)
		case 'k':
			k.rotate(aimStep)
		case ' ':
			k.fireAP = true
		case 'e', 'E':
			k.fireHE = true
		case 'n', 'N':
			k.advance = true
		case 'r', 'R':
			k.restart = true
		}
	}
	return true
}

// HandleMouse records a left click at cell (x, y) for button hit-testing.
func (k *Keys) HandleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	k.click = true
	k.clickX, k.clickY = ev.Position()
}

func (k *Keys) rotate(d float64) {
	k.aim = math.Remainder(k.aim+d, 2*math.Pi)
}

// Take returns the controls for the tick at now and clears the one-shot
// flags.
func (k *Keys) Take(now time.Time) Controls {
	c := Controls{
		Input: game.Input{
			Up:            now.Before(k.up),
			Down:          now.Before(k.down),
			Left:          now.Before(k.left),
			Right:         now.Before(k.right),
			Aim:           k.aim,
			FirePrimary:   k.fireAP,
			FireSecondary: k.fireHE,
		},
		Advance: k.advance,
		Restart: k.restart,
	}
	k.fireAP, k.fireHE, k.advance, k.restart = false, false, false, false
	return c
}

// TakeClick returns the pending left click, if any, and clears it.
func (k *Keys) TakeClick() (x, y int, ok bool) {
	if !k.click {
		return 0, 0, false
	}
	k.click = false
	return k.clickX, k.clickY, true
}
