// Package tty is the terminal frontend: tcell for drawing and keys, beep for
// sound.
package tty

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"tanks/internal/config"
	"tanks/internal/game"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Run takes over the terminal, starts s and ticks it at a fixed rate until
// the player quits.
func Run(s *game.Session, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var audio *Audio
	if !cfg.Mute {
		audio, err = NewAudio(cfg.Volume)
		if err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			audio.Attach(s.Events)
		}
	}

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(screen, done, 100)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var keys Keys
	rend := NewRenderer()

	s.Start()
	defer s.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !keys.HandleKey(ev, time.Now()) {
					return nil
				}
			case *tcell.EventMouse:
				keys.HandleMouse(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			c := keys.Take(now)
			step(s, rend, &keys, &c)
			if audio != nil && dryFire(s, c.Input) {
				audio.Click()
			}
			s.Tick(c.Input)
			screen.Clear()
			rend.Draw(screen, s)
			screen.Show()
		}
	}
}

type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents forwards src's events until src is finalized or done is closed.
// The returned channel is closed when forwarding stops.
func pollEvents(src eventSource, done <-chan struct{}, buffer int) <-chan tcell.Event {
	out := make(chan tcell.Event, buffer)
	go func() {
		defer close(out)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			select {
			case out <- ev:
			case <-done:
				return
			}
		}
	}()
	return out
}

// step applies the between-level controls before the tick runs.
func step(s *game.Session, rend *Renderer, keys *Keys, c *Controls) {
	cx, cy, clicked := keys.TakeClick()
	switch s.State {
	case game.StateLevelComplete:
		if c.Advance || (clicked && rend.buttonHit(cx, cy)) {
			s.Advance()
		}
	case game.StateGameOver, game.StateGameComplete:
		if c.Restart {
			s.Start()
			c.FirePrimary, c.FireSecondary = false, false
		}
	}
}

// dryFire reports whether in asks for a shot the player has no rounds for.
func dryFire(s *game.Session, in game.Input) bool {
	if s.State != game.StateRunning {
		return false
	}
	return (in.FirePrimary && s.Player.Ammo[game.AmmoAP] <= 0) ||
		(in.FireSecondary && s.Player.Ammo[game.AmmoHE] <= 0)
}
