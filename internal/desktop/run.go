// Package desktop is the windowed frontend: glfw for the window and input,
// OpenGL point sprites for drawing and oto for sound.
package desktop

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"tanks/internal/config"
	"tanks/internal/game"
	"tanks/internal/scene"
)

// Run opens the window, starts s and drives one tick per rendered frame until
// the window closes or Escape is pressed.
func Run(s *game.Session, cfg config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(scene.ViewSize(s.Camera))
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	if !cfg.Mute {
		audio, err := NewAudio(cfg.Volume)
		if err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			audio.Attach(s.Events)
		}
	}

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()
	var frame scene.Frame
	title := ""

	s.Start()
	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		c := input.Poll(window, s)
		switch s.State {
		case game.StateLevelComplete:
			button := game.NextLevelButton(s.Camera.W, s.Camera.H)
			if c.Advance || (c.Click && button.ContainsPoint(c.ClickX, c.ClickY)) {
				if s.Advance() {
					// The click that pressed the button is not a shot.
					c.FirePrimary = false
				}
			}
		case game.StateGameOver, game.StateGameComplete:
			if c.Restart {
				s.Start()
				c.FirePrimary, c.FireSecondary = false, false
			}
		}
		s.Tick(c.Input)

		if t := windowTitle + " | " + s.HUD().String(); t != title {
			window.SetTitle(t)
			title = t
		}

		scene.Build(s, &frame)
		rend.BeginFrame(fbW, fbH, s.Camera)
		rend.DrawFrame(&frame, s.Camera)
		window.SwapBuffers()
	}

	s.Stop()
	return nil
}
