package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"tanks/internal/game"
	"tanks/internal/scene"
)

// Input tracks key and button state between frames for edge detection.
type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

func held(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// CursorViewPos returns the cursor in cam's view pixels.
func CursorViewPos(window *glfw.Window, cam game.Camera) (float64, float64) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	return scene.ToView(cam, cx, cy, winW, winH)
}

// Controls is one frame of player intent.
type Controls struct {
	game.Input
	Click          bool // left button went down
	ClickX, ClickY float64
	Advance        bool // N
	Restart        bool // R
}

// Poll samples the window once. Call it exactly once per frame: edge state is
// consumed.
func (in *Input) Poll(window *glfw.Window, s *game.Session) Controls {
	cx, cy := CursorViewPos(window, s.Camera)
	left := in.JustClicked(window, glfw.MouseButtonLeft)
	right := in.JustClicked(window, glfw.MouseButtonRight)
	space := in.JustPressed(window, glfw.KeySpace)
	e := in.JustPressed(window, glfw.KeyE)

	return Controls{
		Input: game.Input{
			Up:            held(window, glfw.KeyW, glfw.KeyUp),
			Down:          held(window, glfw.KeyS, glfw.KeyDown),
			Left:          held(window, glfw.KeyA, glfw.KeyLeft),
			Right:         held(window, glfw.KeyD, glfw.KeyRight),
			Aim:           s.AimFromScreen(cx, cy),
			FirePrimary:   left || space,
			FireSecondary: right || e,
		},
		Click:   left,
		ClickX:  cx,
		ClickY:  cy,
		Advance: in.JustPressed(window, glfw.KeyN),
		Restart: in.JustPressed(window, glfw.KeyR),
	}
}
