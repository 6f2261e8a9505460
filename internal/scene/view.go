package scene

import (
	"math"

	"tanks/internal/game"
)

// ViewSize is the window size in screen pixels that shows cam's view 1:1.
func ViewSize(cam game.Camera) (w, h int) {
	return max(1, int(math.Ceil(cam.W))), max(1, int(math.Ceil(cam.H)))
}

// ToView maps a point in a winW x winH window onto cam's view pixels.
func ToView(cam game.Camera, x, y float64, winW, winH int) (float64, float64) {
	if winW <= 0 || winH <= 0 {
		return x, y
	}
	return x * cam.W / float64(winW), y * cam.H / float64(winH)
}
