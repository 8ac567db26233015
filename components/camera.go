package components

import "github.com/yohamta/donburi"

// CameraData is the horizontal scroll state. Entities live in level
// coordinates and are drawn at x - X.
type CameraData struct {
	X float64
	// WorldShift is the scroll decided this frame; +8 moves the world
	// right on screen. It takes effect at the start of the next frame.
	WorldShift float64
	// Applied is the shift applied at the start of this frame.
	Applied float64
}

var Camera = donburi.NewComponentType[CameraData]()
