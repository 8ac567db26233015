package systems

import (
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi/ecs"
)

func cameraOf(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return &components.CameraData{}
	}
	return components.Camera.Get(entry)
}

// ApplyWorldShift scrolls the camera by the shift decided last frame. It
// runs before anything else moves.
func ApplyWorldShift(e *ecs.ECS) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(entry)
	cam.X -= cam.WorldShift
	cam.Applied = cam.WorldShift
}

// ScrollX is the dead-zone scroll. Inside a zone while moving toward the
// edge, the player stops and the world shifts instead.
func ScrollX(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	cam := cameraOf(e)

	width := float64(cfg.C.Width)
	zone := width / cfg.Camera.ZoneDivisor
	// Visual still holds last frame's position, so measure it against
	// last frame's camera.
	screenX := player.Visual.CenterX() - (cam.X + cam.Applied)

	switch {
	case screenX < zone && player.Direction.X < 0:
		cam.WorldShift = cfg.Camera.ScrollSpeed
		player.Speed = 0
	case screenX > width-zone && player.Direction.X > 0:
		cam.WorldShift = -cfg.Camera.ScrollSpeed
		player.Speed = 0
	default:
		cam.WorldShift = 0
		player.Speed = cfg.Player.Speed
	}
}

// Viewport is the visible part of the level in level coordinates.
func Viewport(e *ecs.ECS) gamemath.Rect {
	cam := cameraOf(e)
	return gamemath.Rect{X: cam.X, Y: 0, W: float64(cfg.C.Width), H: float64(cfg.C.Height)}
}
