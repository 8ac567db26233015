package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space plus the
// player's sprite rect, and prints the camera state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	cam := cameraOf(e)
	view := Viewport(e)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if obj.X+obj.W < view.X || obj.X > view.Right() {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvEnemy):
				c = color.RGBA{255, 0, 0, 255}
			case obj.HasTags(tags.ResolvPlatform):
				c = color.RGBA{255, 160, 0, 255}
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			}
			outline(screen, obj.X-cam.X, obj.Y, obj.W, obj.H, c)
		}
	}

	msg := fmt.Sprintf("TPS %.0f  cam %.0f  shift %.0f", ebiten.ActualTPS(), cam.X, cam.WorldShift)
	if entry, ok := tags.Player.First(e.World); ok {
		p := components.Player.Get(entry)
		outline(screen, p.Visual.X-cam.X, p.Visual.Y, p.Visual.W, p.Visual.H, cfg.Magenta)
		msg += fmt.Sprintf("\n%s vy %.1f ground %v ceiling %v left %v right %v",
			p.Status, p.Direction.Y, p.OnGround, p.OnCeiling, p.OnLeft, p.OnRight)
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, cfg.C.Height-40)
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
