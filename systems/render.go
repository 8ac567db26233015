package systems

import (
	"github.com/automoto/treasure-hunters/assets"
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Entities further than this outside the viewport are not drawn.
const cullPadding = 64.0

// DrawLevel renders every layer of the level back to front.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	camX := cameraOf(e).X
	view := Viewport(e)
	view.X -= cullPadding
	view.W += 2 * cullPadding
	view.Y -= cullPadding
	view.H += 2 * cullPadding

	drawSky(e, screen)
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{
		tags.Cloud, tags.BgPalm, tags.Dust, tags.Terrain, tags.Platform,
		tags.Enemy, tags.Explosion, tags.Shell, tags.Pearl, tags.Boss,
		tags.Spikes, tags.Crate, tags.Bottle, tags.Grass,
	} {
		drawTagged(e, screen, tag, camX, view)
	}
	drawPlayer(e, screen, camX)
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{
		tags.FgPalm, tags.Goal, tags.Coin, tags.Treasure, tags.Water,
	} {
		drawTagged(e, screen, tag, camX, view)
	}
}

func drawTagged(e *ecs.ECS, screen *ebiten.Image, tag *donburi.ComponentType[donburi.Tag], camX float64, view gamemath.Rect) {
	tag.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Animation) {
			return
		}
		r := rectOf(entry)
		// Zero-sized rects (clouds) never overlap, so test their origin.
		if r.W > 0 && !r.Overlaps(view) {
			return
		}
		drawFrame(screen, components.Animation.Get(entry), r.X-camX, r.Y)
	})
}

// drawFrame draws the current frame with its top-left at (x, y).
func drawFrame(screen *ebiten.Image, anim *components.AnimationData, x, y float64) {
	img := anim.Image()
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if anim.FlipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.ScaleAlpha(anim.Alpha)
	screen.DrawImage(img, drawOp)
}

func drawSky(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Sky.First(e.World)
	lvl := levelOf(e)
	if !ok || lvl == nil {
		return
	}
	DrawSky(screen, lvl.Assets, components.Sky.Get(entry).Horizon)
}

// DrawSky stretches one tile per row across the screen: the top tile
// above the horizon, the middle tile on it and the bottom tile below.
func DrawSky(screen *ebiten.Image, lib *assets.Library, horizon int) {
	t := cfg.C.TileSize
	for row := 0; row < cfg.C.VerticalTiles; row++ {
		id := cfg.SpriteSkyBottom
		switch {
		case row < horizon:
			id = cfg.SpriteSkyTop
		case row == horizon:
			id = cfg.SpriteSkyMiddle
		}
		img := lib.Sheet(id).Frame(0)
		if img == nil {
			continue
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(float64(cfg.C.Width)/float64(img.Bounds().Dx()), float64(t)/float64(img.Bounds().Dy()))
		drawOp.GeoM.Translate(0, float64(row*t))
		screen.DrawImage(img, drawOp)
	}
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image, camX float64) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	anim := components.Animation.Get(entry)

	if player.Status == cfg.StateRun && player.OnGround {
		drawRunDust(e, screen, player, camX)
	}
	drawFrame(screen, anim, player.Visual.X-camX, player.Visual.Y)
}

// drawRunDust puts the run puff behind the player's trailing foot.
func drawRunDust(e *ecs.ECS, screen *ebiten.Image, player *components.PlayerData, camX float64) {
	lvl := levelOf(e)
	if lvl == nil || player.RunDust == nil {
		return
	}
	sheet := lvl.Assets.Sheet(cfg.SpriteDustRun)
	dust := &components.AnimationData{
		Animation: player.RunDust,
		Sheet:     sheet,
		SheetID:   cfg.SpriteDustRun,
		FlipX:     !player.FacingRight,
		Alpha:     1,
	}
	x := player.Visual.X - 6
	if !player.FacingRight {
		x = player.Visual.Right() - 6
	}
	drawFrame(screen, dust, x-camX, player.Visual.Bottom()-10)
}
