package factory

import (
	"github.com/automoto/treasure-hunters/archetypes"
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSky(ecs *ecs.ECS, horizon int) *donburi.Entry {
	sky := archetypes.Sky.Spawn(ecs)
	components.Sky.SetValue(sky, components.SkyData{Horizon: horizon})
	return sky
}

// CreateClouds scatters count clouds over the level, starting one screen
// before it and ending one screen after it, at heights up to horizon.
func CreateClouds(ecs *ecs.ECS, levelWidth float64, horizon, count int) {
	lvl := levelData(ecs)
	sheet := lvl.Assets.Sheet(cfg.SpriteClouds)
	minX, maxX := -cfg.C.Width, int(levelWidth)+cfg.C.Width

	for i := 0; i < count; i++ {
		frame := lvl.Rand.Intn(sheet.Len())
		x := minX + lvl.Rand.Intn(maxX-minX+1)
		y := lvl.Rand.Intn(horizon + 1)

		e := archetypes.Tile.Spawn(ecs, tags.Cloud)
		attachObject(ecs, e, gamemath.Rect{X: float64(x), Y: float64(y)}, groupOther)
		attachFrame(ecs, e, cfg.SpriteClouds, frame)
	}
}

// CreateWater lays animated water tiles at top from one screen before the
// level across its width.
func CreateWater(ecs *ecs.ECS, top, levelWidth float64) {
	w := cfg.Decoration.WaterTileWidth
	start := -float64(cfg.C.Width)
	n := int((levelWidth + float64(cfg.C.Width)) / float64(w))

	for i := 0; i < n; i++ {
		e := archetypes.Tile.Spawn(ecs, tags.Water)
		x := float64(i*w) + start
		attachObject(ecs, e, gamemath.Rect{X: x, Y: top, W: float64(w), H: float64(w)}, groupOther)
		attachAnimation(ecs, e, cfg.SpriteWater, cfg.Animation.TileSpeed)
	}
}
