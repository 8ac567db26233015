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

// CreatePlatform adds a moving platform for a grid code: 0 horizontal
// platform two tiles right of its cell, 1 small horizontal island, 2 small
// vertical island, anything else a vertical platform two tiles above its
// cell. Islands keep a one-tile rect.
func CreatePlatform(ecs *ecs.ECS, x, y float64, code int) *donburi.Entry {
	e := archetypes.Platform.Spawn(ecs)

	var (
		id   cfg.SpriteID
		axis cfg.Axis
	)
	switch code {
	case 0:
		id, axis = cfg.SpritePlatformHorizontal, cfg.AxisHorizontal
	case 1:
		id, axis = cfg.SpriteIslandHorizontal, cfg.AxisHorizontal
	case 2:
		id, axis = cfg.SpriteIslandVertical, cfg.AxisVertical
	default:
		id, axis = cfg.SpritePlatformVertical, cfg.AxisVertical
	}
	anim := attachFrame(ecs, e, id, 0)

	r := cell(x, y)
	offset := float64(cfg.Platform.OffsetTiles) * tile()
	w, h := float64(anim.Sheet.Width), float64(anim.Sheet.Height)
	switch code {
	case 0:
		r = gamemath.Rect{X: x + offset, Y: y, W: w, H: h}
	case 1, 2:
	default:
		r = gamemath.Rect{X: x, Y: y - offset, W: w, H: h}
	}

	attachObject(ecs, e, r, groupPlatform, tags.ResolvSolid, tags.ResolvPlatform)
	components.Platform.SetValue(e, components.PlatformData{
		Axis:  axis,
		Speed: cfg.Platform.Speed,
	})
	return e
}
