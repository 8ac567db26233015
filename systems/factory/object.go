package factory

import (
	"github.com/automoto/treasure-hunters/assets/animations"
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Obstacle groups in the order the player's collision passes visit them.
const (
	groupTerrain = iota
	groupCrate
	groupPlatform
	groupShell
	groupOther
)

func levelData(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		panic("factory: level entry must be created first")
	}
	return components.Level.Get(entry)
}

func space(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: space entry must be created first")
	}
	return components.Space.Get(entry)
}

// attachObject gives entry its rect. Objects with resolv tags join the
// level space so collision passes can find them.
func attachObject(ecs *ecs.ECS, entry *donburi.Entry, r gamemath.Rect, group int, resolvTags ...string) *components.ObjectData {
	lvl := levelData(ecs)
	lvl.Spawned++

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, resolvTags...)
	obj.Data = entry
	if len(resolvTags) > 0 {
		space(ecs).Add(obj)
	}

	components.Object.SetValue(entry, components.ObjectData{
		Object: obj,
		Order:  group<<20 | lvl.Spawned,
	})
	return components.Object.Get(entry)
}

// attachAnimation sets a looping animation over sprite id.
func attachAnimation(ecs *ecs.ECS, entry *donburi.Entry, id cfg.SpriteID, speed float64) *components.AnimationData {
	sheet := levelData(ecs).Assets.Sheet(id)
	components.Animation.SetValue(entry, components.AnimationData{
		Animation: animations.NewAnimation(sheet.Len(), speed),
		Sheet:     sheet,
		SheetID:   id,
		Alpha:     1,
	})
	return components.Animation.Get(entry)
}

// attachFrame parks the animation on one frame of sprite id.
func attachFrame(ecs *ecs.ECS, entry *donburi.Entry, id cfg.SpriteID, frame int) *components.AnimationData {
	sheet := levelData(ecs).Assets.Sheet(id)
	components.Animation.SetValue(entry, components.AnimationData{
		Animation: animations.NewStatic(sheet.Len(), frame),
		Sheet:     sheet,
		SheetID:   id,
		Alpha:     1,
	})
	return components.Animation.Get(entry)
}

func tile() float64 {
	return float64(cfg.C.TileSize)
}

// bottomLeft is a w x h rect whose bottom-left corner sits on the bottom
// of the cell at (x, y).
func bottomLeft(x, y float64, w, h int) gamemath.Rect {
	return gamemath.Rect{X: x, Y: y + tile() - float64(h), W: float64(w), H: float64(h)}
}

// centered is a w x h rect centred on (cx, cy).
func centered(cx, cy float64, w, h int) gamemath.Rect {
	return gamemath.Rect{X: cx - float64(w/2), Y: cy - float64(h/2), W: float64(w), H: float64(h)}
}

func cell(x, y float64) gamemath.Rect {
	return gamemath.Rect{X: x, Y: y, W: tile(), H: tile()}
}
