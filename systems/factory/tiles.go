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

func CreateTerrain(ecs *ecs.ECS, x, y float64, code int) *donburi.Entry {
	e := archetypes.Tile.Spawn(ecs, tags.Terrain)
	attachObject(ecs, e, cell(x, y), groupTerrain, tags.ResolvSolid)
	attachFrame(ecs, e, cfg.SpriteTerrain, code)
	return e
}

func CreateGrass(ecs *ecs.ECS, x, y float64, code int) *donburi.Entry {
	e := archetypes.Tile.Spawn(ecs, tags.Grass)
	attachObject(ecs, e, cell(x, y), groupOther)
	attachFrame(ecs, e, cfg.SpriteGrass, code)
	return e
}

func CreateCrate(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	e := archetypes.Tile.Spawn(ecs, tags.Crate)
	anim := attachFrame(ecs, e, cfg.SpriteCrate, 0)
	attachObject(ecs, e, bottomLeft(x, y, anim.Sheet.Width, anim.Sheet.Height), groupCrate, tags.ResolvSolid)
	return e
}

func CreateBottle(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	e := archetypes.Tile.Spawn(ecs, tags.Bottle)
	anim := attachFrame(ecs, e, cfg.SpriteBottle, 0)
	attachObject(ecs, e, bottomLeft(x, y, anim.Sheet.Width, anim.Sheet.Height), groupOther)
	return e
}

func CreateSpikes(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	e := archetypes.Tile.Spawn(ecs, tags.Spikes)
	attachObject(ecs, e, cell(x, y), groupOther)
	attachFrame(ecs, e, cfg.SpriteSpikes, 0)
	return e
}

func CreateTreasure(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	e := archetypes.Tile.Spawn(ecs, tags.Treasure)
	attachObject(ecs, e, cell(x, y), groupOther)
	attachFrame(ecs, e, cfg.SpriteChest, 0)
	return e
}

func CreateGoal(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	e := archetypes.Goal.Spawn(ecs)
	attachObject(ecs, e, cell(x, y), groupOther)
	attachFrame(ecs, e, cfg.SpriteHat, 0)
	return e
}

// CreateConstraint adds an invisible marker that reverses walkers and
// moving platforms.
func CreateConstraint(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	e := archetypes.Constraint.Spawn(ecs)
	attachObject(ecs, e, cell(x, y), groupOther, tags.ResolvConstraint)
	return e
}

// CreateCoin adds a gold coin worth 5 for code 0, otherwise a silver coin
// worth 1.
func CreateCoin(ecs *ecs.ECS, x, y float64, code int) *donburi.Entry {
	id, value := cfg.SpriteCoinSilver, 1
	if code == 0 {
		id, value = cfg.SpriteCoinGold, 5
	}

	e := archetypes.Coin.Spawn(ecs)
	anim := attachAnimation(ecs, e, id, cfg.Animation.TileSpeed)
	half := tile() / 2
	attachObject(ecs, e, centered(x+half, y+half, anim.Sheet.Width, anim.Sheet.Height), groupOther)
	components.Coin.SetValue(e, components.CoinData{Value: value})
	return e
}

// CreatePalm adds a foreground palm (small for code 0, large otherwise) or
// a background palm, lifted so its trunk stands on the cell.
func CreatePalm(ecs *ecs.ECS, x, y float64, code int, foreground bool) *donburi.Entry {
	id, offset, tag := cfg.SpritePalmBg, cfg.Decoration.PalmOffsetLarge, tags.BgPalm
	if foreground {
		tag = tags.FgPalm
		id = cfg.SpritePalmLarge
		if code == 0 {
			id, offset = cfg.SpritePalmSmall, cfg.Decoration.PalmOffsetSmall
		}
	}

	e := archetypes.Tile.Spawn(ecs, tag)
	attachObject(ecs, e, gamemath.Rect{X: x, Y: y - float64(offset), W: tile(), H: tile()}, groupOther)
	attachAnimation(ecs, e, id, cfg.Animation.TileSpeed)
	return e
}
