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

// CreateEnemy adds a walker standing on the bottom of its cell, heading
// right at a random speed.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	e := archetypes.Enemy.Spawn(ecs)
	anim := attachAnimation(ecs, e, cfg.SpriteEnemyRun, cfg.Animation.TileSpeed)

	r := cell(x, y)
	r.Y += tile() - float64(anim.Sheet.Height)
	attachObject(ecs, e, r, groupOther, tags.ResolvEnemy)

	lvl := levelData(ecs)
	speed := cfg.Enemy.MinSpeed + lvl.Rand.Intn(cfg.Enemy.MaxSpeed-cfg.Enemy.MinSpeed+1)
	components.Enemy.SetValue(e, components.EnemyData{Speed: float64(speed)})
	return e
}

func shellSheets(dir cfg.Direction) (idle, attack cfg.SpriteID) {
	if dir == cfg.DirectionLeft {
		return cfg.SpriteShellLeftIdle, cfg.SpriteShellLeftAttack
	}
	return cfg.SpriteShellRightIdle, cfg.SpriteShellRightAttack
}

// CreateShell adds a turret facing dir. Shells are solid.
func CreateShell(ecs *ecs.ECS, x, y float64, dir cfg.Direction) *donburi.Entry {
	e := archetypes.Shell.Spawn(ecs)
	idle, _ := shellSheets(dir)
	anim := attachAnimation(ecs, e, idle, cfg.Animation.TileSpeed)

	r := cell(x, y)
	r.Y += tile() - float64(anim.Sheet.Height)
	attachObject(ecs, e, r, groupShell, tags.ResolvSolid)

	components.Shell.SetValue(e, components.ShellData{
		Direction: dir,
		Pearl:     donburi.Null,
	})
	return e
}

func CreatePearl(ecs *ecs.ECS, x, y float64, dir cfg.Direction) *donburi.Entry {
	e := archetypes.Pearl.Spawn(ecs)
	anim := attachFrame(ecs, e, cfg.SpritePearl, 0)
	attachObject(ecs, e, gamemath.Rect{X: x, Y: y, W: float64(anim.Sheet.Width), H: float64(anim.Sheet.Height)}, groupOther)
	components.Pearl.SetValue(e, components.PearlData{
		Direction: dir,
		Speed:     cfg.Pearl.Speed,
	})
	return e
}

// CreateBoss adds the boss with a square rect of SizeTiles tiles, lifted
// so it stands on the cell's floor.
func CreateBoss(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	e := archetypes.Boss.Spawn(ecs)
	attachAnimation(ecs, e, cfg.SpriteBossIdle, cfg.Animation.TileSpeed)

	size := float64(cfg.Boss.SizeTiles) * tile()
	attachObject(ecs, e, gamemath.Rect{X: x, Y: y - float64(cfg.Boss.LiftY), W: size, H: size}, groupOther)

	components.Boss.SetValue(e, components.BossData{
		Speed:  cfg.Boss.Speed,
		Health: cfg.Boss.Health,
	})
	components.Invincible.SetValue(e, components.InvincibleData{
		DurationMs: cfg.Boss.InvincibilityMs,
	})
	return e
}
