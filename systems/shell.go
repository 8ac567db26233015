package systems

import (
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShells animates every shell and ends attacks whose reload time
// has passed.
func UpdateShells(e *ecs.ECS) {
	t := now(e)
	for _, entry := range collectOrdered(e.World, components.Shell) {
		components.Animation.Get(entry).Update()
		reloadShell(e, entry, t)
	}
}

func reloadShell(e *ecs.ECS, entry *donburi.Entry, now int64) {
	shell := components.Shell.Get(entry)
	if shell.Attack && now-shell.ShotAt >= cfg.Shell.ReloadMs {
		shell.Attack = false
		setShellSheet(e, entry, false)
	}
}

// Shoot fires a pearl from the shell unless it is still attacking. The
// level owns the pearl; the shell only remembers its handle.
func Shoot(e *ecs.ECS, entry *donburi.Entry) {
	shell := components.Shell.Get(entry)
	if shell.Attack {
		return
	}

	shell.ShotAt = now(e)
	shell.Attack = true
	setShellSheet(e, entry, true)

	r := rectOf(entry)
	pearl := factory.CreatePearl(e, r.CenterX(), r.Y+float64(cfg.Shell.PearlOffsetY), shell.Direction)
	shell.Pearl = pearl.Entity()

	if lvl := levelOf(e); lvl != nil {
		lvl.Log.Debug("shell fired", "x", r.X, "y", r.Y, "direction", shell.Direction)
	}
}

func setShellSheet(e *ecs.ECS, entry *donburi.Entry, attack bool) {
	shell := components.Shell.Get(entry)
	id := cfg.SpriteShellRightIdle
	switch {
	case shell.Direction == cfg.DirectionLeft && attack:
		id = cfg.SpriteShellLeftAttack
	case shell.Direction == cfg.DirectionLeft:
		id = cfg.SpriteShellLeftIdle
	case attack:
		id = cfg.SpriteShellRightAttack
	}
	components.Animation.Get(entry).SetSheet(id, levelOf(e).Assets.Sheet(id))
}

// UpdatePearls moves every pearl and removes those that left the
// viewport or hit the player.
func UpdatePearls(e *ecs.ECS) {
	view := Viewport(e)
	for _, entry := range collectOrdered(e.World, components.Pearl) {
		pearl := components.Pearl.Get(entry)
		obj := components.Object.Get(entry)

		obj.Move(pearl.Direction.Sign()*pearl.Speed, 0)
		if !obj.Rect().Overlaps(view) {
			pearl.Hit = true
		}
		if pearl.Hit {
			removeEntry(entry)
		}
	}
}
