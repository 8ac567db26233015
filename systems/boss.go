package systems

import (
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/automoto/treasure-hunters/systems/factory"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoss animates the boss, blinks it while invincible and ends the
// invincibility window.
func UpdateBoss(e *ecs.ECS) {
	entry, ok := tags.Boss.First(e.World)
	if !ok {
		return
	}
	t := now(e)
	anim := components.Animation.Get(entry)
	inv := components.Invincible.Get(entry)

	anim.Update()
	anim.Alpha = 1
	if inv.Active {
		anim.Alpha = gamemath.WaveAlpha(t)
	}
	inv.Tick(t)
}

// damageBoss applies one spike hit. It reports whether the boss died;
// a dead boss has already been removed and rewarded.
func damageBoss(e *ecs.ECS, entry *donburi.Entry) bool {
	boss := components.Boss.Get(entry)
	inv := components.Invincible.Get(entry)
	lvl := levelOf(e)

	if !inv.Active {
		PlaySFX(e, cfg.SoundHit)
		boss.Health -= cfg.Boss.DamagePerHit
		inv.Trigger(lvl.Clock.Now())
		lvl.Log.Info("boss hit", "health", boss.Health)
	}
	if boss.Alive() {
		return false
	}

	r := rectOf(entry)
	factory.CreateExplosion(e, r.CenterX(), r.CenterY())
	PlaySFX(e, cfg.SoundStomp)
	removeEntry(entry)
	lvl.Callbacks.ChangeCoins(cfg.Boss.Reward)
	lvl.Log.Info("boss defeated", "reward", cfg.Boss.Reward)
	return true
}

// moveBoss walks the boss toward dir and shows the matching frames; a
// zero dir stops it.
func moveBoss(e *ecs.ECS, entry *donburi.Entry, dir float64) {
	boss := components.Boss.Get(entry)
	id := cfg.SpriteBossIdle
	switch {
	case dir < 0:
		id = cfg.SpriteBossRunLeft
	case dir > 0:
		id = cfg.SpriteBossRunRight
	}
	if dir != 0 {
		components.Object.Get(entry).Move(dir*boss.Speed, 0)
	}
	components.Animation.Get(entry).SetSheet(id, levelOf(e).Assets.Sheet(id))
}
