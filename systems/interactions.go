package systems

import (
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/systems/factory"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpikes hurts and launches a player touching a spike; a spike the
// player is not touching hurts the boss instead.
func UpdateSpikes(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	coll := rectOf(playerEntry)
	boss, hasBoss := tags.Boss.First(e.World)

	for _, spike := range collectOrdered(e.World, tags.Spikes) {
		r := rectOf(spike)
		switch {
		case r.Overlaps(coll):
			damagePlayer(e, playerEntry, cfg.Damage.Spike)
			player.Direction.Y = cfg.Damage.Bounce
		case hasBoss && r.Overlaps(rectOf(boss)):
			if damageBoss(e, boss) {
				hasBoss = false
			}
		}
	}
}

// CheckExits ends the level when the player falls below the screen or
// reaches the goal. Only the first exit of a level is reported.
func CheckExits(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	lvl := levelOf(e)
	player := components.Player.Get(playerEntry)

	if player.Visual.Y > float64(cfg.C.Height) {
		lvl.Log.Info("player fell", "level", lvl.ID)
		lvl.Exit(0)
	}

	if goal, ok := tags.Goal.First(e.World); ok && rectOf(goal).Overlaps(rectOf(playerEntry)) {
		lvl.Log.Info("goal reached", "level", lvl.ID, "unlock", lvl.Unlock)
		lvl.Exit(lvl.Unlock)
	}
}

// UpdateInteractions runs the pickup, sight and contact rules between
// the player and everything else.
func UpdateInteractions(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	collectBottles(e, playerEntry)
	collectCoins(e, playerEntry)
	checkBossSight(e, playerEntry)
	checkShellSight(e, playerEntry)
	checkPearls(e, playerEntry)
	checkEnemies(e, playerEntry)
}

func collectBottles(e *ecs.ECS, playerEntry *donburi.Entry) {
	coll := rectOf(playerEntry)
	for _, bottle := range collectOrdered(e.World, tags.Bottle) {
		if rectOf(bottle).Overlaps(coll) {
			removeEntry(bottle)
			healPlayer(e)
			PlaySFX(e, cfg.SoundCoin)
		}
	}
}

func collectCoins(e *ecs.ECS, playerEntry *donburi.Entry) {
	coll := rectOf(playerEntry)
	lvl := levelOf(e)
	for _, coin := range collectOrdered(e.World, components.Coin) {
		if rectOf(coin).Overlaps(coll) {
			value := components.Coin.Get(coin).Value
			removeEntry(coin)
			lvl.Callbacks.ChangeCoins(value)
			PlaySFX(e, cfg.SoundCoin)
		}
	}
}

// checkBossSight walks the boss toward a player inside its sight window
// and engagement band, and stops it otherwise.
func checkBossSight(e *ecs.ECS, playerEntry *donburi.Entry) {
	boss, ok := tags.Boss.First(e.World)
	if !ok {
		return
	}
	visual := components.Player.Get(playerEntry).Visual
	r := rectOf(boss)
	reach := cfg.BossSightRange()
	inBand := components.InBand(r.Y, r.Bottom(), visual.Y)

	switch {
	case r.X-reach <= visual.X && visual.X <= r.X && inBand:
		moveBoss(e, boss, -1)
	case r.X+reach >= visual.X && visual.X >= r.X && inBand:
		moveBoss(e, boss, 1)
	default:
		moveBoss(e, boss, 0)
	}
}

// checkShellSight fires shells whose sight band holds the player at
// exactly their firing height. Shells without a target show idle frames.
func checkShellSight(e *ecs.ECS, playerEntry *donburi.Entry) {
	coll := rectOf(playerEntry)
	reach := cfg.ShellSightRange()

	for _, entry := range collectOrdered(e.World, components.Shell) {
		shell := components.Shell.Get(entry)
		r := rectOf(entry)

		start, end := r.X, r.X+reach
		if shell.Direction == cfg.DirectionLeft {
			start, end = r.X-reach, r.X
		}

		if start <= coll.X && coll.X <= end && coll.Y == r.Y-float64(cfg.Shell.SightOffsetY) {
			Shoot(e, entry)
		} else {
			setShellSheet(e, entry, false)
		}
	}
}

// checkPearls marks pearls touching the player as hit; they are removed
// on their next update.
func checkPearls(e *ecs.ECS, playerEntry *donburi.Entry) {
	coll := rectOf(playerEntry)
	for _, entry := range collectOrdered(e.World, components.Pearl) {
		if rectOf(entry).Overlaps(coll) {
			components.Pearl.Get(entry).Hit = true
			damagePlayer(e, playerEntry, cfg.Damage.Pearl)
		}
	}
}

// checkEnemies resolves contact with walkers and the boss on the player's
// visual rect. Landing on the upper half of a walker while falling
// destroys it; any other contact hurts the player. The boss can never be
// stomped and is only checked when no walker was touched.
func checkEnemies(e *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	visual := player.Visual

	var touched []*donburi.Entry
	for _, entry := range collectOrdered(e.World, components.Enemy) {
		if rectOf(entry).Overlaps(visual) {
			touched = append(touched, entry)
		}
	}

	if len(touched) > 0 {
		for _, entry := range touched {
			r := rectOf(entry)
			bottom := player.Visual.Bottom()
			if r.Y < bottom && bottom < r.CenterY() && player.Direction.Y >= 0 {
				player.Direction.Y = cfg.Damage.Bounce
				factory.CreateExplosion(e, r.CenterX(), r.CenterY())
				PlaySFX(e, cfg.SoundStomp)
				removeEntry(entry)
			} else {
				damagePlayer(e, playerEntry, cfg.Damage.Enemy)
			}
		}
		return
	}

	if boss, ok := tags.Boss.First(e.World); ok && rectOf(boss).Overlaps(visual) {
		damagePlayer(e, playerEntry, cfg.Damage.Boss)
		player.Direction.Y = cfg.Damage.Bounce
	}
}
