package systems

import (
	"math"

	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/automoto/treasure-hunters/systems/factory"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer reads input, derives the status, animates the sprite and
// carries the player along with a supporting platform. Collision passes
// run afterwards in UpdateCollisions.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	inv := components.Invincible.Get(entry)
	t := now(e)

	handleInput(e, player)
	player.Status = cfg.StateID(gamemath.Status(player.Direction.X, player.Direction.Y))
	animatePlayer(e, entry, player, inv.Active, t)
	if player.Status == cfg.StateRun && player.OnGround {
		player.RunDust.Update()
	}
	inv.Tick(t)
	ridePlatform(e, entry, player)
}

func handleInput(e *ecs.ECS, player *components.PlayerData) {
	input := getOrCreateInput(e)

	switch {
	case input.Current[cfg.ActionMoveRight]:
		player.Direction.X = 1
		player.FacingRight = true
	case input.Current[cfg.ActionMoveLeft]:
		player.Direction.X = -1
		player.FacingRight = false
	default:
		player.Direction.X = 0
	}

	if input.Current[cfg.ActionJump] && player.OnGround {
		PlaySFX(e, cfg.SoundJump)
		player.Direction.Y = cfg.Player.JumpSpeed
		createJumpDust(e, player)
	}
}

// midBottom is the centre of a rect's bottom edge.
func midBottom(r gamemath.Rect) (x, y float64) {
	return r.CenterX(), r.Bottom()
}

func createJumpDust(e *ecs.ECS, player *components.PlayerData) {
	x, y := midBottom(player.Visual)
	if player.FacingRight {
		x, y = x-10, y-5
	} else {
		x, y = x+10, y-5
	}
	factory.CreateDust(e, cfg.SpriteDustJump, x, y)
}

// animatePlayer steps the status animation and realigns the visual rect:
// its bottom corner on the facing side snaps to the collision rect, then
// it is re-derived from the frame size around the same mid-bottom.
func animatePlayer(e *ecs.ECS, entry *donburi.Entry, player *components.PlayerData, invincible bool, now int64) {
	anim := components.Animation.Get(entry)
	id := cfg.PlayerAnimations[player.Status]
	anim.SetSheet(id, levelOf(e).Assets.Sheet(id))
	anim.Update()
	anim.FlipX = !player.FacingRight

	coll := components.Object.Get(entry).Rect()
	v := player.Visual
	if player.FacingRight {
		v.X = coll.X
	} else {
		v.X = coll.Right() - v.W
	}
	v.Y = coll.Bottom() - v.H

	midX, bottom := midBottom(v)
	w, h := float64(anim.Sheet.Width), float64(anim.Sheet.Height)
	player.Visual = gamemath.Rect{X: midX - math.Floor(w/2), Y: bottom - h, W: w, H: h}

	anim.Alpha = 1
	if invincible {
		anim.Alpha = gamemath.WaveAlpha(now)
	}
}

// ridePlatform carries the player by the platform's motion along its
// axis. The reference is dropped if the platform no longer exists.
func ridePlatform(e *ecs.ECS, entry *donburi.Entry, player *components.PlayerData) {
	if player.Platform == donburi.Null {
		return
	}
	if !e.World.Valid(player.Platform) {
		player.Platform = donburi.Null
		return
	}
	platform := components.Platform.Get(e.World.Entry(player.Platform))
	dx, dy := platform.Delta()
	components.Object.Get(entry).Move(dx, dy)
}

// damagePlayer applies amount through the health callback unless the
// player is invincible.
func damagePlayer(e *ecs.ECS, entry *donburi.Entry, amount int) {
	inv := components.Invincible.Get(entry)
	if inv.Active {
		return
	}
	lvl := levelOf(e)
	PlaySFX(e, cfg.SoundHit)
	lvl.Callbacks.ChangeHealth(amount)
	inv.Trigger(lvl.Clock.Now())
}

func healPlayer(e *ecs.ECS) {
	levelOf(e).Callbacks.ChangeHealth(cfg.Player.HealAmount)
}
