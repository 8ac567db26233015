package factory

import (
	"github.com/automoto/treasure-hunters/archetypes"
	"github.com/automoto/treasure-hunters/assets/animations"
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer adds the player with its visual and collision rects both
// starting at (x, y). The entity's Object is the narrower collision rect.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	anim := attachAnimation(ecs, player, cfg.PlayerAnimations[cfg.StateIdle], cfg.Player.AnimationSpeed)

	h := float64(anim.Sheet.Height)
	attachObject(ecs, player, gamemath.Rect{X: x, Y: y, W: float64(cfg.Player.CollisionWidth), H: h},
		groupOther, tags.ResolvPlayer)

	dust := levelData(ecs).Assets.Sheet(cfg.SpriteDustRun)
	components.Player.SetValue(player, components.PlayerData{
		Speed:       cfg.Player.Speed,
		Status:      cfg.StateIdle,
		FacingRight: true,
		Platform:    donburi.Null,
		Visual:      gamemath.Rect{X: x, Y: y, W: float64(anim.Sheet.Width), H: h},
		RunDust:     animations.NewAnimation(dust.Len(), cfg.Player.DustAnimationSpeed),
	})
	components.Invincible.SetValue(player, components.InvincibleData{
		DurationMs: cfg.Player.InvincibilityMs,
	})
	return player
}
