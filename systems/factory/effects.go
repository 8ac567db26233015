package factory

import (
	"github.com/automoto/treasure-hunters/archetypes"
	"github.com/automoto/treasure-hunters/assets/animations"
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spawnParticle creates a one-shot effect centred on (cx, cy) that removes
// itself when its last frame has played.
func spawnParticle(ecs *ecs.ECS, id cfg.SpriteID, cx, cy float64, tag donburi.IComponentType) *donburi.Entry {
	e := archetypes.Particle.Spawn(ecs, tag)
	sheet := levelData(ecs).Assets.Sheet(id)
	components.Animation.SetValue(e, components.AnimationData{
		Animation: animations.NewOneShot(sheet.Len(), cfg.Animation.ParticleSpeed),
		Sheet:     sheet,
		SheetID:   id,
		Alpha:     1,
	})
	attachObject(ecs, e, centered(cx, cy, sheet.Width, sheet.Height), groupOther)
	return e
}

// CreateDust replaces any live dust puff with a new one. id is the jump or
// landing dust sprite.
func CreateDust(ecs *ecs.ECS, id cfg.SpriteID, cx, cy float64) *donburi.Entry {
	var old []*donburi.Entry
	tags.Dust.Each(ecs.World, func(e *donburi.Entry) {
		old = append(old, e)
	})
	for _, e := range old {
		ecs.World.Remove(e.Entity())
	}
	return spawnParticle(ecs, id, cx, cy, tags.Dust)
}

func CreateExplosion(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	return spawnParticle(ecs, cfg.SpriteExplosion, cx, cy, tags.Explosion)
}
