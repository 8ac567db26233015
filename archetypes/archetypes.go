package archetypes

import (
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Sky = newArchetype(
		components.Sky,
	)

	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Invincible,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Object,
		components.Animation,
	)

	// Tile is a static or animated grid entity; callers add the variant tag.
	Tile = newArchetype(
		components.Object,
		components.Animation,
	)
	Constraint = newArchetype(
		tags.Constraint,
		components.Object,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Object,
		components.Animation,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Animation,
	)
	Shell = newArchetype(
		tags.Shell,
		components.Shell,
		components.Object,
		components.Animation,
	)
	Pearl = newArchetype(
		tags.Pearl,
		components.Pearl,
		components.Object,
		components.Animation,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Object,
		components.Animation,
		components.Invincible,
	)
	Particle = newArchetype(
		components.Object,
		components.Animation,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
