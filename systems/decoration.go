package systems

import (
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBackground animates the layers drawn behind the terrain.
func UpdateBackground(e *ecs.ECS) {
	animateAll(e, tags.BgPalm)
	updateParticles(e, tags.Dust)
}

// UpdateForeground animates the layers drawn in front of the player.
func UpdateForeground(e *ecs.ECS) {
	animateAll(e, tags.FgPalm)
	animateAll(e, tags.Coin)
}

func UpdateWater(e *ecs.ECS) {
	animateAll(e, tags.Water)
}
