package systems

import (
	"github.com/automoto/treasure-hunters/components"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies animates and walks every walker, then reverses the ones
// that reached a constraint.
func UpdateEnemies(e *ecs.ECS) {
	enemies := collectOrdered(e.World, components.Enemy)

	for _, entry := range enemies {
		enemy := components.Enemy.Get(entry)
		anim := components.Animation.Get(entry)

		anim.Update()
		components.Object.Get(entry).Move(enemy.Speed, 0)
		anim.FlipX = enemy.Speed > 0
	}

	for _, entry := range enemies {
		if overlapsAny(e.World, tags.Constraint, rectOf(entry)) {
			components.Enemy.Get(entry).Reverse()
		}
	}
}
