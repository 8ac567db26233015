package systems

import (
	"github.com/automoto/treasure-hunters/components"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves every platform along its axis, then reverses the
// ones that reached a constraint.
func UpdatePlatforms(e *ecs.ECS) {
	platforms := collectOrdered(e.World, components.Platform)

	for _, entry := range platforms {
		platform := components.Platform.Get(entry)
		dx, dy := platform.Delta()
		components.Object.Get(entry).Move(dx, dy)
	}

	for _, entry := range platforms {
		if overlapsAny(e.World, tags.Constraint, rectOf(entry)) {
			components.Platform.Get(entry).Reverse()
		}
	}
}
