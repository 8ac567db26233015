package systems

import (
	"github.com/automoto/treasure-hunters/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// animateAll advances the frame cursor of every entry carrying c.
func animateAll[T any](e *ecs.ECS, c *donburi.ComponentType[T]) {
	c.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Animation) {
			components.Animation.Get(entry).Update()
		}
	})
}
