package systems

import (
	"github.com/automoto/treasure-hunters/components"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateExplosions plays explosion effects through once.
func UpdateExplosions(e *ecs.ECS) {
	updateParticles(e, tags.Explosion)
}

// updateParticles advances one-shot effects carrying c and removes those
// whose last frame has played.
func updateParticles[T any](e *ecs.ECS, c *donburi.ComponentType[T]) {
	var toDestroy []*donburi.Entry

	c.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.AutoDestroy) {
			return
		}
		anim := components.Animation.Get(entry)
		anim.Update()
		if anim.Done {
			toDestroy = append(toDestroy, entry)
		}
	})

	for _, entry := range toDestroy {
		removeEntry(entry)
	}
}

// dustAlive reports whether a jump or landing puff is still playing.
func dustAlive(e *ecs.ECS) bool {
	_, ok := tags.Dust.First(e.World)
	return ok
}
