package systems

import (
	"sort"

	"github.com/automoto/treasure-hunters/components"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func rectOf(e *donburi.Entry) gamemath.Rect {
	return components.Object.Get(e).Rect()
}

// collect gathers the entries of a component or tag so callers can remove
// entries while deciding what to do with them.
func collect[T any](w donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var out []*donburi.Entry
	c.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// collectOrdered is collect sorted by creation order.
func collectOrdered[T any](w donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	out := collect(w, c)
	sortByOrder(out)
	return out
}

func sortByOrder(entries []*donburi.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Object.Get(entries[i]).Order < components.Object.Get(entries[j]).Order
	})
}

// removeEntry takes an entity out of the collision space and the world.
// Removing an entry twice is a no-op.
func removeEntry(e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.Remove()
}

// overlapsAny reports whether r overlaps any entry carrying c.
func overlapsAny[T any](w donburi.World, c *donburi.ComponentType[T], r gamemath.Rect) bool {
	hit := false
	c.Each(w, func(e *donburi.Entry) {
		if !hit && rectOf(e).Overlaps(r) {
			hit = true
		}
	})
	return hit
}

func levelOf(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func now(e *ecs.ECS) int64 {
	if lvl := levelOf(e); lvl != nil && lvl.Clock != nil {
		return lvl.Clock.Now()
	}
	return 0
}
