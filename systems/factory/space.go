package factory

import (
	"github.com/automoto/treasure-hunters/archetypes"
	"github.com/automoto/treasure-hunters/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace adds the broad-phase grid every collidable rect joins.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	components.Space.Set(entry, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return entry
}

// CreateCamera adds the camera at the level's left edge with no pending
// shift.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(entry, &components.CameraData{})
	return entry
}
