package systems

import (
	"testing"

	"github.com/automoto/treasure-hunters/components"
	"github.com/automoto/treasure-hunters/shared/leveldata"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// floorAndWall is a full floor on row 10, a two-tile wall in column 3 and
// a ceiling tile at row 5, column 1.
func floorAndWall() map[leveldata.Layer]map[[2]int]int {
	terrain := map[[2]int]int{{8, 3}: 3, {9, 3}: 3, {5, 1}: 3}
	for c := 0; c < 12; c++ {
		terrain[[2]int{10, c}] = 3
	}
	return map[leveldata.Layer]map[[2]int]int{leveldata.LayerTerrain: terrain}
}

func TestUpdateCollisions_HorizontalBeforeVertical(t *testing.T) {
	tl := newTestLevel(t, floorAndWall())
	tl.place(t, 140, 500)
	_, p, obj := tl.player(t)
	p.Direction.X = 1
	p.Direction.Y = 10

	UpdateCollisions(tl.ECS)

	// The wall corner stops the horizontal move first, so the fall that
	// follows slides past the wall instead of landing on it.
	assert.Equal(t, 142.0, obj.X)
	assert.Equal(t, 510.0, obj.Y)
	assert.True(t, p.OnRight)
	assert.False(t, p.OnGround)
	assert.InDelta(t, 10.8, p.Direction.Y, 1e-9)
}

func TestUpdateCollisions_SnapsLeft(t *testing.T) {
	tl := newTestLevel(t, floorAndWall())
	tl.place(t, 260, 582)
	_, p, obj := tl.player(t)
	p.Direction.X = -1

	UpdateCollisions(tl.ECS)

	assert.Equal(t, 256.0, obj.X)
	assert.True(t, p.OnLeft)
	assert.False(t, p.OnRight)
}

func TestUpdateCollisions_ContactFlagsResetEachFrame(t *testing.T) {
	tl := newTestLevel(t, floorAndWall())
	tl.place(t, 260, 582)
	_, p, _ := tl.player(t)
	p.Direction.X = -1
	UpdateCollisions(tl.ECS)
	require.True(t, p.OnLeft)

	p.Direction.X = 1
	UpdateCollisions(tl.ECS)
	assert.False(t, p.OnLeft)
}

func TestUpdateCollisions_Landing(t *testing.T) {
	tl := newTestLevel(t, floorAndWall())
	tl.place(t, 64, 580)
	_, p, obj := tl.player(t)
	p.Direction.Y = 5

	UpdateCollisions(tl.ECS)

	assert.Equal(t, 582.0, obj.Y)
	assert.Equal(t, 0.0, p.Direction.Y)
	assert.True(t, p.OnGround)
	assert.Equal(t, 1, count(tl.World, tags.Dust), "landing dust")

	// Resting: gravity alone never lifts the player off the ground.
	UpdateCollisions(tl.ECS)
	assert.True(t, p.OnGround)
	assert.Equal(t, 1, count(tl.World, tags.Dust), "no dust without a new landing")
}

func TestUpdateCollisions_Ceiling(t *testing.T) {
	tl := newTestLevel(t, floorAndWall())
	tl.place(t, 64, 386)
	_, p, obj := tl.player(t)
	p.Direction.Y = -5

	UpdateCollisions(tl.ECS)

	assert.Equal(t, 384.0, obj.Y)
	assert.Equal(t, 0.0, p.Direction.Y)
	assert.True(t, p.OnCeiling)
}

func TestUpdateCollisions_FallingClearsGround(t *testing.T) {
	tl := newTestLevel(t, nil)
	tl.place(t, 500, 100)
	_, p, _ := tl.player(t)
	p.OnGround = true
	p.Direction.Y = 1

	UpdateCollisions(tl.ECS)

	assert.False(t, p.OnGround)
	assert.Equal(t, donburi.Null, p.Platform)
}

func TestUpdateCollisions_CameraShiftHoldsPlayerOnScreen(t *testing.T) {
	tl := newTestLevel(t, nil)
	tl.place(t, 500, 100)
	_, p, obj := tl.player(t)
	p.Direction.X = -1
	p.Speed = 0
	cam := cameraOf(tl.ECS)
	cam.WorldShift = 8

	ApplyWorldShift(tl.ECS)
	UpdateCollisions(tl.ECS)

	assert.Equal(t, 492.0, obj.X)
	assert.Equal(t, -8.0, cam.X)
	// Screen position is unchanged.
	assert.Equal(t, 500.0, obj.X-cam.X)
}

func TestUpdateCollisions_LandsOnPlatform(t *testing.T) {
	tl := newTestLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerPlatforms: {{5, 2}: 0},
	})
	platform := tl.first(t, tags.Platform)
	pr := rectOf(platform)
	tl.place(t, pr.X+14, pr.Y-58)
	_, p, obj := tl.player(t)

	// 0.8 truncates to no movement; the second frame sinks one pixel.
	UpdateCollisions(tl.ECS)
	assert.False(t, p.OnGround)
	UpdateCollisions(tl.ECS)

	assert.True(t, p.OnGround)
	assert.Equal(t, platform.Entity(), p.Platform)
	assert.Equal(t, pr.Y-58, obj.Y)
}

func TestObstacles_CreationOrder(t *testing.T) {
	tl := newTestLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerTerrain: {{10, 0}: 3, {9, 2}: 3},
		leveldata.LayerCrates:  {{9, 1}: 0},
		leveldata.LayerShell:   {{8, 1}: 1},
		leveldata.LayerPlayer:  {{5, 5}: leveldata.PlayerStart},
	})

	found := obstacles(tl.ECS, rectOf(tl.first(t, tags.Crate)))
	require.Len(t, found, 4)
	for i := 1; i < len(found); i++ {
		assert.Less(t, components.Object.Get(found[i-1]).Order, components.Object.Get(found[i]).Order)
	}
	assert.True(t, found[len(found)-1].HasComponent(components.Shell))
}
