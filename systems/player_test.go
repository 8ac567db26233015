package systems

import (
	"testing"

	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/leveldata"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestUpdatePlayer_StatusFollowsVelocity(t *testing.T) {
	cases := []struct {
		name    string
		actions []cfg.ActionID
		vy      float64
		want    cfg.StateID
	}{
		{"idle", nil, 0, cfg.StateIdle},
		{"run", []cfg.ActionID{cfg.ActionMoveLeft}, 0.8, cfg.StateRun},
		{"jump", []cfg.ActionID{cfg.ActionMoveRight}, -3, cfg.StateJump},
		{"fall", nil, 2, cfg.StateFall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tl := newTestLevel(t, nil)
			_, p, _ := tl.player(t)
			p.Direction.Y = tc.vy
			tl.press(tc.actions...)

			UpdatePlayer(tl.ECS)

			assert.Equal(t, tc.want, p.Status)
			assert.Equal(t, cfg.PlayerAnimations[tc.want], components.Animation.Get(tl.first(t, tags.Player)).SheetID)
		})
	}
}

func TestUpdatePlayer_RightWinsOverLeft(t *testing.T) {
	tl := newTestLevel(t, nil)
	_, p, _ := tl.player(t)
	tl.press(cfg.ActionMoveLeft, cfg.ActionMoveRight)

	UpdatePlayer(tl.ECS)

	assert.Equal(t, 1.0, p.Direction.X)
	assert.True(t, p.FacingRight)
}

func TestUpdatePlayer_JumpOnlyFromGround(t *testing.T) {
	tl := newTestLevel(t, nil)
	_, p, _ := tl.player(t)
	tl.press(cfg.ActionJump)

	UpdatePlayer(tl.ECS)
	assert.Equal(t, 0.0, p.Direction.Y, "airborne")

	p.OnGround = true
	UpdatePlayer(tl.ECS)
	assert.Equal(t, cfg.Player.JumpSpeed, p.Direction.Y)
	assert.Equal(t, cfg.StateJump, p.Status)
	assert.Equal(t, 1, count(tl.World, tags.Dust))
	assert.Contains(t, GetOrCreateAudio(tl.ECS).PendingSFX, cfg.SoundJump)
}

func TestUpdatePlayer_VisualFollowsCollisionRect(t *testing.T) {
	tl := newTestLevel(t, nil)
	tl.place(t, 300, 200)
	_, p, obj := tl.player(t)

	UpdatePlayer(tl.ECS)
	assert.Equal(t, obj.Rect().Bottom(), p.Visual.Bottom())
	assert.Equal(t, 300.0, p.Visual.X, "facing right snaps the left edges")

	tl.press(cfg.ActionMoveLeft)
	UpdatePlayer(tl.ECS)
	assert.Equal(t, obj.Rect().Right(), p.Visual.Right(), "facing left snaps the right edges")
	assert.True(t, components.Animation.Get(tl.first(t, tags.Player)).FlipX)
}

func TestUpdatePlayer_RidesPlatform(t *testing.T) {
	tl := newTestLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerPlatforms: {{5, 2}: 0},
	})
	platform := tl.first(t, tags.Platform)
	_, p, obj := tl.player(t)
	p.Platform = platform.Entity()
	x := obj.X

	UpdatePlayer(tl.ECS)
	assert.Equal(t, x+cfg.Platform.Speed, obj.X)

	removeEntry(platform)
	UpdatePlayer(tl.ECS)
	assert.Equal(t, x+cfg.Platform.Speed, obj.X, "a removed platform carries nothing")
	assert.Equal(t, donburi.Null, p.Platform)
}

func TestDamagePlayer_InvincibilityAppliesOnce(t *testing.T) {
	tl := newTestLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerSpikes: {{9, 5}: 0},
	})
	spike := rectOf(tl.first(t, tags.Spikes))
	tl.place(t, spike.X, spike.Y)
	_, p, _ := tl.player(t)

	UpdateSpikes(tl.ECS)
	UpdateSpikes(tl.ECS)
	assert.Equal(t, []int{cfg.Damage.Spike}, tl.rec.health)
	assert.Equal(t, cfg.Damage.Bounce, p.Direction.Y, "knockback applies every contact")

	tl.clock.Advance(cfg.Player.InvincibilityMs - 1)
	UpdatePlayer(tl.ECS)
	UpdateSpikes(tl.ECS)
	require.Len(t, tl.rec.health, 1, "still invincible")

	tl.clock.Advance(1)
	UpdatePlayer(tl.ECS)
	UpdateSpikes(tl.ECS)
	assert.Equal(t, []int{cfg.Damage.Spike, cfg.Damage.Spike}, tl.rec.health)
}

func TestUpdatePlayer_BlinksWhileInvincible(t *testing.T) {
	tl := newTestLevel(t, nil)
	entry, _, _ := tl.player(t)
	anim := components.Animation.Get(entry)

	damagePlayer(tl.ECS, entry, -10)
	tl.clock.Set(1004) // sin(1004) < 0
	UpdatePlayer(tl.ECS)
	assert.Equal(t, float32(0), anim.Alpha)

	tl.clock.Set(5000)
	UpdatePlayer(tl.ECS)
	UpdatePlayer(tl.ECS)
	assert.Equal(t, float32(1), anim.Alpha)
}

func TestLevelFrame_RidingPlayerMovesWithPlatform(t *testing.T) {
	tl := newTestLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerPlatforms: {{5, 2}: 0},
	})
	RegisterLevelSystems(tl.ECS)
	platform := tl.first(t, tags.Platform)
	top := rectOf(platform)
	_, p, obj := tl.player(t)
	tl.place(t, top.X+14, top.Y-obj.H)

	for i := 0; i < 10 && p.Platform == donburi.Null; i++ {
		tl.Update()
	}
	require.Equal(t, platform.Entity(), p.Platform, "the player lands on the platform")

	for range 3 {
		px, x := rectOf(platform).X, obj.X
		tl.Update()
		assert.Equal(t, cfg.Platform.Speed, rectOf(platform).X-px)
		assert.Equal(t, cfg.Platform.Speed, obj.X-x, "the player rides in the same frame")
	}
}
