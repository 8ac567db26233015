package systems

import (
	"testing"

	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/leveldata"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoss_SpikesDefeatAfterThreeHits(t *testing.T) {
	tl := newTestLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerBoss:   {{9, 8}: 0},
		leveldata.LayerSpikes: {{9, 9}: 0},
	})
	entry := tl.first(t, tags.Boss)
	boss := components.Boss.Get(entry)

	UpdateSpikes(tl.ECS)
	assert.Equal(t, 20, boss.Health)

	UpdateSpikes(tl.ECS)
	assert.Equal(t, 20, boss.Health, "invincible right after a hit")

	tl.clock.Advance(cfg.Boss.InvincibilityMs)
	UpdateBoss(tl.ECS)
	UpdateSpikes(tl.ECS)
	assert.Equal(t, 10, boss.Health)
	assert.Empty(t, tl.rec.coins)

	tl.clock.Advance(cfg.Boss.InvincibilityMs)
	UpdateBoss(tl.ECS)
	UpdateSpikes(tl.ECS)

	assert.False(t, entry.Valid(), "the boss is removed")
	assert.Equal(t, []int{cfg.Boss.Reward}, tl.rec.coins)
	assert.Equal(t, 1, count(tl.World, tags.Explosion))

	tl.clock.Advance(cfg.Boss.InvincibilityMs)
	UpdateBoss(tl.ECS)
	UpdateSpikes(tl.ECS)
	assert.Equal(t, []int{cfg.Boss.Reward}, tl.rec.coins, "a fourth hit has no effect")
	assert.Empty(t, tl.rec.health)
}

func TestBoss_TwoSpikesRewardOnce(t *testing.T) {
	tl := newTestLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerBoss:   {{9, 8}: 0},
		leveldata.LayerSpikes: {{9, 8}: 0, {9, 9}: 0},
	})
	entry := tl.first(t, tags.Boss)
	components.Boss.Get(entry).Health = cfg.Boss.DamagePerHit

	UpdateSpikes(tl.ECS)

	assert.False(t, entry.Valid())
	assert.Equal(t, []int{cfg.Boss.Reward}, tl.rec.coins)
}

func TestUpdateBoss_BlinksWhileInvincible(t *testing.T) {
	tl := newTestLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerBoss: {{9, 8}: 0},
	})
	entry := tl.first(t, tags.Boss)
	inv := components.Invincible.Get(entry)
	anim := components.Animation.Get(entry)

	inv.Trigger(tl.clock.Now())
	tl.clock.Set(1004)
	UpdateBoss(tl.ECS)
	assert.Equal(t, float32(0), anim.Alpha)
	require.True(t, inv.Active)

	tl.clock.Advance(cfg.Boss.InvincibilityMs)
	UpdateBoss(tl.ECS)
	assert.False(t, inv.Active)
	UpdateBoss(tl.ECS)
	assert.Equal(t, float32(1), anim.Alpha)
}

func TestSpikes_PlayerContactSparesBoss(t *testing.T) {
	tl := newTestLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerBoss:   {{9, 8}: 0},
		leveldata.LayerSpikes: {{9, 9}: 0},
	})
	spike := rectOf(tl.first(t, tags.Spikes))
	boss := components.Boss.Get(tl.first(t, tags.Boss))
	require.True(t, spike.Overlaps(rectOf(tl.first(t, tags.Boss))))
	tl.place(t, spike.X, spike.Y)
	_, p, _ := tl.player(t)

	UpdateSpikes(tl.ECS)

	assert.Equal(t, []int{cfg.Damage.Spike}, tl.rec.health)
	assert.Equal(t, cfg.Damage.Bounce, p.Direction.Y)
	assert.Equal(t, cfg.Boss.Health, boss.Health, "a spike touching the player skips the boss")
}

func TestSpikes_OtherSpikeStillHitsBoss(t *testing.T) {
	tl := newTestLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerBoss:   {{9, 8}: 0},
		leveldata.LayerSpikes: {{9, 8}: 0, {9, 9}: 0},
	})
	spikes := collectOrdered(tl.World, tags.Spikes)
	require.Len(t, spikes, 2)
	under := rectOf(spikes[1])
	tl.place(t, under.X, under.Y)
	require.False(t, rectOf(spikes[0]).Overlaps(rectOf(tl.first(t, tags.Player))))
	boss := components.Boss.Get(tl.first(t, tags.Boss))

	UpdateSpikes(tl.ECS)

	assert.Equal(t, []int{cfg.Damage.Spike}, tl.rec.health)
	assert.Equal(t, cfg.Boss.Health-cfg.Boss.DamagePerHit, boss.Health)
}
