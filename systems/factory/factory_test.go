package factory

import (
	"io"
	"math/rand"
	"testing"

	"github.com/automoto/treasure-hunters/assets"
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/clock"
	"github.com/automoto/treasure-hunters/shared/leveldata"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type nopCallbacks struct{}

func (nopCallbacks) ChangeHealth(int)       {}
func (nopCallbacks) ChangeCoins(int)        {}
func (nopCallbacks) LevelComplete(int, int) {}

func grid(rows, cols int, cells map[[2]int]int) leveldata.Grid {
	g := make(leveldata.Grid, rows)
	for r := range g {
		g[r] = make([]int, cols)
		for c := range g[r] {
			g[r][c] = leveldata.Empty
		}
	}
	for rc, code := range cells {
		g[rc[0]][rc[1]] = code
	}
	return g
}

func newLevel(t *testing.T, layers map[leveldata.Layer]map[[2]int]int) *ecs.ECS {
	t.Helper()
	const rows, cols = 11, 12

	d := &leveldata.Descriptor{ID: 0, Unlock: 1, Layers: map[leveldata.Layer]leveldata.Grid{}}
	d.Layers[leveldata.LayerTerrain] = grid(rows, cols, map[[2]int]int{{10, 0}: 3})
	if _, ok := layers[leveldata.LayerPlayer]; !ok {
		d.Layers[leveldata.LayerPlayer] = grid(rows, cols, map[[2]int]int{{9, 1}: leveldata.PlayerStart})
	}
	for l, cells := range layers {
		d.Layers[l] = grid(rows, cols, cells)
	}

	w := ecs.NewECS(donburi.NewWorld())
	_, err := CreateLevel(w, LevelConfig{
		Descriptor: d,
		Callbacks:  nopCallbacks{},
		Clock:      clock.NewManual(0),
		Rand:       rand.New(rand.NewSource(1)),
		Log:        log.New(io.Discard),
		Assets:     assets.NewHeadless(),
	})
	require.NoError(t, err)
	return w
}

func TestCreateLevel_RejectsInvalid(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	d := &leveldata.Descriptor{Layers: map[leveldata.Layer]leveldata.Grid{
		leveldata.LayerTerrain: grid(2, 2, nil),
		leveldata.LayerPlayer:  grid(2, 2, nil),
	}}
	_, err := CreateLevel(w, LevelConfig{Descriptor: d, Log: log.New(io.Discard)})
	assert.ErrorIs(t, err, leveldata.ErrNoPlayer)
}

func TestCreateLevel_PlayerGeometry(t *testing.T) {
	w := newLevel(t, nil)

	e, ok := tags.Player.First(w.World)
	require.True(t, ok)
	obj := components.Object.Get(e)
	p := components.Player.Get(e)

	assert.Equal(t, 64.0, obj.X)
	assert.Equal(t, 576.0, obj.Y)
	assert.Equal(t, float64(cfg.Player.CollisionWidth), obj.W)
	assert.Equal(t, 58.0, obj.H)
	assert.Equal(t, 64.0, p.Visual.W)
	assert.True(t, p.FacingRight)
	assert.Equal(t, donburi.Null, p.Platform)
	assert.Equal(t, int64(500), components.Invincible.Get(e).DurationMs)
}

func TestCreateLevel_EntityGeometry(t *testing.T) {
	w := newLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerCoins:     {{2, 2}: 0, {2, 3}: 1},
		leveldata.LayerCrates:    {{9, 4}: 0},
		leveldata.LayerEnemies:   {{9, 5}: 0},
		leveldata.LayerShell:     {{9, 6}: 0},
		leveldata.LayerBoss:      {{9, 8}: 0},
		leveldata.LayerPlatforms: {{5, 2}: 0, {5, 6}: 3},
	})

	coins := map[int]float64{}
	components.Coin.Each(w.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		coins[components.Coin.Get(e).Value] = obj.X
		assert.Equal(t, 128.0+32-8, obj.Y)
	})
	// 16px coins centred on their cells
	assert.Equal(t, map[int]float64{5: 128 + 32 - 8, 1: 192 + 32 - 8}, coins)

	crate, ok := tags.Crate.First(w.World)
	require.True(t, ok)
	assert.Equal(t, 576.0+64-50, components.Object.Get(crate).Y)

	enemy, ok := tags.Enemy.First(w.World)
	require.True(t, ok)
	eo := components.Object.Get(enemy)
	assert.Equal(t, 576.0+64-44, eo.Y)
	assert.Equal(t, 64.0, eo.W)
	speed := components.Enemy.Get(enemy).Speed
	assert.True(t, speed >= 3 && speed <= 5, "speed %v", speed)

	shell, ok := tags.Shell.First(w.World)
	require.True(t, ok)
	assert.Equal(t, 576.0+64-48, components.Object.Get(shell).Y)
	assert.Equal(t, cfg.DirectionLeft, components.Shell.Get(shell).Direction)

	boss, ok := tags.Boss.First(w.World)
	require.True(t, ok)
	bo := components.Object.Get(boss)
	assert.Equal(t, 576.0-120, bo.Y)
	assert.Equal(t, 192.0, bo.W)
	assert.Equal(t, 30, components.Boss.Get(boss).Health)

	var platforms []components.ObjectData
	components.Platform.Each(w.World, func(e *donburi.Entry) {
		platforms = append(platforms, *components.Object.Get(e))
	})
	require.Len(t, platforms, 2)
	for _, p := range platforms {
		if p.Y == 320 {
			assert.Equal(t, 128.0+128, p.X, "horizontal platform shifts two tiles right")
		} else {
			assert.Equal(t, 320.0-128, p.Y, "vertical platform shifts two tiles up")
		}
	}
}

func TestCreateLevel_ObstacleOrder(t *testing.T) {
	w := newLevel(t, map[leveldata.Layer]map[[2]int]int{
		leveldata.LayerCrates:    {{9, 4}: 0},
		leveldata.LayerPlatforms: {{5, 2}: 1},
		leveldata.LayerShell:     {{9, 6}: 1},
	})

	order := func(tag *donburi.ComponentType[donburi.Tag]) int {
		e, ok := tag.First(w.World)
		require.True(t, ok)
		return components.Object.Get(e).Order
	}
	terrain := order(tags.Terrain)
	crate := order(tags.Crate)
	platform := order(tags.Platform)
	shell := order(tags.Shell)

	assert.Less(t, terrain, crate)
	assert.Less(t, crate, platform)
	assert.Less(t, platform, shell)
}

func TestCreateWater_Count(t *testing.T) {
	w := newLevel(t, nil)

	n := 0
	tags.Water.Each(w.World, func(*donburi.Entry) { n++ })
	// (12*64 + 1200) / 192
	assert.Equal(t, 10, n)
}

func TestCreateDust_Single(t *testing.T) {
	w := newLevel(t, nil)

	CreateDust(w, cfg.SpriteDustJump, 100, 100)
	CreateDust(w, cfg.SpriteDustLand, 200, 100)

	n := 0
	tags.Dust.Each(w.World, func(e *donburi.Entry) {
		n++
		assert.Equal(t, cfg.SpriteDustLand, components.Animation.Get(e).SheetID)
	})
	assert.Equal(t, 1, n)
}
