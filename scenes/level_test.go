package scenes

import (
	"testing"

	"github.com/automoto/treasure-hunters/components"
	"github.com/automoto/treasure-hunters/systems"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelScene_BuildsOnFirstUpdate(t *testing.T) {
	f := newFixture(t)
	ls := NewLevelScene(f.ctx, f.session, 0)
	assert.Nil(t, ls.World())

	ls.Update()
	require.NotNil(t, ls.World())

	lvl, ok := components.Level.First(ls.World().World)
	require.True(t, ok)
	assert.Equal(t, 0, components.Level.Get(lvl).ID)
	_, ok = tags.Player.First(ls.World().World)
	assert.True(t, ok)
	assert.Empty(t, f.changer.scenes)
}

func TestLevelScene_UnknownLevelReturnsToMap(t *testing.T) {
	f := newFixture(t)
	ls := NewLevelScene(f.ctx, f.session, 42)
	ls.Update()

	assert.Nil(t, ls.World())
	_, ok := f.changer.last().(*OverworldScene)
	assert.True(t, ok)
}

func TestLevelScene_ExitRequestReturnsToMap(t *testing.T) {
	f := newFixture(t)
	ls := NewLevelScene(f.ctx, f.session, 1)
	ls.Update()

	systems.RequestExit(ls.World())
	ls.Update()

	ow, ok := f.changer.last().(*OverworldScene)
	require.True(t, ok)
	assert.Equal(t, 1, ow.current)
}

func TestLevelScene_GameOver(t *testing.T) {
	f := newFixture(t)
	f.session.maxLevel = 2
	ls := NewLevelScene(f.ctx, f.session, 2)
	ls.Update()

	f.session.ChangeHealth(-100)
	ls.Update()

	assert.Equal(t, 0, f.session.MaxLevel())
	cur, _ := f.session.Health()
	assert.Equal(t, 100, cur)
	_, ok := f.changer.last().(*OverworldScene)
	assert.True(t, ok)
}
