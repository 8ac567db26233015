package systems

import (
	"io"
	"math/rand"
	"testing"

	"github.com/automoto/treasure-hunters/assets"
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/clock"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/automoto/treasure-hunters/shared/leveldata"
	"github.com/automoto/treasure-hunters/systems/factory"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type exit struct{ level, unlock int }

// recorder collects every callback a level makes.
type recorder struct {
	health []int
	coins  []int
	exits  []exit
}

func (r *recorder) ChangeHealth(amount int)         { r.health = append(r.health, amount) }
func (r *recorder) ChangeCoins(amount int)          { r.coins = append(r.coins, amount) }
func (r *recorder) LevelComplete(level, unlock int) { r.exits = append(r.exits, exit{level, unlock}) }

// script is an input source driven by the test.
type script map[cfg.ActionID]bool

func (s script) Pressed(action cfg.ActionID) bool { return s[action] }

type testLevel struct {
	*ecs.ECS
	rec   *recorder
	clock *clock.Manual
	input script
}

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

// newTestLevel builds an 11x12 level with a single terrain tile at the
// bottom-left and the player start at row 9, column 1 unless layers
// override them.
func newTestLevel(t *testing.T, layers map[leveldata.Layer]map[[2]int]int) *testLevel {
	t.Helper()
	const rows, cols = 11, 12

	d := &leveldata.Descriptor{ID: 2, Unlock: 3, Layers: map[leveldata.Layer]leveldata.Grid{
		leveldata.LayerTerrain: grid(rows, cols, map[[2]int]int{{10, 0}: 3}),
		leveldata.LayerPlayer:  grid(rows, cols, map[[2]int]int{{9, 1}: leveldata.PlayerStart}),
	}}
	for l, cells := range layers {
		d.Layers[l] = grid(rows, cols, cells)
	}

	tl := &testLevel{
		ECS:   ecs.NewECS(donburi.NewWorld()),
		rec:   &recorder{},
		clock: clock.NewManual(1000),
		input: script{},
	}
	_, err := factory.CreateLevel(tl.ECS, factory.LevelConfig{
		Descriptor: d,
		Callbacks:  tl.rec,
		Clock:      tl.clock,
		Rand:       rand.New(rand.NewSource(1)),
		Log:        log.New(io.Discard),
		Assets:     assets.NewHeadless(),
	})
	require.NoError(t, err)
	getOrCreateInput(tl.ECS).Source = tl.input
	return tl
}

func (tl *testLevel) player(t *testing.T) (*donburi.Entry, *components.PlayerData, *components.ObjectData) {
	t.Helper()
	e, ok := tags.Player.First(tl.World)
	require.True(t, ok)
	return e, components.Player.Get(e), components.Object.Get(e)
}

// place moves the player's collision rect and lines the sprite rect up
// with its bottom edge.
func (tl *testLevel) place(t *testing.T, x, y float64) {
	t.Helper()
	_, p, obj := tl.player(t)
	obj.SetRect(gamemath.Rect{X: x, Y: y, W: obj.W, H: obj.H})
	p.Visual = gamemath.Rect{X: x, Y: obj.Rect().Bottom() - p.Visual.H, W: p.Visual.W, H: p.Visual.H}
}

func (tl *testLevel) first(t *testing.T, tag *donburi.ComponentType[donburi.Tag]) *donburi.Entry {
	t.Helper()
	e, ok := tag.First(tl.World)
	require.True(t, ok)
	return e
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	return len(collect(w, c))
}

// press sets the held actions and runs the input system once.
func (tl *testLevel) press(actions ...cfg.ActionID) {
	for k := range tl.input {
		delete(tl.input, k)
	}
	for _, a := range actions {
		tl.input[a] = true
	}
	UpdateInput(tl.ECS)
}
