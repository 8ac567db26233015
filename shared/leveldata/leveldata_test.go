package leveldata

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGrid(t *testing.T) {
	g, err := ReadGrid(strings.NewReader("-1, 0,3\n4,-1,-1\n"))
	require.NoError(t, err)
	assert.Equal(t, Grid{{-1, 0, 3}, {4, -1, -1}}, g)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
}

func TestReadGrid_Errors(t *testing.T) {
	_, err := ReadGrid(strings.NewReader("1,2\n3\n"))
	assert.Error(t, err, "ragged rows")

	_, err = ReadGrid(strings.NewReader("1,x\n"))
	assert.Error(t, err, "non-numeric cell")
}

func TestGrid_EachSkipsEmpty(t *testing.T) {
	g := Grid{{-1, 2}, {0, -1}}
	var got [][3]int
	g.Each(func(r, c, code int) { got = append(got, [3]int{r, c, code}) })
	assert.Equal(t, [][3]int{{0, 1, 2}, {1, 0, 0}}, got)
	assert.Equal(t, 1, g.Count(0))
}

func TestLoader_CSVDir(t *testing.T) {
	l, err := NewLoader(os.DirFS("testdata"), "levels.yaml")
	require.NoError(t, err)
	require.Len(t, l.Table().Levels, 2)

	d, err := l.Load(0)
	require.NoError(t, err)
	assert.Equal(t, "Simple", d.Name)
	assert.Equal(t, 1, d.Unlock)
	assert.Equal(t, 110.0, d.NodeX)
	assert.Equal(t, 400.0, d.NodeY)
	assert.Equal(t, DefaultVerticalTiles, d.VerticalTiles)
	assert.Equal(t, 3, d.Rows())
	assert.Equal(t, 4, d.Cols())
	assert.Equal(t, 1, d.Grid(LayerCoins)[0][2])
	assert.Nil(t, d.Grid(LayerBoss))
}

func TestLoader_TMX(t *testing.T) {
	l, err := NewLoader(os.DirFS("testdata"), "levels.yaml")
	require.NoError(t, err)

	d, err := l.Load(1)
	require.NoError(t, err)
	assert.Equal(t, 3, d.VerticalTiles)
	assert.Equal(t, []int{0, 1, 1, 2}, d.Grid(LayerTerrain)[2])
	assert.Equal(t, []int{PlayerStart, Empty, Empty, PlayerGoal}, d.Grid(LayerPlayer)[1])
	assert.Equal(t, 0, d.Grid(LayerEnemies)[1][2])
}

func TestLoader_UnknownLevel(t *testing.T) {
	l, err := NewLoader(os.DirFS("testdata"), "levels.yaml")
	require.NoError(t, err)

	_, err = l.Load(7)
	assert.ErrorIs(t, err, ErrUnknownLevel)
	assert.NoError(t, l.Check())
}

func TestLoader_UnknownLayerFile(t *testing.T) {
	fsys := fstest.MapFS{
		"levels.yaml":       {Data: []byte("levels:\n  - id: 0\n    dir: bad\n")},
		"bad/terrain.csv":   {Data: []byte("0,0\n")},
		"bad/lava.csv":      {Data: []byte("0,0\n")},
		"bad/notes.txt":     {Data: []byte("ignored")},
		"bad/sub/extra.csv": {Data: []byte("0\n")},
	}
	l, err := NewLoader(fsys, "levels.yaml")
	require.NoError(t, err)

	_, err = l.Load(0)
	assert.ErrorIs(t, err, ErrUnknownLayer)
}

func TestParseTable_Rejects(t *testing.T) {
	_, err := ParseTable([]byte("levels: []\n"))
	assert.Error(t, err)

	_, err = ParseTable([]byte("levels:\n  - id: 1\n    dir: a\n"))
	assert.Error(t, err, "ids must start at zero")

	_, err = ParseTable([]byte("levels:\n  - id: 0\n"))
	assert.Error(t, err, "needs a source")
}

func TestValidate(t *testing.T) {
	base := func() *Descriptor {
		return &Descriptor{Layers: map[Layer]Grid{
			LayerTerrain: {{-1, -1}, {0, 0}},
			LayerPlayer:  {{0, 1}, {-1, -1}},
		}}
	}

	assert.NoError(t, base().Validate())

	d := base()
	d.Layers[LayerCoins] = Grid{{-1, -1, -1}, {-1, -1, -1}}
	assert.ErrorIs(t, d.Validate(), ErrDimensions)

	d = base()
	d.Layers[LayerPlayer] = Grid{{-1, 1}, {-1, -1}}
	assert.ErrorIs(t, d.Validate(), ErrNoPlayer)

	d = base()
	d.Layers[LayerPlayer] = Grid{{0, 0}, {-1, -1}}
	assert.ErrorIs(t, d.Validate(), ErrNoPlayer)

	d = base()
	d.Layers[LayerBoss] = Grid{{0, 0}, {-1, -1}}
	assert.ErrorIs(t, d.Validate(), ErrTooManyBoss)

	d = base()
	d.Layers["lava"] = Grid{{0, 0}, {0, 0}}
	assert.ErrorIs(t, d.Validate(), ErrUnknownLayer)

	d = base()
	delete(d.Layers, LayerTerrain)
	assert.ErrorIs(t, d.Validate(), ErrDimensions)
}
