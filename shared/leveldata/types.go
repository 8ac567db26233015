// Package leveldata parses level descriptors: one grid of cell codes per
// layer plus the scalar fields the level select map needs.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import "errors"

// Empty marks a cell with nothing in it.
const Empty = -1

// Layer names one grid of a level descriptor.
type Layer string

const (
	LayerTerrain     Layer = "terrain"
	LayerCoins       Layer = "coins"
	LayerFgPalms     Layer = "fg_palms"
	LayerBgPalms     Layer = "bg_palms"
	LayerCrates      Layer = "crates"
	LayerEnemies     Layer = "enemies"
	LayerConstraints Layer = "constraints"
	LayerPlayer      Layer = "player"
	LayerGrass       Layer = "grass"
	LayerPlatforms   Layer = "moving_platform"
	LayerHealth      Layer = "health"
	LayerSpikes      Layer = "spikes"
	LayerShell       Layer = "shell"
	LayerBoss        Layer = "boss"
	LayerTreasure    Layer = "treasure"
)

// Layers lists every known layer.
var Layers = []Layer{
	LayerTerrain, LayerCoins, LayerFgPalms, LayerBgPalms, LayerCrates,
	LayerEnemies, LayerConstraints, LayerPlayer, LayerGrass, LayerPlatforms,
	LayerHealth, LayerSpikes, LayerShell, LayerBoss, LayerTreasure,
}

// Player layer codes.
const (
	PlayerStart = 0
	PlayerGoal  = 1
)

var (
	ErrNoPlayer     = errors.New("leveldata: level needs exactly one player start")
	ErrDimensions   = errors.New("leveldata: layer dimensions differ from terrain")
	ErrUnknownLayer = errors.New("leveldata: unknown layer")
	ErrTooManyBoss  = errors.New("leveldata: level has more than one boss")
	ErrUnknownLevel = errors.New("leveldata: unknown level")
)

// KnownLayer reports whether name is one of Layers.
func KnownLayer(name string) bool {
	for _, l := range Layers {
		if string(l) == name {
			return true
		}
	}
	return false
}

// Grid is a row-major matrix of cell codes.
type Grid [][]int

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Each calls fn for every non-empty cell in row-major order.
func (g Grid) Each(fn func(row, col, code int)) {
	for r, line := range g {
		for c, code := range line {
			if code == Empty {
				continue
			}
			fn(r, c, code)
		}
	}
}

// Count returns how many cells hold code.
func (g Grid) Count(code int) int {
	n := 0
	g.Each(func(_, _, v int) {
		if v == code {
			n++
		}
	})
	return n
}

// Descriptor is everything needed to build one level.
type Descriptor struct {
	ID            int
	Name          string
	Unlock        int
	NodeX, NodeY  float64
	VerticalTiles int
	Layers        map[Layer]Grid
}

// Grid returns the layer's grid, or nil when the level does not use it.
func (d *Descriptor) Grid(l Layer) Grid {
	return d.Layers[l]
}

// Rows is the terrain height in tiles.
func (d *Descriptor) Rows() int {
	return d.Grid(LayerTerrain).Rows()
}

// Cols is the terrain width in tiles.
func (d *Descriptor) Cols() int {
	return d.Grid(LayerTerrain).Cols()
}
