package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/treasure-hunters/archetypes"
	"github.com/automoto/treasure-hunters/assets"
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/clock"
	"github.com/automoto/treasure-hunters/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCell is the resolv cell size of the level space.
const spaceCell = 32

// LevelConfig is everything CreateLevel needs besides the world.
type LevelConfig struct {
	Descriptor *leveldata.Descriptor
	Callbacks  components.Callbacks
	Clock      clock.Clock
	Rand       *rand.Rand
	Log        *log.Logger
	Assets     *assets.Library
}

// CreateLevel validates the descriptor and populates the world with every
// entity it describes.
func CreateLevel(ecs *ecs.ECS, lc LevelConfig) (*donburi.Entry, error) {
	d := lc.Descriptor
	if d == nil {
		return nil, fmt.Errorf("factory: nil level descriptor")
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("level %d: %w", d.ID, err)
	}
	if lc.Clock == nil {
		lc.Clock = clock.NewReal()
	}
	if lc.Rand == nil {
		lc.Rand = rand.New(rand.NewSource(int64(d.ID)))
	}
	if lc.Log == nil {
		lc.Log = log.Default()
	}
	if lc.Assets == nil {
		lc.Assets = assets.NewHeadless()
	}

	t := cfg.C.TileSize
	width := float64(d.Cols() * t)
	height := float64(d.Rows() * t)

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		ID:        d.ID,
		Name:      d.Name,
		Unlock:    d.Unlock,
		Width:     width,
		Height:    height,
		Callbacks: lc.Callbacks,
		Clock:     lc.Clock,
		Rand:      lc.Rand,
		Log:       lc.Log.With("level", d.ID),
		Assets:    lc.Assets,
	})

	// Only collidable objects join the space, and they all sit inside the
	// level grid.
	CreateSpace(ecs, d.Cols()*t, max(d.Rows()*t, cfg.C.Height), spaceCell, spaceCell)
	CreateCamera(ecs)

	each := func(l leveldata.Layer, fn func(x, y float64, code int)) {
		d.Grid(l).Each(func(row, col, code int) {
			fn(float64(col*t), float64(row*t), code)
		})
	}

	each(leveldata.LayerPlayer, func(x, y float64, code int) {
		switch code {
		case leveldata.PlayerStart:
			CreatePlayer(ecs, x, y)
		case leveldata.PlayerGoal:
			CreateGoal(ecs, x, y)
		}
	})
	each(leveldata.LayerTerrain, func(x, y float64, code int) {
		CreateTerrain(ecs, x, y, code)
	})
	each(leveldata.LayerPlatforms, func(x, y float64, code int) {
		CreatePlatform(ecs, x, y, code)
	})
	each(leveldata.LayerGrass, func(x, y float64, code int) {
		CreateGrass(ecs, x, y, code)
	})
	each(leveldata.LayerCrates, func(x, y float64, _ int) {
		CreateCrate(ecs, x, y)
	})
	each(leveldata.LayerHealth, func(x, y float64, _ int) {
		CreateBottle(ecs, x, y)
	})
	each(leveldata.LayerCoins, func(x, y float64, code int) {
		CreateCoin(ecs, x, y, code)
	})
	each(leveldata.LayerFgPalms, func(x, y float64, code int) {
		CreatePalm(ecs, x, y, code, true)
	})
	each(leveldata.LayerBgPalms, func(x, y float64, code int) {
		CreatePalm(ecs, x, y, code, false)
	})
	each(leveldata.LayerSpikes, func(x, y float64, _ int) {
		CreateSpikes(ecs, x, y)
	})
	each(leveldata.LayerEnemies, func(x, y float64, _ int) {
		CreateEnemy(ecs, x, y)
	})
	each(leveldata.LayerShell, func(x, y float64, code int) {
		switch code {
		case 0:
			CreateShell(ecs, x, y, cfg.DirectionLeft)
		case 1:
			CreateShell(ecs, x, y, cfg.DirectionRight)
		default:
			lc.Log.Warn("skipping shell with unknown code", "level", d.ID, "x", x, "y", y, "code", code)
		}
	})
	each(leveldata.LayerBoss, func(x, y float64, _ int) {
		CreateBoss(ecs, x, y)
	})
	each(leveldata.LayerTreasure, func(x, y float64, _ int) {
		CreateTreasure(ecs, x, y)
	})
	each(leveldata.LayerConstraints, func(x, y float64, _ int) {
		CreateConstraint(ecs, x, y)
	})

	CreateSky(ecs, cfg.Decoration.Horizon)
	CreateWater(ecs, float64(cfg.C.Height-cfg.Decoration.WaterOffset), width)
	CreateClouds(ecs, width, cfg.Decoration.CloudHorizon, cfg.Decoration.CloudCount)

	lc.Log.Debug("level created", "level", d.ID, "name", d.Name, "cols", d.Cols(), "rows", d.Rows())
	return level, nil
}
