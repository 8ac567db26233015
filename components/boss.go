package components

import (
	"github.com/automoto/treasure-hunters/config"
	"github.com/yohamta/donburi"
)

type BossData struct {
	Speed  float64
	Health int
}

func (b *BossData) Alive() bool {
	return b.Health > 0
}

// InBand reports whether a target at height y is in the boss's
// engagement band. top and bottom are the boss rect edges.
func InBand(top, bottom, y float64) bool {
	return bottom-float64(config.Boss.BandBottom) <= y && y >= top-float64(config.Boss.BandTop)
}

var Boss = donburi.NewComponentType[BossData]()
