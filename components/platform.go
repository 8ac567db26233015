package components

import (
	"github.com/automoto/treasure-hunters/config"
	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Axis  config.Axis
	Speed float64
}

func (p *PlatformData) Reverse() {
	p.Speed = -p.Speed
}

// Delta is the per-frame displacement along each axis.
func (p *PlatformData) Delta() (dx, dy float64) {
	if p.Axis == config.AxisHorizontal {
		return p.Speed, 0
	}
	return 0, p.Speed
}

var Platform = donburi.NewComponentType[PlatformData]()
