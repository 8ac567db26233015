package components

import (
	"github.com/automoto/treasure-hunters/config"
	"github.com/yohamta/donburi"
)

type ShellData struct {
	Direction config.Direction
	Attack    bool
	ShotAt    int64
	// Pearl is the last pearl fired. The level owns pearls, so the handle
	// goes stale once the pearl is removed.
	Pearl donburi.Entity
}

var Shell = donburi.NewComponentType[ShellData]()

type PearlData struct {
	Direction config.Direction
	Speed     float64
	Hit       bool
}

var Pearl = donburi.NewComponentType[PearlData]()
