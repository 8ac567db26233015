package components

import "github.com/yohamta/donburi"

// SkyData is the backdrop: rows above Horizon use the top tile, the
// horizon row the middle tile, rows below it the bottom tile.
type SkyData struct {
	Horizon int
}

var Sky = donburi.NewComponentType[SkyData]()
