package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state of a level
type PauseData struct {
	IsPaused bool
	// ExitRequested asks the owning scene to leave the level for the map.
	ExitRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()
