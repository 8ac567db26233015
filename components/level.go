package components

import (
	"math/rand"

	"github.com/automoto/treasure-hunters/assets"
	"github.com/automoto/treasure-hunters/shared/clock"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// Callbacks is the game-state collaborator a level reports to.
type Callbacks interface {
	ChangeHealth(amount int)
	ChangeCoins(amount int)
	LevelComplete(level, unlock int)
}

// Stats is implemented by callbacks that can also report the values the
// HUD shows.
type Stats interface {
	Health() (current, max int)
	Coins() int
}

type LevelData struct {
	ID     int
	Name   string
	Unlock int
	Width  float64
	Height float64

	Callbacks Callbacks
	Clock     clock.Clock
	Rand      *rand.Rand
	Log       *log.Logger
	Assets    *assets.Library

	// Spawned counts created objects; factories derive ObjectData.Order
	// from it.
	Spawned int

	// Exited is set by the first fall or win check that fires; later
	// checks in the same frame are ignored.
	Exited bool
}

// Exit reports the level result once.
func (l *LevelData) Exit(unlock int) {
	if l.Exited {
		return
	}
	l.Exited = true
	l.Callbacks.LevelComplete(l.ID, unlock)
}

var Level = donburi.NewComponentType[LevelData]()
