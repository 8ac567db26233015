package scenes

import (
	"math/rand"

	"github.com/automoto/treasure-hunters/assets"
	"github.com/automoto/treasure-hunters/components"
	"github.com/automoto/treasure-hunters/shared/clock"
	"github.com/automoto/treasure-hunters/shared/leveldata"
	"github.com/automoto/treasure-hunters/systems"
	"github.com/charmbracelet/log"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Context carries the long-lived services every scene shares.
type Context struct {
	Log    *log.Logger
	Assets *assets.Library
	Levels *leveldata.Loader
	Store  *systems.Store
	Clock  clock.Clock
	// Rand seeds each level's randomness; nil derives it from the level id.
	Rand *rand.Rand
	// Input overrides the keyboard and gamepads when set.
	Input components.InputSource
	// Watcher reports level file edits; nil disables hot reload.
	Watcher *Watcher
}

func (c *Context) levelRand() *rand.Rand {
	if c.Rand == nil {
		return nil
	}
	return rand.New(rand.NewSource(c.Rand.Int63()))
}
