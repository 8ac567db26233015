package scenes

import (
	"io"
	"math/rand"
	"testing"

	"github.com/automoto/treasure-hunters/assets"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/clock"
	"github.com/automoto/treasure-hunters/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

type changer struct {
	scenes []interface{}
}

func (c *changer) ChangeScene(scene interface{}) {
	c.scenes = append(c.scenes, scene)
}

func (c *changer) last() interface{} {
	if len(c.scenes) == 0 {
		return nil
	}
	return c.scenes[len(c.scenes)-1]
}

type script map[cfg.ActionID]bool

func (s script) Pressed(action cfg.ActionID) bool { return s[action] }

func (s script) set(actions ...cfg.ActionID) {
	for k := range s {
		delete(s, k)
	}
	for _, a := range actions {
		s[a] = true
	}
}

type fixture struct {
	ctx     *Context
	clock   *clock.Manual
	input   script
	changer *changer
	session *Session
}

// newFixture builds a headless context over the built-in levels.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	levels, err := leveldata.NewLoader(assets.LevelFS, assets.LevelTable)
	require.NoError(t, err)

	f := &fixture{
		clock:   clock.NewManual(0),
		input:   script{},
		changer: &changer{},
	}
	f.ctx = &Context{
		Log:    log.New(io.Discard),
		Assets: assets.NewHeadless(),
		Levels: levels,
		Clock:  f.clock,
		Rand:   rand.New(rand.NewSource(7)),
		Input:  f.input,
	}
	f.session = NewSession(f.ctx, f.changer)
	return f
}
