package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/treasure-hunters/systems"
	"github.com/automoto/treasure-hunters/systems/factory"
	"github.com/automoto/treasure-hunters/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene runs one playable level.
type LevelScene struct {
	ctx     *Context
	session *Session
	id      int

	ecs     *ecs.ECS
	pauseUI *ui.PauseUI
	muted   bool
	once    sync.Once
}

func NewLevelScene(ctx *Context, session *Session, id int) *LevelScene {
	return &LevelScene{ctx: ctx, session: session, id: id}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	if ls.ecs == nil {
		return
	}

	if ls.ctx.Watcher.Changed() {
		ls.ctx.Log.Info("reloading level", "level", ls.id)
		ls.build()
		if ls.ecs == nil {
			return
		}
	}

	ls.ecs.Update()

	if muted := systems.Muted(); muted != ls.muted {
		ls.muted = muted
		if ls.pauseUI != nil {
			ls.pauseUI.SetMuted(muted)
		}
		ls.ctx.Store.SaveCurrent()
	}

	pause := systems.GetOrCreatePause(ls.ecs)
	if pause.IsPaused {
		ls.menu().Update()
	}
	if pause.ExitRequested {
		ls.session.CreateOverworld(ls.id)
		return
	}

	ls.session.CheckGameOver()
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)

	if ls.pauseUI != nil && systems.GetOrCreatePause(ls.ecs).IsPaused {
		ls.pauseUI.UI.Draw(screen)
	}
}

func (ls *LevelScene) configure() {
	ls.muted = systems.Muted()
	ls.build()
}

// build loads the level from the table and replaces the world. A level
// that fails to load sends the player back to the map.
func (ls *LevelScene) build() {
	d, err := ls.ctx.Levels.Load(ls.id)
	if err != nil {
		ls.fail(err)
		return
	}

	e := ecs.NewECS(donburi.NewWorld())
	systems.RegisterLevelSystems(e)
	if ls.ctx.Input != nil {
		systems.SetInputSource(e, ls.ctx.Input)
	}

	_, err = factory.CreateLevel(e, factory.LevelConfig{
		Descriptor: d,
		Callbacks:  ls.session,
		Clock:      ls.ctx.Clock,
		Rand:       ls.ctx.levelRand(),
		Log:        ls.ctx.Log,
		Assets:     ls.ctx.Assets,
	})
	if err != nil {
		ls.fail(err)
		return
	}
	ls.ecs = e
}

func (ls *LevelScene) fail(err error) {
	ls.ctx.Log.Error("could not load level", "level", ls.id, "err", err)
	ls.ecs = nil
	ls.session.CreateOverworld(ls.id)
}

// menu returns the pause menu, building it the first time the level is
// paused.
func (ls *LevelScene) menu() *ui.PauseUI {
	if ls.pauseUI != nil {
		return ls.pauseUI
	}
	menu, err := ui.NewPauseUI(
		func() { systems.SetPaused(ls.ecs, false) },
		func() { systems.ToggleMute(ls.ecs) },
		func() { systems.RequestExit(ls.ecs) },
	)
	if err != nil {
		ls.ctx.Log.Fatal("pause menu", "err", err)
	}
	menu.SetMuted(ls.muted)
	ls.pauseUI = menu
	return menu
}

// World exposes the running level; nil until the first Update.
func (ls *LevelScene) World() *ecs.ECS {
	return ls.ecs
}
