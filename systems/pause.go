package systems

import (
	"image/color"

	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var pauseOverlay = color.RGBA{0, 0, 0, 140}

// UpdatePause toggles pause on the pause action and mute on the mute
// action. It runs after UpdateInput and before the gameplay systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)

	if GetAction(e, cfg.ActionPause).JustPressed {
		SetPaused(e, !pause.IsPaused)
	}
	if GetAction(e, cfg.ActionMute).JustPressed {
		ToggleMute(e)
	}
}

// SetPaused pauses or resumes the level and its music.
func SetPaused(e *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(e)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	if paused {
		PauseMusic()
	} else {
		ResumeMusic()
	}
	if lvl := levelOf(e); lvl != nil && lvl.Log != nil {
		lvl.Log.Debug("pause", "paused", paused)
	}
}

// ToggleMute flips the global mute flag.
func ToggleMute(e *ecs.ECS) {
	SetMuted(!Muted())
	if lvl := levelOf(e); lvl != nil && lvl.Log != nil {
		lvl.Log.Debug("mute", "muted", Muted())
	}
}

// RequestExit marks the level for the scene to return to the map.
func RequestExit(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	pause.ExitRequested = true
	SetPaused(e, false)
}

// DrawPause dims the level while paused; the menu itself is drawn by
// the scene's UI on top.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(e).IsPaused {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), pauseOverlay, false)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
