package components

import (
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/yohamta/donburi"
)

// InputSource reports whether an action's binding is held right now.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Source   InputSource
}

func (d *InputData) Action(action cfg.ActionID) ActionState {
	cur, prev := d.Current[action], d.Previous[action]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
