package systems

import (
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DeviceSource reads actions from the keyboard and any connected
// standard-layout gamepad.
type DeviceSource struct {
	gamepads []ebiten.GamepadID
	polled   bool
}

// Poll refreshes the connected gamepad list. UpdateInput calls it once per
// frame before reading actions.
func (d *DeviceSource) Poll() {
	d.gamepads = ebiten.AppendGamepadIDs(d.gamepads[:0])
	d.polled = true
}

func (d *DeviceSource) Pressed(action cfg.ActionID) bool {
	binding, ok := cfg.Input.Bindings[action]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	if !d.polled {
		d.Poll()
	}
	for _, gpID := range d.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
		if analogPressed(gpID, action) {
			return true
		}
	}
	return false
}

// analogPressed merges the left stick into the horizontal actions.
func analogPressed(gpID ebiten.GamepadID, action cfg.ActionID) bool {
	deadzone := cfg.Input.AnalogDeadzone
	h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	switch action {
	case cfg.ActionMoveLeft, cfg.ActionMenuLeft:
		return h < -deadzone
	case cfg.ActionMoveRight, cfg.ActionMenuRight:
		return h > deadzone
	}
	return false
}

// UpdateInput polls the input source and updates the InputData.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if d, ok := input.Source.(*DeviceSource); ok {
		d.Poll()
	}
	for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
		input.Current[id] = input.Source.Pressed(id)
	}
}

// getOrCreateInput returns the singleton Input component, creating one
// bound to the devices if needed.
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	input := components.Input.Get(entry)
	if input.Source == nil {
		input.Source = &DeviceSource{}
	}
	return input
}

// GetAction returns the full ActionState for an action ID, or the zero
// state when the world has no input yet.
func GetAction(ecs *ecs.ECS, id cfg.ActionID) components.ActionState {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return components.ActionState{}
	}
	return components.Input.Get(entry).Action(id)
}

// SetInputSource replaces where the world reads its actions from.
func SetInputSource(ecs *ecs.ECS, src components.InputSource) {
	getOrCreateInput(ecs).Source = src
}
