package components

import "github.com/yohamta/donburi"

// InvincibleData is a timed damage-immunity window.
type InvincibleData struct {
	Active     bool
	HurtAt     int64
	DurationMs int64
}

func (i *InvincibleData) Trigger(now int64) {
	i.Active = true
	i.HurtAt = now
}

// Tick ends the window once DurationMs has passed since the last hit.
func (i *InvincibleData) Tick(now int64) {
	if i.Active && now-i.HurtAt >= i.DurationMs {
		i.Active = false
	}
}

var Invincible = donburi.NewComponentType[InvincibleData]()
