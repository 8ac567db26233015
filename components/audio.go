package components

import (
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/yohamta/donburi"
)

// AudioData stores the sounds requested by this world's systems and the
// volume state (singleton component). Playback happens elsewhere.
type AudioData struct {
	Music      string // music path the world wants playing
	PendingSFX []cfg.SoundID
}

// Play queues a sound effect for this frame.
func (a *AudioData) Play(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}

var Audio = donburi.NewComponentType[AudioData]()
