package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCoin
	SoundStomp
	SoundJump
	SoundHit
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	LevelMusic        string
	OverworldMusic    string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		LevelMusic:     "audio/level_music.wav",
		OverworldMusic: "audio/overworld_music.wav",
		SFXPaths: map[SoundID]string{
			SoundCoin:  "audio/effects/coin.wav",
			SoundStomp: "audio/effects/stomp.wav",
			SoundJump:  "audio/effects/jump.wav",
			SoundHit:   "audio/effects/hit.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCoin:  0.5,
			SoundStomp: 0.7,
			SoundJump:  0.5,
			SoundHit:   0.7,
		},
	}
}
