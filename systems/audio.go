package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/treasure-hunters/assets"
	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes. Until
// InitAudio runs, queued sounds are dropped, which keeps headless worlds
// silent.
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and decodes every sound effect from
// fsys. Missing files are logged and skipped.
func InitAudio(fsys fs.FS, logger *log.Logger) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, fsys)
		globalMusicVolume = cfg.Audio.DefaultMusicVol
		globalSFXVolume = cfg.Audio.DefaultSFXVol
		globalMuted = cfg.Debug.Muted

		for id, path := range cfg.Sound.SFXPaths {
			if err := globalAudioLoader.PreloadSFX(path); err != nil {
				logger.Warn("sound effect unavailable", "sound", id, "path", path, "err", err)
			}
		}
	})
}

func audioReady() bool {
	return globalAudioLoader != nil
}

// UpdateAudio starts requested music and plays the sounds queued this frame.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	if audioData.Music != "" && audioData.Music != globalMusicKey {
		PlayMusic(audioData.Music)
	}
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if !audioReady() || globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts looping the track at musicPath, replacing whatever is
// playing. Playing the current track again is a no-op.
func PlayMusic(musicPath string) {
	if !audioReady() || globalMusicKey == musicPath {
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		return
	}

	player.SetVolume(musicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
}

func PauseMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

func ResumeMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

func musicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(musicVolume())
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// SetMuted silences music and effects without touching their volumes.
func SetMuted(muted bool) {
	globalMuted = muted
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(musicVolume())
	}
}

func Muted() bool {
	return globalMuted
}

func GetMusicVolume() float64 {
	return globalMusicVolume
}

func GetSFXVolume() float64 {
	return globalSFXVolume
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	GetOrCreateAudio(e).Play(sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
