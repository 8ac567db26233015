package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

// Store reads and writes SavedSettings. A Store whose manager could not be
// opened silently does nothing, so the game runs without a writable
// data directory.
type Store struct {
	manager *gdata.Manager
	log     *log.Logger
}

// OpenStore opens the per-user data directory for appName.
func OpenStore(appName string, logger *log.Logger) *Store {
	s := &Store{log: logger}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("settings will not persist", "err", err)
		return s
	}
	s.manager = m
	return s
}

// Load returns the saved settings, or nil when nothing was saved yet.
func (s *Store) Load() (*SavedSettings, error) {
	if s == nil || s.manager == nil || !s.manager.ItemExists(settingsKey) {
		return nil, nil
	}

	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

func (s *Store) Save(settings *SavedSettings) error {
	if s == nil || s.manager == nil {
		return nil
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrent stores the live audio and window settings, logging rather
// than returning failures.
func (s *Store) SaveCurrent() {
	if s == nil {
		return
	}
	if err := s.Save(CurrentSettings()); err != nil {
		s.log.Warn("could not save settings", "err", err)
	}
}

// CurrentSettings snapshots the live audio and window settings.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		MusicVolume: GetMusicVolume(),
		SFXVolume:   GetSFXVolume(),
		Muted:       Muted(),
		Fullscreen:  ebiten.IsFullscreen(),
	}
}

// ApplySavedSettings applies loaded settings to the audio globals and the
// window. Values outside 0..1 fall back to the configured defaults.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMusicVolume(volumeOr(saved.MusicVolume, cfg.Audio.DefaultMusicVol))
	SetSFXVolume(volumeOr(saved.SFXVolume, cfg.Audio.DefaultSFXVol))
	SetMuted(saved.Muted || cfg.Debug.Muted)
	ebiten.SetFullscreen(saved.Fullscreen)
}

func volumeOr(v, fallback float64) float64 {
	if v < 0 || v > 1 {
		return fallback
	}
	return v
}
