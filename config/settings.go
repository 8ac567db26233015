package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileConfig mirrors the keys accepted in the optional config file and
// TREASURE_* environment variables.
type FileConfig struct {
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Scale      float64 `mapstructure:"scale"`
	AssetRoot  string  `mapstructure:"assetRoot"`
	LevelTable string  `mapstructure:"levelTable"`
	LogLevel   string  `mapstructure:"logLevel"`
	Debug      bool    `mapstructure:"debug"`
	StartLevel int     `mapstructure:"startLevel"`
	Muted      bool    `mapstructure:"muted"`
	MusicVol   float64 `mapstructure:"musicVolume"`
	SFXVol     float64 `mapstructure:"sfxVolume"`
}

// Load reads the config file at path (when non-empty) plus environment
// overrides, applies them to the package globals and returns the result.
func Load(path string) (*FileConfig, error) {
	v := viper.New()

	v.SetDefault("width", C.Width)
	v.SetDefault("height", C.Height)
	v.SetDefault("scale", 1.0)
	v.SetDefault("assetRoot", C.AssetRoot)
	v.SetDefault("levelTable", "")
	v.SetDefault("logLevel", "info")
	v.SetDefault("debug", Debug.Enabled)
	v.SetDefault("startLevel", Debug.StartLevel)
	v.SetDefault("muted", Debug.Muted)
	v.SetDefault("musicVolume", Audio.DefaultMusicVol)
	v.SetDefault("sfxVolume", Audio.DefaultSFXVol)

	v.SetEnvPrefix("treasure")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := fc.Validate(); err != nil {
		return nil, err
	}
	fc.Apply()
	return &fc, nil
}

// Validate rejects values the runtime cannot work with.
func (fc *FileConfig) Validate() error {
	if fc.Width <= 0 || fc.Height <= 0 {
		return errors.New("config: width and height must be positive")
	}
	if fc.Scale <= 0 {
		return errors.New("config: scale must be positive")
	}
	if fc.MusicVol < 0 || fc.MusicVol > 1 || fc.SFXVol < 0 || fc.SFXVol > 1 {
		return errors.New("config: volumes must be within 0..1")
	}
	return nil
}

// Apply copies the loaded values into the package globals.
func (fc *FileConfig) Apply() {
	C.Width = fc.Width
	C.Height = fc.Height
	C.AssetRoot = fc.AssetRoot
	Debug.Enabled = fc.Debug
	Debug.StartLevel = fc.StartLevel
	Debug.Muted = fc.Muted
	Audio.DefaultMusicVol = fc.MusicVol
	Audio.DefaultSFXVol = fc.SFXVol
}
