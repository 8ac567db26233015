package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; draw order comes from renderer registration order.
const Default ecs.LayerID = iota

// Config holds general game configuration
type Config struct {
	Width         int
	Height        int
	TileSize      int
	VerticalTiles int
	TPS           int
	AssetRoot     string // directory holding graphics/ and audio/; empty means placeholders
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64
	Gravity   float64
	JumpSpeed float64

	// Dimensions
	FrameWidth     int
	FrameHeight    int
	CollisionWidth int

	// Combat
	InvincibilityMs int64
	HealAmount      int

	// Animation
	AnimationSpeed     float64
	DustAnimationSpeed float64
}

// EnemyConfig contains walker configuration
type EnemyConfig struct {
	MinSpeed int
	MaxSpeed int
}

// ShellConfig contains turret configuration
type ShellConfig struct {
	ReloadMs     int64
	SightTiles   int
	PearlOffsetY int // pearl spawns this far below the shell top
	SightOffsetY int // player collision y must equal shell y minus this
}

// BossConfig contains boss configuration
type BossConfig struct {
	SizeTiles       int
	LiftY           int
	Speed           float64
	Health          int
	DamagePerHit    int
	InvincibilityMs int64
	SightTiles      int
	BandTop         int
	BandBottom      int
	Reward          int
}

// PearlConfig contains projectile configuration
type PearlConfig struct {
	Speed float64
}

// PlatformConfig contains moving platform configuration
type PlatformConfig struct {
	Speed       float64
	OffsetTiles int // horizontal platforms shift right, vertical ones up
}

// DamageConfig contains the health deltas and knockback of each interaction rule
type DamageConfig struct {
	Pearl  int
	Spike  int
	Enemy  int
	Boss   int
	Bounce float64 // vertical velocity after a stomp, spike or boss hit
}

// AnimationConfig contains frame cursor rates
type AnimationConfig struct {
	TileSpeed     float64
	ParticleSpeed float64
}

// CameraConfig contains dead-zone scroll configuration
type CameraConfig struct {
	ZoneDivisor float64 // dead zone edge is Width / ZoneDivisor from each side
	ScrollSpeed float64
}

// DecorationConfig contains sky, water and cloud layout values
type DecorationConfig struct {
	Horizon          int
	OverworldHorizon int
	WaterOffset      int
	WaterTileWidth   int
	CloudHorizon     int
	CloudCount       int
	OverworldPalms   int
	OverworldClouds  int
	PalmOffsetSmall  int
	PalmOffsetLarge  int
}

// SessionConfig contains game-state configuration
type SessionConfig struct {
	MaxHealth     int
	StartMaxLevel int
	FinalUnlock   int // unlocking this level id ends the game
}

// OverworldConfig contains level select map configuration
type OverworldConfig struct {
	IconSpeed    float64
	InputDelayMs int64
	PathColor    color.RGBA
	PathWidth    float32
}

// UIConfig contains HUD layout values
type UIConfig struct {
	HealthBarX    float64
	HealthBarY    float64
	HealthFillX   float32
	HealthFillY   float32
	HealthFillW   float32
	HealthFillH   float32
	HealthColor   color.RGBA
	CoinX         float64
	CoinY         float64
	CoinTextColor color.RGBA
	FontSize      float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled    bool // draw collision rects and reload level files on change
	StartLevel int  // skip the overworld and start this level when >= 0
	Muted      bool
}

var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Shell ShellConfig
var Boss BossConfig
var Pearl PearlConfig
var Platform PlatformConfig
var Damage DamageConfig
var Animation AnimationConfig
var Camera CameraConfig
var Decoration DecorationConfig
var Session SessionConfig
var Overworld OverworldConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyBlue      = color.RGBA{R: 221, G: 198, B: 161, A: 255}
)

func init() {
	C = &Config{
		Width:         1200,
		TileSize:      64,
		VerticalTiles: 11,
		TPS:           60,
	}
	C.Height = C.TileSize * C.VerticalTiles

	Player = PlayerConfig{
		Speed:     8,
		Gravity:   0.8,
		JumpSpeed: -16,

		FrameWidth:     64,
		FrameHeight:    58,
		CollisionWidth: 50,

		InvincibilityMs: 500,
		HealAmount:      10,

		AnimationSpeed:     0.15,
		DustAnimationSpeed: 0.15,
	}

	Enemy = EnemyConfig{
		MinSpeed: 3,
		MaxSpeed: 5,
	}

	Shell = ShellConfig{
		ReloadMs:     1500,
		SightTiles:   7,
		PearlOffsetY: 10,
		SightOffsetY: 10,
	}

	Boss = BossConfig{
		SizeTiles:       3,
		LiftY:           120,
		Speed:           7,
		Health:          30,
		DamagePerHit:    10,
		InvincibilityMs: 2000,
		SightTiles:      15,
		BandTop:         64,
		BandBottom:      192,
		Reward:          500,
	}

	Pearl = PearlConfig{
		Speed: 7,
	}

	Platform = PlatformConfig{
		Speed:       2,
		OffsetTiles: 2,
	}

	Damage = DamageConfig{
		Pearl:  -10,
		Spike:  -10,
		Enemy:  -10,
		Boss:   -34,
		Bounce: -15,
	}

	Animation = AnimationConfig{
		TileSpeed:     0.15,
		ParticleSpeed: 0.5,
	}

	Camera = CameraConfig{
		ZoneDivisor: 2.7,
		ScrollSpeed: 8,
	}

	Decoration = DecorationConfig{
		Horizon:          7,
		OverworldHorizon: 8,
		WaterOffset:      40,
		WaterTileWidth:   192,
		CloudHorizon:     400,
		CloudCount:       30,
		OverworldPalms:   10,
		OverworldClouds:  10,
		PalmOffsetSmall:  38,
		PalmOffsetLarge:  64,
	}

	Session = SessionConfig{
		MaxHealth:     100,
		StartMaxLevel: 0,
		FinalUnlock:   6,
	}

	Overworld = OverworldConfig{
		IconSpeed:    8,
		InputDelayMs: 300,
		PathColor:    color.RGBA{R: 0xa0, G: 0x4f, B: 0x45, A: 0xff},
		PathWidth:    6,
	}

	UI = UIConfig{
		HealthBarX:    20,
		HealthBarY:    10,
		HealthFillX:   54,
		HealthFillY:   39,
		HealthFillW:   152,
		HealthFillH:   4,
		HealthColor:   color.RGBA{R: 0xdc, G: 0x49, B: 0x49, A: 0xff},
		CoinX:         50,
		CoinY:         61,
		CoinTextColor: Black,
		FontSize:      30,
	}

	Debug = DebugConfig{
		StartLevel: -1,
	}
}

// ShellSightRange returns the sight band width in pixels
func ShellSightRange() float64 {
	return float64(Shell.SightTiles * C.TileSize)
}

// BossSightRange returns the half width of the boss sight window in pixels
func BossSightRange() float64 {
	return float64(Boss.SightTiles * C.TileSize)
}
