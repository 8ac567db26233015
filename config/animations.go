package config

import (
	"image/color"
	"strconv"
)

// SpriteID names a frame sequence in the asset library
type SpriteID string

const (
	SpriteTerrain SpriteID = "terrain"
	SpriteGrass   SpriteID = "grass"
	SpriteCrate   SpriteID = "crate"
	SpriteBottle  SpriteID = "bottle"
	SpriteSpikes  SpriteID = "spikes"
	SpriteChest   SpriteID = "chest"
	SpriteHat     SpriteID = "hat"

	SpriteCoinGold   SpriteID = "coin_gold"
	SpriteCoinSilver SpriteID = "coin_silver"
	SpritePalmSmall  SpriteID = "palm_small"
	SpritePalmLarge  SpriteID = "palm_large"
	SpritePalmBg     SpriteID = "palm_bg"

	SpritePlatformHorizontal SpriteID = "platform_horizontal"
	SpriteIslandHorizontal   SpriteID = "island_horizontal"
	SpriteIslandVertical     SpriteID = "island_vertical"
	SpritePlatformVertical   SpriteID = "platform_vertical"

	SpriteEnemyRun         SpriteID = "enemy_run"
	SpriteShellLeftIdle    SpriteID = "shell_left_idle"
	SpriteShellLeftAttack  SpriteID = "shell_left_attack"
	SpriteShellRightIdle   SpriteID = "shell_right_idle"
	SpriteShellRightAttack SpriteID = "shell_right_attack"
	SpritePearl            SpriteID = "pearl"
	SpriteBossIdle         SpriteID = "boss_idle"
	SpriteBossRunLeft      SpriteID = "boss_run_left"
	SpriteBossRunRight     SpriteID = "boss_run_right"

	SpritePlayerIdle SpriteID = "player_idle"
	SpritePlayerRun  SpriteID = "player_run"
	SpritePlayerJump SpriteID = "player_jump"
	SpritePlayerFall SpriteID = "player_fall"

	SpriteDustRun   SpriteID = "dust_run"
	SpriteDustJump  SpriteID = "dust_jump"
	SpriteDustLand  SpriteID = "dust_land"
	SpriteExplosion SpriteID = "explosion"

	SpriteSkyTop    SpriteID = "sky_top"
	SpriteSkyMiddle SpriteID = "sky_middle"
	SpriteSkyBottom SpriteID = "sky_bottom"
	SpriteClouds    SpriteID = "clouds"
	SpriteWater     SpriteID = "water"

	SpriteHealthBar SpriteID = "ui_health_bar"
	SpriteCoinIcon  SpriteID = "ui_coin"

	SpriteOverworldHat    SpriteID = "overworld_hat"
	SpriteOverworldPalms  SpriteID = "overworld_palms"
	SpriteOverworldClouds SpriteID = "overworld_clouds"
)

// SpriteDef describes where a frame sequence lives and the size used when
// the file is missing.
type SpriteDef struct {
	Path   string // folder of numbered PNGs, or a single PNG when Cut or Single
	Width  int
	Height int
	Frames int
	Cut    bool // Path is one image sliced into TileSize squares
	Single bool // Path is one image
	Color  color.RGBA
}

var (
	sand   = color.RGBA{R: 0xc8, G: 0x9b, B: 0x5a, A: 0xff}
	wood   = color.RGBA{R: 0x8a, G: 0x5a, B: 0x2b, A: 0xff}
	leaf   = color.RGBA{R: 0x3c, G: 0x9a, B: 0x3c, A: 0xff}
	gold   = color.RGBA{R: 0xf5, G: 0xc5, B: 0x18, A: 0xff}
	silver = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc8, A: 0xff}
	foe    = color.RGBA{R: 0xb0, G: 0x30, B: 0x40, A: 0xff}
	shell  = color.RGBA{R: 0xe0, G: 0x80, B: 0xa0, A: 0xff}
	hero   = color.RGBA{R: 0x30, G: 0x60, B: 0xd0, A: 0xff}
	dust   = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xc0}
	sky    = color.RGBA{R: 0xdd, G: 0xc6, B: 0xa1, A: 0xff}
	water  = color.RGBA{R: 0x3a, G: 0x8b, B: 0xc8, A: 0xe0}
)

// Sprites maps every sprite to its source and fallback geometry
var Sprites = map[SpriteID]SpriteDef{
	SpriteTerrain: {Path: "graphics/terrain/terrain_tiles.png", Width: 64, Height: 64, Frames: 28, Cut: true, Color: sand},
	SpriteGrass:   {Path: "graphics/decoration/grass/grass.png", Width: 64, Height: 64, Frames: 8, Cut: true, Color: leaf},
	SpriteCrate:   {Path: "graphics/terrain/crate.png", Width: 64, Height: 50, Frames: 1, Single: true, Color: wood},
	SpriteBottle:  {Path: "graphics/terrain/rum_bottle.png", Width: 24, Height: 38, Frames: 1, Single: true, Color: wood},
	SpriteSpikes:  {Path: "graphics/enemy/spikes/spikes.png", Width: 64, Height: 64, Frames: 1, Single: true, Color: silver},
	SpriteChest:   {Path: "graphics/character/chest.png", Width: 64, Height: 64, Frames: 1, Single: true, Color: gold},
	SpriteHat:     {Path: "graphics/character/hat.png", Width: 64, Height: 64, Frames: 1, Single: true, Color: foe},

	SpriteCoinGold:   {Path: "graphics/coins/gold", Width: 16, Height: 16, Frames: 4, Color: gold},
	SpriteCoinSilver: {Path: "graphics/coins/silver", Width: 16, Height: 16, Frames: 4, Color: silver},
	SpritePalmSmall:  {Path: "graphics/terrain/palm_small", Width: 64, Height: 96, Frames: 4, Color: leaf},
	SpritePalmLarge:  {Path: "graphics/terrain/palm_large", Width: 64, Height: 128, Frames: 4, Color: leaf},
	SpritePalmBg:     {Path: "graphics/terrain/palm_bg", Width: 64, Height: 96, Frames: 4, Color: leaf},

	SpritePlatformHorizontal: {Path: "graphics/terrain/moving_platforms/horizontal_platform.png", Width: 128, Height: 32, Frames: 1, Single: true, Color: wood},
	SpriteIslandHorizontal:   {Path: "graphics/terrain/moving_platforms/small_island_horiz.png", Width: 128, Height: 64, Frames: 1, Single: true, Color: sand},
	SpriteIslandVertical:     {Path: "graphics/terrain/moving_platforms/small_island_vert.png", Width: 128, Height: 64, Frames: 1, Single: true, Color: sand},
	SpritePlatformVertical:   {Path: "graphics/terrain/moving_platforms/vertical_platform.png", Width: 128, Height: 32, Frames: 1, Single: true, Color: wood},

	SpriteEnemyRun:         {Path: "graphics/enemy/run", Width: 64, Height: 44, Frames: 6, Color: foe},
	SpriteShellLeftIdle:    {Path: "graphics/enemy/shell_left/idle", Width: 64, Height: 48, Frames: 1, Color: shell},
	SpriteShellLeftAttack:  {Path: "graphics/enemy/shell_left/attack", Width: 64, Height: 48, Frames: 6, Color: shell},
	SpriteShellRightIdle:   {Path: "graphics/enemy/shell_right/idle", Width: 64, Height: 48, Frames: 1, Color: shell},
	SpriteShellRightAttack: {Path: "graphics/enemy/shell_right/attack", Width: 64, Height: 48, Frames: 6, Color: shell},
	SpritePearl:            {Path: "graphics/enemy/pearl/pearl.png", Width: 16, Height: 16, Frames: 1, Single: true, Color: silver},
	SpriteBossIdle:         {Path: "graphics/enemy/boss idle", Width: 192, Height: 184, Frames: 8, Color: foe},
	SpriteBossRunLeft:      {Path: "graphics/enemy/boss run left", Width: 192, Height: 184, Frames: 6, Color: foe},
	SpriteBossRunRight:     {Path: "graphics/enemy/boss run right", Width: 192, Height: 184, Frames: 6, Color: foe},

	SpritePlayerIdle: {Path: "graphics/character/idle", Width: 64, Height: 58, Frames: 5, Color: hero},
	SpritePlayerRun:  {Path: "graphics/character/run", Width: 64, Height: 58, Frames: 6, Color: hero},
	SpritePlayerJump: {Path: "graphics/character/jump", Width: 64, Height: 58, Frames: 3, Color: hero},
	SpritePlayerFall: {Path: "graphics/character/fall", Width: 64, Height: 58, Frames: 1, Color: hero},

	SpriteDustRun:   {Path: "graphics/character/dust_particles/run", Width: 12, Height: 10, Frames: 5, Color: dust},
	SpriteDustJump:  {Path: "graphics/character/dust_particles/jump", Width: 40, Height: 28, Frames: 6, Color: dust},
	SpriteDustLand:  {Path: "graphics/character/dust_particles/land", Width: 48, Height: 20, Frames: 6, Color: dust},
	SpriteExplosion: {Path: "graphics/enemy/explosion", Width: 96, Height: 96, Frames: 7, Color: gold},

	SpriteSkyTop:    {Path: "graphics/decoration/sky/sky_top.png", Width: 64, Height: 64, Frames: 1, Single: true, Color: sky},
	SpriteSkyMiddle: {Path: "graphics/decoration/sky/sky_middle.png", Width: 64, Height: 64, Frames: 1, Single: true, Color: sky},
	SpriteSkyBottom: {Path: "graphics/decoration/sky/sky_bottom.png", Width: 64, Height: 64, Frames: 1, Single: true, Color: water},
	SpriteClouds:    {Path: "graphics/decoration/clouds", Width: 160, Height: 48, Frames: 3, Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xd0}},
	SpriteWater:     {Path: "graphics/decoration/water", Width: 192, Height: 64, Frames: 4, Color: water},

	SpriteHealthBar: {Path: "graphics/ui/health_bar.png", Width: 192, Height: 64, Frames: 1, Single: true, Color: color.RGBA{R: 0x40, G: 0x30, B: 0x30, A: 0xff}},
	SpriteCoinIcon:  {Path: "graphics/ui/coin.png", Width: 26, Height: 26, Frames: 1, Single: true, Color: gold},

	SpriteOverworldHat:    {Path: "graphics/overworld/hat.png", Width: 40, Height: 32, Frames: 1, Single: true, Color: foe},
	SpriteOverworldPalms:  {Path: "graphics/overworld/palms", Width: 48, Height: 80, Frames: 3, Color: leaf},
	SpriteOverworldClouds: {Path: "graphics/overworld/clouds", Width: 120, Height: 40, Frames: 3, Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xd0}},
}

// PlayerAnimations maps each player status to its frame sequence
var PlayerAnimations = map[StateID]SpriteID{
	StateIdle: SpritePlayerIdle,
	StateRun:  SpritePlayerRun,
	StateJump: SpritePlayerJump,
	StateFall: SpritePlayerFall,
}

// NodeSprite returns the overworld node animation for a level
func NodeSprite(level int) SpriteDef {
	return SpriteDef{
		Path:   "graphics/overworld/" + strconv.Itoa(level),
		Width:  100,
		Height: 100,
		Frames: 4,
		Color:  sand,
	}
}
