package components

import (
	"github.com/automoto/treasure-hunters/assets/animations"
	"github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PlayerData is the player's movement state. The entity's Object is the
// collision rect; Visual is the sprite rect, bottom-aligned with it.
type PlayerData struct {
	Direction   Vector // X is -1, 0 or 1; Y is the vertical velocity
	Speed       float64
	Status      config.StateID
	FacingRight bool

	OnGround    bool
	OnCeiling   bool
	OnLeft      bool
	OnRight     bool
	WasOnGround bool

	// Platform is the moving platform carrying the player, or donburi.Null.
	// The level owns the platform; this is only a lookup handle.
	Platform donburi.Entity

	Visual  gamemath.Rect
	RunDust *animations.Animation
}

var Player = donburi.NewComponentType[PlayerData]()
