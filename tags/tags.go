package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Goal       = donburi.NewTag().SetName("Goal")
	Terrain    = donburi.NewTag().SetName("Terrain")
	Grass      = donburi.NewTag().SetName("Grass")
	Crate      = donburi.NewTag().SetName("Crate")
	Bottle     = donburi.NewTag().SetName("Bottle")
	Spikes     = donburi.NewTag().SetName("Spikes")
	Treasure   = donburi.NewTag().SetName("Treasure")
	Constraint = donburi.NewTag().SetName("Constraint")
	Coin       = donburi.NewTag().SetName("Coin")
	FgPalm     = donburi.NewTag().SetName("FgPalm")
	BgPalm     = donburi.NewTag().SetName("BgPalm")
	Platform   = donburi.NewTag().SetName("Platform")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Shell      = donburi.NewTag().SetName("Shell")
	Pearl      = donburi.NewTag().SetName("Pearl")
	Boss       = donburi.NewTag().SetName("Boss")
	Explosion  = donburi.NewTag().SetName("Explosion")
	Dust       = donburi.NewTag().SetName("Dust")
	Cloud      = donburi.NewTag().SetName("Cloud")
	Water      = donburi.NewTag().SetName("Water")
)

// Resolv tags for the collision space
const (
	ResolvSolid      = "solid"
	ResolvConstraint = "constraint"
	ResolvPlatform   = "platform"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
)
