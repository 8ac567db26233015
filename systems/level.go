package systems

import (
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/yohamta/donburi/ecs"
)

// RegisterLevelSystems installs the level frame in its fixed order. Audio,
// input and pause always run; everything else stops while paused.
func RegisterLevelSystems(e *ecs.ECS) {
	e.AddSystem(UpdateAudio)
	e.AddSystem(UpdateInput)
	e.AddSystem(UpdatePause)

	for _, system := range []ecs.System{
		ApplyWorldShift,
		UpdateBackground,
		UpdatePlatforms,
		UpdateEnemies,
		UpdateExplosions,
		UpdateShells,
		UpdatePearls,
		UpdateBoss,
		UpdateSpikes,
		ScrollX,
		UpdatePlayer,
		UpdateCollisions,
		UpdateForeground,
		CheckExits,
		UpdateInteractions,
		UpdateWater,
	} {
		e.AddSystem(WithPauseCheck(system))
	}

	e.AddRenderer(cfg.Default, DrawLevel)
	e.AddRenderer(cfg.Default, DrawHUD)
	e.AddRenderer(cfg.Default, DrawDebug)
	e.AddRenderer(cfg.Default, DrawPause)
}
