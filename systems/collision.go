package systems

import (
	"math"

	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/automoto/treasure-hunters/systems/factory"
	"github.com/automoto/treasure-hunters/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves the player's collision rect horizontally and then
// vertically, snapping it against solid obstacles after each move.
func UpdateCollisions(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	resolveHorizontal(e, player, obj, cameraOf(e).Applied)
	player.WasOnGround = player.OnGround
	resolveVertical(e, player, obj)
	createLandingDust(e, player)
}

// resolveHorizontal moves by the input direction times speed, less the
// camera shift applied this frame so the player holds still on screen
// while the world scrolls. Every overlapping obstacle snaps the rect in
// iteration order, so the last one wins.
func resolveHorizontal(e *ecs.ECS, player *components.PlayerData, obj *components.ObjectData, shift float64) {
	player.OnLeft, player.OnRight = false, false

	before := obj.Rect()
	obj.X += player.Direction.X*player.Speed - shift

	for _, o := range obstacles(e, union(before, obj.Rect())) {
		r := rectOf(o)
		if !r.Overlaps(obj.Rect()) {
			continue
		}
		switch {
		case player.Direction.X < 0:
			obj.X = r.Right()
			player.OnLeft = true
		case player.Direction.X > 0:
			obj.X = r.X - obj.W
			player.OnRight = true
		}
	}
	obj.Update()
}

// resolveVertical applies gravity, then snaps against overlapping
// obstacles. Touching a platform records it as the supporting platform.
func resolveVertical(e *ecs.ECS, player *components.PlayerData, obj *components.ObjectData) {
	player.OnCeiling = false

	before := obj.Rect()
	player.Direction.Y += cfg.Player.Gravity
	obj.Y = gamemath.Step(obj.Y, player.Direction.Y)

	for _, o := range obstacles(e, union(before, obj.Rect())) {
		r := rectOf(o)
		if r.Overlaps(obj.Rect()) {
			if o.HasComponent(components.Platform) {
				player.Platform = o.Entity()
			}
			switch {
			case player.Direction.Y > 0:
				obj.Y = r.Y - obj.H
				player.Direction.Y = 0
				player.OnGround = true
			case player.Direction.Y < 0:
				obj.Y = r.Bottom()
				player.Direction.Y = 0
				player.OnCeiling = true
			}
		}
		leaveGround(player)
	}
	leaveGround(player)
	obj.Update()
}

// leaveGround clears the ground contact once the player rises or falls
// faster than gravity alone pulls a resting body.
func leaveGround(player *components.PlayerData) {
	if player.OnGround && player.Direction.Y < 0 || player.Direction.Y > 1 {
		player.OnGround = false
		player.Platform = donburi.Null
	}
}

func createLandingDust(e *ecs.ECS, player *components.PlayerData) {
	if player.WasOnGround || !player.OnGround || dustAlive(e) {
		return
	}
	x, y := midBottom(player.Visual)
	if player.FacingRight {
		x -= 10
	} else {
		x += 10
	}
	factory.CreateDust(e, cfg.SpriteDustLand, x, y-15)
}

// obstacles returns the solid entries near area in creation order:
// terrain, crates, platforms, then shells.
func obstacles(e *ecs.ECS, area gamemath.Rect) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}

	margin := float64(cfg.C.TileSize)
	probe := resolv.NewObject(area.X-margin, area.Y-margin, area.W+2*margin, area.H+2*margin)
	probe.Space = components.Space.Get(spaceEntry)

	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	out := make([]*donburi.Entry, 0, len(check.Objects))
	for _, o := range check.Objects {
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			out = append(out, entry)
		}
	}
	sortByOrder(out)
	return out
}

func union(a, b gamemath.Rect) gamemath.Rect {
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	return gamemath.Rect{
		X: x,
		Y: y,
		W: math.Max(a.Right(), b.Right()) - x,
		H: math.Max(a.Bottom(), b.Bottom()) - y,
	}
}
