package scenes

import (
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/automoto/treasure-hunters/assets"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// lockedDim is how dark the locked shader draws a node.
const lockedDim = 0.45

type mapNode struct {
	id   int
	x, y float64
}

// sprite is a decoration frame placed by its bottom centre.
type sprite struct {
	id    cfg.SpriteID
	frame int
	x, y  float64
}

// OverworldScene is the level select map. The icon walks between
// unlocked nodes and entering a node starts that level.
type OverworldScene struct {
	ctx     *Context
	session *Session

	ecs   *ecs.ECS
	nodes []mapNode
	deco  []sprite

	current  int
	maxLevel int

	iconX, iconY float64
	fromX, fromY float64
	target       int
	tween        *gween.Tween

	createdAt  int64
	allowInput bool
	frame      float64

	once sync.Once
}

func NewOverworldScene(ctx *Context, session *Session, current int) *OverworldScene {
	return &OverworldScene{ctx: ctx, session: session, current: current}
}

func (ow *OverworldScene) Update() {
	ow.once.Do(ow.configure)
	ow.ecs.Update()
}

func (ow *OverworldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ow.ecs == nil {
		return
	}
	ow.ecs.Draw(screen)
}

func (ow *OverworldScene) configure() {
	table := ow.ctx.Levels.Table()
	for _, e := range table.Levels {
		ow.nodes = append(ow.nodes, mapNode{id: e.ID, x: e.Node[0], y: e.Node[1]})
	}

	ow.maxLevel = min(ow.session.MaxLevel(), len(ow.nodes)-1)
	ow.current = max(0, min(ow.current, ow.maxLevel))
	n := ow.nodes[ow.current]
	ow.iconX, ow.iconY = n.x, n.y

	ow.createdAt = ow.ctx.Clock.Now()
	ow.placeDecorations()

	ow.ecs = ecs.NewECS(donburi.NewWorld())
	ow.ecs.AddSystem(systems.UpdateAudio)
	ow.ecs.AddSystem(systems.UpdateInput)
	ow.ecs.AddSystem(ow.update)
	ow.ecs.AddRenderer(cfg.Default, ow.draw)

	if ow.ctx.Input != nil {
		systems.SetInputSource(ow.ecs, ow.ctx.Input)
	}
}

func (ow *OverworldScene) placeDecorations() {
	r := ow.ctx.levelRand()
	if r == nil {
		r = rand.New(rand.NewSource(int64(ow.current)))
	}
	lib := ow.ctx.Assets
	t := cfg.C.TileSize
	horizon := cfg.Decoration.OverworldHorizon * t

	place := func(id cfg.SpriteID, count int, y func() float64) {
		frames := max(1, lib.Sheet(id).Len())
		for range count {
			ow.deco = append(ow.deco, sprite{
				id:    id,
				frame: r.Intn(frames),
				x:     float64(r.Intn(cfg.C.Width + 1)),
				y:     y(),
			})
		}
	}
	place(cfg.SpriteOverworldPalms, cfg.Decoration.OverworldPalms, func() float64 {
		return float64(horizon + 50 + r.Intn(51))
	})
	place(cfg.SpriteOverworldClouds, cfg.Decoration.OverworldClouds, func() float64 {
		return float64(r.Intn(max(1, horizon-100) + 1))
	})
}

func (ow *OverworldScene) update(e *ecs.ECS) {
	if !ow.allowInput && ow.ctx.Clock.Now()-ow.createdAt >= cfg.Overworld.InputDelayMs {
		ow.allowInput = true
	}

	if ow.tween != nil {
		ow.moveIcon()
	} else if ow.allowInput {
		ow.handleInput(e)
	}

	ow.frame += cfg.Animation.TileSpeed
}

func (ow *OverworldScene) handleInput(e *ecs.ECS) {
	switch {
	case systems.GetAction(e, cfg.ActionMenuRight).Pressed && ow.current < ow.maxLevel:
		ow.walkTo(ow.current + 1)
	case systems.GetAction(e, cfg.ActionMenuLeft).Pressed && ow.current > 0:
		ow.walkTo(ow.current - 1)
	case systems.GetAction(e, cfg.ActionMenuSelect).Pressed:
		ow.session.CreateLevel(ow.current)
	case systems.GetAction(e, cfg.ActionMute).JustPressed:
		systems.SetMuted(!systems.Muted())
		ow.ctx.Store.SaveCurrent()
	}
}

// walkTo starts the icon towards node id at a fixed speed.
func (ow *OverworldScene) walkTo(id int) {
	to := ow.nodes[id]
	dist := math.Hypot(to.x-ow.iconX, to.y-ow.iconY)
	frames := dist / cfg.Overworld.IconSpeed
	ow.fromX, ow.fromY = ow.iconX, ow.iconY
	ow.target = id
	ow.current = id
	ow.tween = gween.New(0, 1, float32(frames/float64(cfg.C.TPS)), ease.Linear)
}

func (ow *OverworldScene) moveIcon() {
	progress, done := ow.tween.Update(1 / float32(cfg.C.TPS))
	to := ow.nodes[ow.target]
	if done {
		ow.iconX, ow.iconY = to.x, to.y
		ow.tween = nil
		return
	}
	p := float64(progress)
	ow.iconX = ow.fromX + (to.x-ow.fromX)*p
	ow.iconY = ow.fromY + (to.y-ow.fromY)*p
}

// Moving reports whether the icon is between nodes.
func (ow *OverworldScene) Moving() bool {
	return ow.tween != nil
}

// Current is the node the icon stands on or walks towards.
func (ow *OverworldScene) Current() int {
	return ow.current
}

func (ow *OverworldScene) Icon() (x, y float64) {
	return ow.iconX, ow.iconY
}

func (ow *OverworldScene) draw(e *ecs.ECS, screen *ebiten.Image) {
	lib := ow.ctx.Assets
	systems.DrawSky(screen, lib, cfg.Decoration.OverworldHorizon)
	for _, d := range ow.deco {
		drawCentered(screen, lib.Sheet(d.id).Frame(d.frame), d.x, d.y, true)
	}

	if ow.maxLevel > 0 {
		c := cfg.Overworld.PathColor
		for i := 1; i <= ow.maxLevel; i++ {
			a, b := ow.nodes[i-1], ow.nodes[i]
			vector.StrokeLine(screen, float32(a.x), float32(a.y), float32(b.x), float32(b.y), cfg.Overworld.PathWidth, c, true)
		}
	}

	for _, n := range ow.nodes {
		sheet := lib.Node(n.id)
		img := sheet.Frame(int(ow.frame) % max(1, sheet.Len()))
		if n.id <= ow.maxLevel {
			drawCentered(screen, img, n.x, n.y, false)
		} else {
			drawLocked(screen, img, n.x, n.y)
		}
	}

	drawCentered(screen, lib.Sheet(cfg.SpriteOverworldHat).Frame(0), ow.iconX, ow.iconY, false)
}

var overworldOp = &ebiten.DrawImageOptions{}

// drawCentered draws img centred on x, or with its bottom edge on y when
// bottom is set.
func drawCentered(screen, img *ebiten.Image, x, y float64, bottom bool) {
	if img == nil {
		return
	}
	b := img.Bounds()
	top := y - float64(b.Dy())/2
	if bottom {
		top = y - float64(b.Dy())
	}
	overworldOp.GeoM.Reset()
	overworldOp.GeoM.Translate(x-float64(b.Dx())/2, top)
	screen.DrawImage(img, overworldOp)
}

func drawLocked(screen, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	if assets.LockedShader == nil {
		overworldOp.GeoM.Reset()
		overworldOp.ColorScale.Reset()
		b := img.Bounds()
		overworldOp.GeoM.Translate(x-float64(b.Dx())/2, y-float64(b.Dy())/2)
		overworldOp.ColorScale.Scale(lockedDim, lockedDim, lockedDim, 1)
		screen.DrawImage(img, overworldOp)
		overworldOp.ColorScale.Reset()
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(x-float64(b.Dx())/2, y-float64(b.Dy())/2)
	op.Images[0] = img
	op.Uniforms = map[string]any{"Dim": float32(lockedDim)}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.LockedShader, op)
}
