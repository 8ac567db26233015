package systems

import (
	"strconv"

	"github.com/automoto/treasure-hunters/components"
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the health bar and the coin counter in the top-left
// corner. It needs level callbacks that also report Stats.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	lvl := levelOf(e)
	if lvl == nil {
		return
	}
	stats, ok := lvl.Callbacks.(components.Stats)
	if !ok {
		return
	}
	cur, max := stats.Health()

	drawHUDImage(screen, lvl.Assets.Sheet(cfg.SpriteHealthBar).Frame(0), cfg.UI.HealthBarX, cfg.UI.HealthBarY)
	vector.FillRect(screen,
		cfg.UI.HealthFillX, cfg.UI.HealthFillY,
		healthFillWidth(cur, max), cfg.UI.HealthFillH,
		cfg.UI.HealthColor, false)

	icon := lvl.Assets.Sheet(cfg.SpriteCoinIcon)
	drawHUDImage(screen, icon.Frame(0), cfg.UI.CoinX, cfg.UI.CoinY)
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	// The counter sits right of the icon, vertically centred on it.
	face := fonts.HUD.Get()
	x := int(cfg.UI.CoinX) + icon.Width + 6
	y := int(cfg.UI.CoinY) + icon.Height/2 + face.Metrics().Ascent.Ceil()/2
	text.Draw(screen, strconv.Itoa(stats.Coins()), face, x, y, cfg.UI.CoinTextColor)
}

// healthFillWidth scales the bar to current/max, clamped to the bar.
func healthFillWidth(cur, max int) float32 {
	if max <= 0 || cur <= 0 {
		return 0
	}
	if cur > max {
		cur = max
	}
	return cfg.UI.HealthFillW * float32(cur) / float32(max)
}

func drawHUDImage(screen, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	hudDrawOp.GeoM.Reset()
	hudDrawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, hudDrawOp)
}
