package components

import (
	"github.com/automoto/treasure-hunters/assets"
	"github.com/automoto/treasure-hunters/assets/animations"
	"github.com/automoto/treasure-hunters/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	*animations.Animation
	Sheet   *assets.Sheet
	SheetID config.SpriteID
	FlipX   bool
	Alpha   float32
}

// SetSheet switches the frame sequence without resetting the cursor.
func (a *AnimationData) SetSheet(id config.SpriteID, sheet *assets.Sheet) {
	if a.SheetID == id && a.Sheet == sheet {
		return
	}
	a.SheetID = id
	a.Sheet = sheet
	a.Animation.SetFrames(sheet.Len())
}

// Image is the current frame, nil when graphics are not loaded.
func (a *AnimationData) Image() *ebiten.Image {
	return a.Sheet.Frame(a.Frame())
}

var Animation = donburi.NewComponentType[AnimationData]()

// AutoDestroyData marks effects that are removed once their one-shot
// animation finishes.
type AutoDestroyData struct{}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
