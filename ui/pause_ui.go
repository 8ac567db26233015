package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is the centred panel shown while a level is paused.
type PauseUI struct {
	UI *ebitenui.UI

	OnResume    func()
	OnMute      func()
	OnBackToMap func()

	muteBtn *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

func NewPauseUI(onResume, onMute, onBackToMap func()) (*PauseUI, error) {
	ui := &PauseUI{
		OnResume:    onResume,
		OnMute:      onMute,
		OnBackToMap: onBackToMap,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *PauseUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	return nil
}

func (ui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0x3e, 0x2a, 0x20, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(20)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	panel.AddChild(ui.button("Resume", func() {
		if ui.OnResume != nil {
			ui.OnResume()
		}
	}))
	ui.muteBtn = ui.button(muteLabel(false), func() {
		if ui.OnMute != nil {
			ui.OnMute()
		}
	})
	panel.AddChild(ui.muteBtn)
	panel.AddChild(ui.button("Back to map", func() {
		if ui.OnBackToMap != nil {
			ui.OnBackToMap()
		}
	}))

	rootContainer.AddChild(panel)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *PauseUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{0xa0, 0x4f, 0x45, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{0xc0, 0x6a, 0x5a, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{0x80, 0x3c, 0x34, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 240, 200, 255},
			Pressed: color.RGBA{220, 200, 170, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetMuted relabels the mute button.
func (ui *PauseUI) SetMuted(muted bool) {
	if ui.muteBtn != nil && ui.muteBtn.Text() != nil {
		ui.muteBtn.Text().Label = muteLabel(muted)
	}
}

func muteLabel(muted bool) string {
	if muted {
		return "Unmute"
	}
	return "Mute"
}

func (ui *PauseUI) Update() {
	ui.UI.Update()
}
