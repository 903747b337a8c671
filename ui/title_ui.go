package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI is the start screen: pick the runner or the frog loop.
type TitleUI struct {
	UI *ebitenui.UI

	OnRide     func()
	OnFrogLoop func()
	OnQuit     func()

	titleFace  text.Face
	normalFace text.Face
}

func NewTitleUI(onRide, onFrogLoop, onQuit func()) *TitleUI {
	ui := &TitleUI{
		OnRide:     onRide,
		OnFrogLoop: onFrogLoop,
		OnQuit:     onQuit,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *TitleUI) loadFonts() {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: boldSource, Size: 48}
	ui.normalFace = &text.GoTextFace{Source: regularSource, Size: 18}
}

func (ui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Title.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Title.Title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Title.Subtitle, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{36, 42, 66, 255},
		}),
	))

	contentContainer.AddChild(ui.button("Ride", color.RGBA{97, 205, 124, 255}, func() { call(ui.OnRide) }))
	contentContainer.AddChild(ui.button("Frog Loop", color.RGBA{34, 139, 34, 255}, func() { call(ui.OnFrogLoop) }))
	contentContainer.AddChild(ui.button("Quit", color.RGBA{208, 102, 94, 255}, func() { call(ui.OnQuit) }))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TitleUI) button(label string, base color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 40)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(base),
			Hover:   image.NewNineSliceColor(shade(base, 1.15)),
			Pressed: image.NewNineSliceColor(shade(base, 0.8)),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 247, 166, 255},
			Pressed: color.RGBA{230, 230, 230, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		s := float64(v) * f
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func (ui *TitleUI) Update() {
	ui.UI.Update()
}
