package window

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Restart button geometry, in field pixels.
const (
	restartButtonW = 100
	restartButtonH = 40
)

// NewRestartUI builds the centered Restart button shown over the win
// overlay. onRestart runs inside ui.Update, so it only records a request
// that the next simulation step picks up.
func NewRestartUI(onRestart func()) *ebitenui.UI {
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}}

	restartBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Pressed: btnPressed}),
		widget.ButtonOpts.Text("Restart", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(restartButtonW, restartButtonH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onRestart()
		}),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(restartBtn)

	return &ebitenui.UI{Container: root}
}
