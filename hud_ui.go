package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var controlsHelp = []string{
	"A / D or arrows: move",
	"W / Up / Space: jump (double jump in the air)",
	"Shift: dash",
	"J: attack",
	"R: restart",
	"Touch: left stick to move, buttons for JUMP / DASH / ATK",
}

// hudUI holds the restart and controls buttons plus the two modal overlays:
// the controls screen and the notification banner.
type hudUI struct {
	g  *Game
	ui *ebitenui.UI

	controls    *widget.Container
	banner      *widget.Container
	bannerTitle *widget.Text
	bannerBody  *widget.Text
}

func newHUDUI(g *Game) *hudUI {
	h := &hudUI{g: g}

	overlayImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x14, B: 0x12, A: 230})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x55, B: 0x48, A: 220})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x77, B: 0x66, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	accent := color.NRGBA{R: 0x00, G: 0xff, B: 0xcc, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(110, 28),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	overlay := func() *widget.Container {
		c := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(overlayImg),
			widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: widget.AnchorLayoutPositionCenter,
					VerticalPosition:   widget.AnchorLayoutPositionCenter,
					StretchHorizontal:  true,
					StretchVertical:    true,
				}),
			),
		)
		c.GetWidget().Visibility = widget.Visibility_Hide
		return c
	}

	panel := func() *widget.Container {
		return widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(panelImg),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(10),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(320, 140),
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
			),
		)
	}

	label := func(s string, clr color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(s, &face, clr),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		)
	}

	// top-right button bar
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	bar.AddChild(button("RESTART", func() {
		if !g.paused() {
			g.restart()
		}
	}))
	bar.AddChild(button("CONTROLS", func() {
		g.controlsOpen = true
	}))

	// controls screen
	h.controls = overlay()
	controlsPanel := panel()
	controlsPanel.AddChild(label("CONTROLS", accent))
	for _, line := range controlsHelp {
		controlsPanel.AddChild(label(line, white))
	}
	controlsPanel.AddChild(button("CLOSE", func() {
		g.controlsOpen = false
	}))
	h.controls.AddChild(controlsPanel)

	// notification banner
	h.banner = overlay()
	bannerPanel := panel()
	h.bannerTitle = label("", accent)
	h.bannerBody = label("", white)
	bannerPanel.AddChild(h.bannerTitle)
	bannerPanel.AddChild(h.bannerBody)
	bannerPanel.AddChild(button("OK", func() {
		if g.banner != nil {
			g.banner.Dismiss()
		}
	}))
	h.banner.AddChild(bannerPanel)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)
	root.AddChild(h.controls)
	root.AddChild(h.banner)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// sync mirrors game state onto overlay visibility.
func (h *hudUI) sync() {
	setVisible(h.controls, h.g.controlsOpen)

	var msgOpen bool
	if h.g.banner != nil {
		if m, ok := h.g.banner.Current(); ok {
			h.bannerTitle.Label = m.Title
			h.bannerBody.Label = m.Body
			msgOpen = true
		}
	}
	setVisible(h.banner, msgOpen)
}

func setVisible(c *widget.Container, visible bool) {
	if visible {
		c.GetWidget().Visibility = widget.Visibility_Show
	} else {
		c.GetWidget().Visibility = widget.Visibility_Hide
	}
}
