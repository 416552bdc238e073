package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	BackgroundColor = color.RGBA{R: 0x05, G: 0x0b, B: 0x14, A: 0xff}
	StripColor      = color.RGBA{R: 0x00, G: 0x14, B: 0x10, A: 0x14} // cyan at 8% alpha, premultiplied
	PlatformColor   = color.RGBA{R: 0x00, G: 0x77, B: 0x66, A: 0xff}
	RunnerColor     = color.RGBA{R: 0x00, G: 0xff, B: 0xcc, A: 0xff}
	SlashColor      = colornames.White
	EnemyColorA     = color.RGBA{R: 0xff, G: 0x33, B: 0x55, A: 0xff}
	EnemyColorB     = color.RGBA{R: 0xff, G: 0x66, B: 0x77, A: 0xff}
	HeartColor      = colornames.Crimson
	HUDTextColor    = colornames.Aquamarine
	ControlColor    = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0x60}
	ControlEdge     = color.RGBA{R: 0x00, G: 0xa0, B: 0x80, A: 0xa0}
)
