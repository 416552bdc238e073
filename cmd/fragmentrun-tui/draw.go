package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/fragmentrun/notify"
	"github.com/milk9111/fragmentrun/sim"
)

// One terminal cell covers cellW x cellH world pixels.
const (
	cellW = 8.0
	cellH = 16.0
)

var (
	styleSky      = tcell.StyleDefault.Background(tcell.NewRGBColor(0x05, 0x0b, 0x14))
	styleStrip    = styleSky.Foreground(tcell.NewRGBColor(0x00, 0x40, 0x34))
	stylePlatform = styleSky.Foreground(tcell.NewRGBColor(0x00, 0x77, 0x66))
	styleEnemyA   = styleSky.Foreground(tcell.NewRGBColor(0xff, 0x33, 0x55))
	styleEnemyB   = styleSky.Foreground(tcell.NewRGBColor(0xff, 0x66, 0x77))
	stylePlayer   = styleSky.Foreground(tcell.NewRGBColor(0x00, 0xff, 0xcc)).Bold(true)
	styleSlash    = styleSky.Foreground(tcell.ColorWhite)
	styleHUD      = styleSky.Foreground(tcell.ColorAqua)
	styleHeart    = styleSky.Foreground(tcell.ColorRed)
	styleBanner   = tcell.StyleDefault.Background(tcell.NewRGBColor(0x00, 0x14, 0x12)).Foreground(tcell.ColorWhite)
)

// viewportFor maps a terminal size to the world viewport it shows.
func viewportFor(cols, rows int) sim.Viewport {
	return sim.Viewport{W: float64(cols) * cellW, H: float64(rows) * cellH}
}

func toCol(x float64) int { return int(math.Floor(x / cellW)) }
func toRow(y float64) int { return int(math.Floor(y / cellH)) }

// runnerGlyph is the player's cell for an animation state.
func runnerGlyph(p sim.Player) rune {
	switch p.State {
	case sim.AnimAttack:
		return '*'
	case sim.AnimJump:
		return '^'
	case sim.AnimRun:
		if p.Facing < 0 {
			return '<'
		}
		return '>'
	}
	return '@'
}

func draw(scr tcell.Screen, st *sim.State, banner *notify.Banner) {
	scr.SetStyle(styleSky)
	scr.Clear()
	cols, rows := scr.Size()
	cam := st.Camera.X

	// parallax strips
	for i := 0; i < 120; i++ {
		x := math.Mod(float64(i)*120-cam*0.2, st.Viewport.W)
		fill(scr, toCol(x), toRow(80), toCol(x+40)-toCol(x), 1, '─', styleStrip)
	}

	for _, p := range st.Platforms {
		c0, c1 := toCol(p.X-cam), toCol(p.Right()-cam-1)
		r0, r1 := toRow(p.Y), toRow(p.Bottom()-1)
		fill(scr, c0, r0, c1-c0+1, r1-r0+1, '▓', stylePlatform)
	}

	for _, e := range st.Enemies {
		style := styleEnemyA
		if math.Mod(e.Anim, 1) >= 0.5 {
			style = styleEnemyB
		}
		scr.SetContent(toCol(e.X-cam+e.W/2), toRow(e.Y+e.H/2), 'M', nil, style)
	}

	p := st.Player
	px, py := toCol(p.X-cam+p.W/2), toRow(p.Y+p.H/2)
	if p.Invulnerable <= 0 || (p.Invulnerable/4)%2 == 0 {
		scr.SetContent(px, py, runnerGlyph(p), nil, stylePlayer)
	}
	if p.State == sim.AnimAttack {
		x := p.X - cam + p.W
		if p.Facing < 0 {
			x = p.X - cam - 8
		}
		fill(scr, toCol(x), py, 2, 1, '─', styleSlash)
	}

	drawHUD(scr, st)
	if banner != nil {
		if m, ok := banner.Current(); ok {
			drawBanner(scr, cols, rows, m)
		}
	}
	scr.Show()
}

func drawHUD(scr tcell.Screen, st *sim.State) {
	x := putString(scr, 1, 0, st.CurrentStage().Name, styleHUD)
	if st.Profile.HUD == sim.HUDHearts {
		putString(scr, x+2, 0, strings.Repeat("♥", max(st.Player.Health, 0)), styleHeart)
		return
	}
	putString(scr, x+2, 0, fmt.Sprintf("Fragments: %d", st.Fragments), styleHUD)
}

func drawBanner(scr tcell.Screen, cols, rows int, m notify.Message) {
	const hint = "[Enter] OK"
	w := max(len(m.Title), len(m.Body), len(hint)) + 6
	h := 7
	x0, y0 := (cols-w)/2, (rows-h)/2
	fill(scr, x0, y0, w, h, ' ', styleBanner)
	putString(scr, x0+(w-len(m.Title))/2, y0+1, m.Title, styleBanner.Bold(true))
	putString(scr, x0+(w-len(m.Body))/2, y0+3, m.Body, styleBanner)
	putString(scr, x0+(w-len(hint))/2, y0+5, hint, styleBanner)
}

func fill(scr tcell.Screen, x, y, w, h int, r rune, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			scr.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

// putString writes s from (x, y) and returns the column after it.
func putString(scr tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		scr.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
