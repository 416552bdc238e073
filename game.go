package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/fragmentrun/common"
	"github.com/milk9111/fragmentrun/input"
	"github.com/milk9111/fragmentrun/notify"
	"github.com/milk9111/fragmentrun/prefabs"
	"github.com/milk9111/fragmentrun/render"
	"github.com/milk9111/fragmentrun/sim"
)

type Options struct {
	Profile string
	Stage   int
	Sprite  bool
	Debug   bool
}

type Game struct {
	opts Options

	state    *sim.State
	sched    *sim.Scheduler
	sampler  *input.Sampler
	renderer *render.Renderer

	notifier notify.Notifier
	banner   *notify.Banner // nil when notifications are native

	ui  *ebitenui.UI
	hud *hudUI

	watcher      *prefabs.Watcher
	controlsOpen bool
	laidOut      bool
}

func NewGame(opts Options) (*Game, error) {
	vp := sim.Viewport{W: common.BaseWidth, H: common.BaseHeight}
	st, err := loadState(opts.Profile, vp)
	if err != nil {
		return nil, err
	}
	if opts.Stage != 0 {
		if err := st.GoToStage(opts.Stage); err != nil {
			return nil, err
		}
	}

	g := &Game{
		opts:     opts,
		state:    st,
		sched:    sim.DefaultScheduler(),
		sampler:  input.NewSampler(),
		renderer: render.NewRenderer(opts.Sprite),
		notifier: notify.Default(),
	}
	g.banner, _ = g.notifier.(*notify.Banner)
	g.sampler.Layout(vp)
	g.hud = newHUDUI(g)
	g.ui = g.hud.ui

	if opts.Debug {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("game: prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// loadState builds a fresh state from the prefab profile and stage files.
func loadState(profile string, vp sim.Viewport) (*sim.State, error) {
	p, err := prefabs.LoadProfile(profile)
	if err != nil {
		return nil, err
	}
	w, err := prefabs.LoadWorld()
	if err != nil {
		return nil, err
	}
	return sim.NewState(p, w, vp)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) paused() bool {
	return g.controlsOpen || g.notifier.Pending()
}

func (g *Game) Update() error {
	g.hotReload()
	g.ui.Update()

	if g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.copySnapshot()
	}

	if g.paused() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.dismiss()
		}
		g.sampler.Disabled = true
		g.sampler.Sample()
		g.hud.sync()
		return nil
	}

	g.sampler.Disabled = false
	g.state.Step(g.sched, g.sampler.Sample())
	g.handleEvents()
	g.hud.sync()
	return nil
}

// dismiss closes the topmost modal: the notification first, then the
// controls screen.
func (g *Game) dismiss() {
	if g.banner != nil && g.banner.Pending() {
		g.banner.Dismiss()
		return
	}
	g.controlsOpen = false
}

func (g *Game) handleEvents() {
	for _, ev := range g.state.Events().Drain() {
		if g.opts.Debug {
			log.Printf("game: %s stage=%d %s", ev.Kind, ev.Stage, ev.Name)
		}
		if msg, ok := notify.ForEvent(ev); ok {
			g.notifier.Notify(msg)
		}
	}
}

func (g *Game) restart() {
	g.state.Restart()
	g.handleEvents()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state)
	g.renderer.DrawControls(screen, g.sampler.Joystick, g.sampler.Buttons)
	g.ui.Draw(screen)

	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", g.state.Frame, ebiten.ActualFPS(), ebiten.ActualTPS()), 12, 50)
	}
}

// Layout follows the window size. World geometry is not rescaled; the next
// stage load uses the new height.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := sim.Viewport{W: float64(outsideWidth), H: float64(outsideHeight)}
	if vp != g.state.Viewport {
		g.state.SetViewport(vp)
		g.sampler.Layout(vp)
		if !g.laidOut {
			// place the first stage on the real surface
			g.state.LoadStage()
		}
	}
	g.laidOut = true
	return outsideWidth, outsideHeight
}
