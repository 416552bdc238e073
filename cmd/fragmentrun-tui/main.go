// Command fragmentrun-tui runs the platformer in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/fragmentrun/notify"
	"github.com/milk9111/fragmentrun/prefabs"
	"github.com/milk9111/fragmentrun/sim"
)

type game struct {
	screen tcell.Screen
	state  *sim.State
	sched  *sim.Scheduler
	keys   keyState
	banner *notify.Banner
}

func newGame(screen tcell.Screen, profile string, stage int) (*game, error) {
	p, err := prefabs.LoadProfile(profile)
	if err != nil {
		return nil, err
	}
	w, err := prefabs.LoadWorld()
	if err != nil {
		return nil, err
	}
	st, err := sim.NewState(p, w, viewportFor(screen.Size()))
	if err != nil {
		return nil, err
	}
	if stage != 0 {
		if err := st.GoToStage(stage); err != nil {
			return nil, err
		}
	}
	st.Events().Drain()
	return &game{
		screen: screen,
		state:  st,
		sched:  sim.DefaultScheduler(),
		banner: notify.NewBanner(),
	}, nil
}

// handleEvent returns false when the player quits.
func (g *game) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch g.keys.handle(ev.Key(), ev.Rune(), now) {
		case keyQuit:
			return false
		case keyConfirm:
			g.banner.Dismiss()
		}
	case *tcell.EventResize:
		g.state.SetViewport(viewportFor(g.screen.Size()))
		g.screen.Sync()
	}
	return true
}

// tick advances one frame unless a notification is open.
func (g *game) tick(now time.Time) {
	in := g.keys.sample(now)
	if g.banner.Pending() {
		return
	}
	g.state.Step(g.sched, in)
	for _, ev := range g.state.Events().Drain() {
		if msg, ok := notify.ForEvent(ev); ok {
			g.banner.Notify(msg)
		}
	}
}

func (g *game) run(tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			g.tick(now)
			draw(g.screen, g.state, g.banner)
		}
	}
}

func main() {
	profile := flag.String("profile", "", "movement profile from prefabs/profiles.yaml (empty selects the default)")
	stage := flag.Int("stage", 0, "stage index to start on")
	tps := flag.Int("tps", 60, "ticks per second")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if *tps <= 0 {
		*tps = 60
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	g, err := newGame(screen, *profile, *stage)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	// the terminal belongs to the screen from here on
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	g.run(*tps)
	screen.Fini()
}
