package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fragmentrun/common"
)

func main() {
	profile := flag.String("profile", "", "movement profile from prefabs/profiles.yaml (empty selects the default)")
	stage := flag.Int("stage", 0, "stage index to start on")
	sprite := flag.Bool("sprite", true, "draw the runner as a pixel sprite instead of a flat rectangle")
	debug := flag.Bool("debug", false, "enable debug mode (hot reload, F9 snapshot, FPS readout)")
	tps := flag.Int("tps", 0, "fixed ticks per second; 0 ties the simulation to the display refresh rate")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	if *tps > 0 {
		ebiten.SetTPS(*tps)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("fragmentrun")

	game, err := NewGame(Options{
		Profile: *profile,
		Stage:   *stage,
		Sprite:  *sprite,
		Debug:   *debug,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
