package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/fragmentrun/sim"
)

// hotReload rebuilds the state when prefab files change on disk. A failed
// reload keeps the running config.
func (g *Game) hotReload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("game: prefab watcher: %v", err)
	default:
	}

	changed := g.watcher.Pending()
	if len(changed) == 0 {
		return
	}
	names := make([]string, 0, len(changed))
	for _, c := range changed {
		names = append(names, filepath.Base(c))
	}
	log.Printf("game: prefabs changed (%s), reloading", strings.Join(names, ", "))

	st, err := reloadState(g.state, g.opts.Profile)
	if err != nil {
		log.Printf("game: reload failed, keeping previous config: %v", err)
		return
	}
	g.state = st
}

// reloadState loads the profile and world again and carries progress over
// from prev. The stage index is kept when it still exists.
func reloadState(prev *sim.State, profile string) (*sim.State, error) {
	st, err := loadState(profile, prev.Viewport)
	if err != nil {
		return nil, err
	}
	st.Fragments = prev.Fragments
	if prev.StageIndex < len(st.World.Stages) {
		if err := st.GoToStage(prev.StageIndex); err != nil {
			return nil, err
		}
	}
	st.Events().Drain()
	return st, nil
}
