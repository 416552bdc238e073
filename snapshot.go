package main

import (
	"log"

	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/fragmentrun/sim"
)

type snapshot struct {
	Profile   string          `yaml:"profile"`
	Frame     int             `yaml:"frame"`
	Stage     string          `yaml:"stage"`
	Index     int             `yaml:"stage_index"`
	Fragments int             `yaml:"fragments"`
	CameraX   float64         `yaml:"camera_x"`
	Player    playerSnapshot  `yaml:"player"`
	Enemies   []enemySnapshot `yaml:"enemies"`
}

type playerSnapshot struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	VX           float64 `yaml:"vx"`
	VY           float64 `yaml:"vy"`
	Jumps        int     `yaml:"jumps"`
	Facing       float64 `yaml:"facing"`
	DashCooldown int     `yaml:"dash_cooldown"`
	AttackTimer  int     `yaml:"attack_timer"`
	Health       int     `yaml:"health"`
	State        string  `yaml:"state"`
}

type enemySnapshot struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Health int     `yaml:"health"`
}

func takeSnapshot(st *sim.State) snapshot {
	p := st.Player
	snap := snapshot{
		Profile:   st.Profile.Name,
		Frame:     st.Frame,
		Stage:     st.CurrentStage().Name,
		Index:     st.StageIndex,
		Fragments: st.Fragments,
		CameraX:   st.Camera.X,
		Player: playerSnapshot{
			X:            p.X,
			Y:            p.Y,
			VX:           p.VX,
			VY:           p.VY,
			Jumps:        p.Jumps,
			Facing:       p.Facing,
			DashCooldown: p.DashCooldown,
			AttackTimer:  p.AttackTimer,
			Health:       p.Health,
			State:        string(p.State),
		},
		Enemies: make([]enemySnapshot, 0, len(st.Enemies)),
	}
	for _, e := range st.Enemies {
		snap.Enemies = append(snap.Enemies, enemySnapshot{X: e.X, Y: e.Y, Health: e.Health})
	}
	return snap
}

var clipboardReady bool

// copySnapshot puts a YAML dump of the state on the system clipboard.
func (g *Game) copySnapshot() {
	b, err := yaml.Marshal(takeSnapshot(g.state))
	if err != nil {
		log.Printf("snapshot: marshal: %v", err)
		return
	}
	if !clipboardReady {
		if err := clipboard.Init(); err != nil {
			log.Printf("snapshot: clipboard unavailable: %v", err)
			log.Printf("snapshot:\n%s", b)
			return
		}
		clipboardReady = true
	}
	clipboard.Write(clipboard.FmtText, b)
	log.Printf("snapshot: copied frame %d to clipboard", g.state.Frame)
}
