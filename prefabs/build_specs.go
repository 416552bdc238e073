package prefabs

import (
	"fmt"
	"strings"

	"github.com/milk9111/fragmentrun/sim"
)

// LoadProfile loads the named movement profile from profiles.yaml. An empty
// name selects the file's default profile.
func LoadProfile(name string) (sim.Profile, error) {
	spec, err := LoadSpec[ProfilesSpec](ProfilesFile)
	if err != nil {
		return sim.Profile{}, err
	}
	return spec.Build(name)
}

// ProfileNames lists the profiles in profiles.yaml in file order.
func ProfileNames() ([]string, error) {
	spec, err := LoadSpec[ProfilesSpec](ProfilesFile)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(spec.Profiles))
	for _, p := range spec.Profiles {
		names = append(names, p.Name)
	}
	return names, nil
}

func (ps ProfilesSpec) Build(name string) (sim.Profile, error) {
	if name == "" {
		name = ps.Default
	}
	for _, p := range ps.Profiles {
		if strings.EqualFold(p.Name, name) {
			return p.Build()
		}
	}
	return sim.Profile{}, fmt.Errorf("prefabs: unknown profile %q", name)
}

func (p ProfileSpec) Build() (sim.Profile, error) {
	move := sim.MoveStyle(strings.ToLower(p.Move))
	switch move {
	case "":
		move = sim.MoveDirect
	case sim.MoveDirect, sim.MoveAccel:
	default:
		return sim.Profile{}, fmt.Errorf("prefabs: profile %s: unknown move style %q", p.Name, p.Move)
	}

	if p.MaxJumps < 0 || p.MaxJumps > sim.JumpLimit {
		return sim.Profile{}, fmt.Errorf("prefabs: profile %s: max_jumps %d outside 1..%d", p.Name, p.MaxJumps, sim.JumpLimit)
	}

	hud := sim.HUDStyle(strings.ToLower(p.HUD))
	if hud == "" {
		hud = sim.HUDFragments
	}

	prof := sim.Profile{
		Name:                  p.Name,
		Move:                  move,
		Speed:                 p.Speed,
		Accel:                 p.Accel,
		Friction:              p.Friction,
		MaxSpeed:              p.MaxSpeed,
		Gravity:               p.Gravity,
		JumpSpeed:             p.JumpSpeed,
		MaxJumps:              p.MaxJumps,
		DashSpeed:             p.DashSpeed,
		DashFrames:            p.DashFrames,
		AttackFrames:          p.AttackFrames,
		AttackRange:           p.AttackRange,
		AttackDamage:          p.AttackDamage,
		LandingBand:           p.LandingBand,
		AnimStep:              p.AnimStep,
		RunThreshold:          p.RunThreshold,
		PlayerW:               p.Player.Width,
		PlayerH:               p.Player.Height,
		PlayerHealth:          p.Player.Health,
		EnemyW:                p.Enemy.Width,
		EnemyH:                p.Enemy.Height,
		EnemyHealth:           p.Enemy.Health,
		EnemySpeed:            p.Enemy.Speed,
		EnemyAnimStep:         p.Enemy.AnimStep,
		ContactDamage:         p.Player.ContactDamage,
		InvulnerableFrames:    p.Player.InvulnerableFrames,
		FinishMargin:          p.FinishMargin,
		RestartResetsProgress: p.ResetOnRetry,
		HUD:                   hud,
	}

	if p.Enemy.Script != "" {
		src, err := LoadScript(p.Enemy.Script)
		if err != nil {
			return sim.Profile{}, fmt.Errorf("prefabs: profile %s: load script %s: %w", p.Name, p.Enemy.Script, err)
		}
		prof.EnemyScriptName = p.Enemy.Script
		prof.EnemyScript = src
	}
	return prof, nil
}

// LoadWorld loads the stage list from stages.yaml.
func LoadWorld() (sim.World, error) {
	spec, err := LoadSpec[StagesSpec](StagesFile)
	if err != nil {
		return sim.World{}, err
	}
	return spec.Build()
}

func (s StagesSpec) Build() (sim.World, error) {
	if len(s.Stages) == 0 {
		return sim.World{}, fmt.Errorf("prefabs: %s: no stages", StagesFile)
	}
	if s.WorldWidth <= 0 {
		return sim.World{}, fmt.Errorf("prefabs: %s: invalid world width %v", StagesFile, s.WorldWidth)
	}

	w := sim.World{Width: s.WorldWidth, Stages: make([]sim.Stage, 0, len(s.Stages))}
	for i, st := range s.Stages {
		if len(st.Platforms) == 0 {
			return sim.World{}, fmt.Errorf("prefabs: stage %d (%s): no platforms", i, st.Name)
		}
		stage := sim.Stage{
			Name:        st.Name,
			SpawnX:      st.Spawn.X,
			SpawnBottom: st.Spawn.Bottom,
			Enemies: sim.EnemyBatch{
				Count:   st.Enemies.Count,
				StartX:  st.Enemies.StartX,
				Spacing: st.Enemies.Spacing,
				Bottom:  st.Enemies.Bottom,
			},
			Platforms: make([]sim.PlatformDef, 0, len(st.Platforms)),
		}
		for _, p := range st.Platforms {
			stage.Platforms = append(stage.Platforms, sim.PlatformDef{X: p.X, Bottom: p.Bottom, W: p.W, H: p.H})
		}
		w.Stages = append(w.Stages, stage)
	}
	return w, nil
}
