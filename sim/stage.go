package sim

import "fmt"

// World is the ordered stage list sharing one world width.
type World struct {
	Width  float64
	Stages []Stage
}

// PlatformDef places a platform relative to the viewport bottom: its top
// edge sits Bottom pixels above it. W <= 0 spans the whole world.
type PlatformDef struct {
	X, Bottom float64
	W, H      float64
}

// EnemyBatch spawns Count enemies at StartX + i*Spacing.
type EnemyBatch struct {
	Count   int
	StartX  float64
	Spacing float64
	Bottom  float64
}

type Stage struct {
	Name        string
	Platforms   []PlatformDef
	Enemies     EnemyBatch
	SpawnX      float64
	SpawnBottom float64
}

// LoadStage regenerates platforms and enemies for the current stage and
// moves the player to the spawn point. Health and fragments are kept.
func (s *State) LoadStage() {
	if s.StageIndex < 0 || s.StageIndex >= len(s.World.Stages) {
		s.StageIndex = 0
	}
	st := s.World.Stages[s.StageIndex]
	h := s.Viewport.H

	s.Platforms = make([]Rect, 0, len(st.Platforms))
	for _, d := range st.Platforms {
		w := d.W
		if w <= 0 {
			w = s.World.Width
		}
		s.Platforms = append(s.Platforms, Rect{X: d.X, Y: h - d.Bottom, W: w, H: d.H})
	}

	s.Enemies = make([]Enemy, 0, st.Enemies.Count)
	for i := 0; i < st.Enemies.Count; i++ {
		s.Enemies = append(s.Enemies, Enemy{
			X:      st.Enemies.StartX + float64(i)*st.Enemies.Spacing,
			Y:      h - st.Enemies.Bottom,
			W:      s.Profile.EnemyW,
			H:      s.Profile.EnemyH,
			Health: s.Profile.EnemyHealth,
		})
	}

	s.Player.X = st.SpawnX
	s.Player.Y = h - st.SpawnBottom
	s.events.Push(Event{Kind: EventStageLoaded, Stage: s.StageIndex, Name: st.Name})
}

// GoToStage jumps to stage i and loads it.
func (s *State) GoToStage(i int) error {
	if i < 0 || i >= len(s.World.Stages) {
		return fmt.Errorf("sim: stage %d out of range [0,%d)", i, len(s.World.Stages))
	}
	s.StageIndex = i
	s.LoadStage()
	return nil
}

// DefaultWorld is the five-stage world with the stock layout.
func DefaultWorld() World {
	names := []string{"Root Directory", "Memory Heap", "Cache Overflow", "System32 Ruins", "Recycle Bin Abyss"}
	stages := make([]Stage, 0, len(names))
	for _, n := range names {
		stages = append(stages, Stage{
			Name: n,
			Platforms: []PlatformDef{
				{X: 0, Bottom: 40, W: 0, H: 40},
				{X: 300, Bottom: 160, W: 180, H: 20},
				{X: 700, Bottom: 240, W: 160, H: 20},
				{X: 1200, Bottom: 200, W: 180, H: 20},
				{X: 1700, Bottom: 300, W: 200, H: 20},
				{X: 2300, Bottom: 220, W: 160, H: 20},
			},
			Enemies:     EnemyBatch{Count: 8, StartX: 600, Spacing: 300, Bottom: 60},
			SpawnX:      50,
			SpawnBottom: 120,
		})
	}
	return World{Width: 3200, Stages: stages}
}
