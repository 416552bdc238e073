package sim

// ProgressionSystem detects the player crossing the finish line, awards a
// fragment and loads the next stage. Clearing the last stage emits
// EventRestored and starts over from stage 0.
type ProgressionSystem struct{}

func NewProgressionSystem() *ProgressionSystem {
	return &ProgressionSystem{}
}

func (ps *ProgressionSystem) Update(s *State) {
	if s == nil {
		return
	}
	if s.Player.X <= s.World.Width-s.Profile.FinishMargin {
		return
	}
	s.AdvanceStage()
}

// AdvanceStage completes the current stage.
func (s *State) AdvanceStage() {
	cleared := s.CurrentStage().Name
	s.Fragments++
	s.StageIndex++
	s.events.Push(Event{Kind: EventStageCleared, Stage: s.StageIndex - 1, Name: cleared})

	if s.StageIndex >= len(s.World.Stages) {
		s.events.Push(Event{Kind: EventRestored, Stage: s.StageIndex - 1, Name: cleared})
		s.StageIndex = 0
		s.Fragments = 0
		s.resetPlayer()
	}
	s.LoadStage()
}
