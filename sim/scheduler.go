package sim

// System advances one concern of the simulation by a frame.
type System interface {
	Update(s *State)
}

// SystemFunc adapts a function to System.
type SystemFunc func(s *State)

func (f SystemFunc) Update(s *State) { f(s) }

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(st *State) {
	for _, system := range s.systems {
		system.Update(st)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// DefaultScheduler returns the frame pipeline in its fixed order. Triggers
// run after movement so a dash impulse survives into integration.
func DefaultScheduler() *Scheduler {
	return NewScheduler(
		NewMovementSystem(),
		NewTriggerSystem(),
		NewGravitySystem(),
		NewIntegrateSystem(),
		NewCooldownSystem(),
		NewCollisionSystem(),
		NewAnimationSystem(),
		NewEnemyAISystem(),
		NewCombatSystem(),
		NewCameraSystem(),
		NewProgressionSystem(),
	)
}
