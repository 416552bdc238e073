package sim

import (
	"errors"
	"fmt"
)

// AnimState is the player's derived animation state.
type AnimState string

const (
	AnimIdle   AnimState = "idle"
	AnimRun    AnimState = "run"
	AnimJump   AnimState = "jump"
	AnimAttack AnimState = "attack"
)

// Input is the polled control frame sampled once at the top of a step.
type Input struct {
	// Axis is the horizontal control value in [-1, 1].
	Axis float64
	// Jump, Dash, Attack and Restart are true on the frame they were pressed.
	Jump    bool
	Dash    bool
	Attack  bool
	Restart bool
}

type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	Jumps        int
	Facing       float64
	DashCooldown int
	AttackTimer  int
	Invulnerable int

	Anim   float64
	State  AnimState
	Health int
}

func (p Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Attacking reports whether the attack timer is active.
func (p Player) Attacking() bool {
	return p.AttackTimer > 0
}

type Enemy struct {
	X, Y   float64
	W, H   float64
	Health int
	Anim   float64
}

func (e Enemy) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

func (e Enemy) Alive() bool {
	return e.Health > 0
}

// Camera is the horizontal scroll subtracted from world X to get screen X.
type Camera struct {
	X float64
}

// Viewport is the drawing surface size in pixels.
type Viewport struct {
	W, H float64
}

// State is the whole simulation. It has a single owner, the loop driver,
// and is passed by reference into every system and the renderer.
type State struct {
	Profile  Profile
	World    World
	Viewport Viewport

	StageIndex int
	Fragments  int

	Player    Player
	Enemies   []Enemy
	Platforms []Rect
	Camera    Camera

	Input Input
	Frame int

	events EventQueue
	ai     *enemyScript
}

var ErrNoStages = errors.New("sim: world has no stages")

// NewState builds a state at stage 0 with the player at its spawn point.
func NewState(p Profile, w World, vp Viewport) (*State, error) {
	if len(w.Stages) == 0 {
		return nil, ErrNoStages
	}
	if p.MaxJumps <= 0 || p.MaxJumps > JumpLimit {
		p.MaxJumps = JumpLimit
	}

	s := &State{
		Profile:  p,
		World:    w,
		Viewport: vp,
	}
	if len(p.EnemyScript) > 0 {
		rt, err := compileEnemyScript(p.EnemyScriptName, p.EnemyScript)
		if err != nil {
			return nil, fmt.Errorf("sim: enemy script %s: %w", p.EnemyScriptName, err)
		}
		s.ai = rt
	}

	s.resetPlayer()
	s.LoadStage()
	return s, nil
}

// Events returns the event queue of the most recent step.
func (s *State) Events() *EventQueue {
	if s == nil {
		return nil
	}
	return &s.events
}

// CurrentStage returns the active stage definition.
func (s *State) CurrentStage() Stage {
	return s.World.Stages[s.StageIndex]
}

// Step runs one frame of the default pipeline with the given input.
func (s *State) Step(sched *Scheduler, in Input) {
	s.events.flush()
	s.Input = in
	sched.Update(s)
	s.Frame++
}

// SetViewport records a new surface size. World geometry is not rescaled;
// the next stage load uses the new height.
func (s *State) SetViewport(vp Viewport) {
	s.Viewport = vp
}

// Restart resets the player and reloads the current stage. Profiles with
// RestartResetsProgress also return to stage 0 with no fragments.
func (s *State) Restart() {
	if s.Profile.RestartResetsProgress {
		s.Fragments = 0
		s.StageIndex = 0
	}
	s.resetPlayer()
	s.LoadStage()
	s.events.Push(Event{Kind: EventRestarted, Stage: s.StageIndex, Name: s.CurrentStage().Name})
}

func (s *State) resetPlayer() {
	p := s.Profile
	s.Player = Player{
		W:      p.PlayerW,
		H:      p.PlayerH,
		Jumps:  p.MaxJumps,
		Facing: 1,
		State:  AnimIdle,
		Health: p.PlayerHealth,
	}
}
