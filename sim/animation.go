package sim

import "math"

// AnimationSystem advances the player's animation phase and derives its state.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(s *State) {
	if s == nil {
		return
	}
	p := &s.Player
	p.Anim += s.Profile.AnimStep
	p.State = deriveAnimState(*p, s.Profile.RunThreshold)
}

func deriveAnimState(p Player, runThreshold float64) AnimState {
	switch {
	case p.AttackTimer > 0:
		return AnimAttack
	case p.VY != 0:
		return AnimJump
	case math.Abs(p.VX) > runThreshold:
		return AnimRun
	}
	return AnimIdle
}
