package sim

import (
	"math"

	"github.com/milk9111/fragmentrun/common"
)

// MovementSystem turns the input axis into horizontal velocity.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(s *State) {
	if s == nil {
		return
	}
	p := &s.Player
	prof := s.Profile
	axis := s.Input.Axis

	switch prof.Move {
	case MoveAccel:
		p.VX += axis * prof.Accel
		p.VX *= prof.Friction
		if prof.MaxSpeed > 0 {
			p.VX = common.Clamp(p.VX, -prof.MaxSpeed, prof.MaxSpeed)
		}
		// drop sub-pixel drift so the idle state is reachable
		if axis == 0 && math.Abs(p.VX) < 0.01 {
			p.VX = 0
		}
	default:
		p.VX = axis * prof.Speed
	}

	if axis != 0 {
		p.Facing = common.Sign(axis)
	}
}

// GravitySystem pulls the player down every frame. There is no terminal velocity.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (g *GravitySystem) Update(s *State) {
	if s == nil {
		return
	}
	s.Player.VY += s.Profile.Gravity
}

// IntegrateSystem moves the player by its velocity.
type IntegrateSystem struct{}

func NewIntegrateSystem() *IntegrateSystem {
	return &IntegrateSystem{}
}

func (i *IntegrateSystem) Update(s *State) {
	if s == nil {
		return
	}
	s.Player.X += s.Player.VX
	s.Player.Y += s.Player.VY
}
