package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectMovement(t *testing.T) {
	s := newTestState(t)
	sys := NewMovementSystem()

	s.Input = Input{Axis: -1}
	sys.Update(s)
	assert.Equal(t, -5.0, s.Player.VX)
	assert.Equal(t, -1.0, s.Player.Facing)

	s.Input = Input{Axis: 0.5}
	sys.Update(s)
	assert.Equal(t, 2.5, s.Player.VX)
	assert.Equal(t, 1.0, s.Player.Facing)

	s.Input = Input{}
	sys.Update(s)
	assert.Equal(t, 0.0, s.Player.VX)
	assert.Equal(t, 1.0, s.Player.Facing, "facing holds when the axis is released")
}

func TestAccelMovement(t *testing.T) {
	cases := []struct {
		name     string
		accel    float64
		maxSpeed float64
		want     float64
	}{
		{"converges_below_cap", 0.8, 6, 0.8 * 0.85 / (1 - 0.85)},
		{"clamped", 3, 6, 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestState(t)
			s.Profile.Move = MoveAccel
			s.Profile.Accel = c.accel
			s.Profile.Friction = 0.85
			s.Profile.MaxSpeed = c.maxSpeed
			sys := NewMovementSystem()

			s.Input = Input{Axis: 1}
			for i := 0; i < 300; i++ {
				sys.Update(s)
				assert.LessOrEqual(t, math.Abs(s.Player.VX), c.maxSpeed)
			}
			assert.InDelta(t, c.want, s.Player.VX, 1e-6)

			s.Input = Input{}
			for i := 0; i < 300; i++ {
				sys.Update(s)
			}
			assert.Equal(t, 0.0, s.Player.VX)
		})
	}
}

func TestGravityIsUncapped(t *testing.T) {
	s := newTestState(t)
	sched := NewScheduler(NewGravitySystem(), NewIntegrateSystem())
	y := s.Player.Y
	for i := 0; i < 100; i++ {
		s.Step(sched, Input{})
	}
	assert.InDelta(t, 60.0, s.Player.VY, 1e-9)
	assert.InDelta(t, y+0.6*100*101/2, s.Player.Y, 1e-6)
}

func TestAnimationStatePriority(t *testing.T) {
	cases := []struct {
		name string
		p    Player
		want AnimState
	}{
		{"idle", Player{}, AnimIdle},
		{"slow_walk_is_idle", Player{VX: 1}, AnimIdle},
		{"run", Player{VX: -3}, AnimRun},
		{"airborne", Player{VX: 5, VY: -2}, AnimJump},
		{"attack_wins", Player{VX: 5, VY: 4, AttackTimer: 3}, AnimAttack},
		{"expired_attack", Player{AttackTimer: -2}, AnimIdle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, deriveAnimState(c.p, 1))
		})
	}
}

func TestAnimationPhaseAdvances(t *testing.T) {
	s := newTestState(t)
	sys := NewAnimationSystem()
	for i := 0; i < 10; i++ {
		sys.Update(s)
	}
	assert.InDelta(t, 1.5, s.Player.Anim, 1e-9)
}
