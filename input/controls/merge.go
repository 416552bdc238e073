// Package controls merges raw control sources into a sim.Input and lays out
// the on-screen action buttons. It has no Ebitengine dependency.
package controls

import (
	"math"

	"github.com/milk9111/fragmentrun/common"
	"github.com/milk9111/fragmentrun/sim"
)

const stickDeadzone = 0.2

// Raw is one frame of unmerged control state.
type Raw struct {
	Left, Right bool

	// GamepadX is the left stick value; ignored inside the dead zone.
	GamepadX float64
	// TouchX is the on-screen joystick value.
	TouchX float64

	Jump, Dash, Attack, Restart bool
}

// Merge combines sources into a control frame. A held move key wins over the
// gamepad, which wins over the touch stick.
func Merge(r Raw) sim.Input {
	in := sim.Input{
		Jump:    r.Jump,
		Dash:    r.Dash,
		Attack:  r.Attack,
		Restart: r.Restart,
	}
	switch {
	case r.Left || r.Right:
		if r.Left {
			in.Axis--
		}
		if r.Right {
			in.Axis++
		}
	case math.Abs(r.GamepadX) > stickDeadzone:
		in.Axis = common.Clamp(r.GamepadX, -1, 1)
	default:
		in.Axis = r.TouchX
	}
	return in
}

// Trigger marks the raw trigger for an on-screen action.
func (r *Raw) Trigger(a Action) {
	switch a {
	case ActionJump:
		r.Jump = true
	case ActionDash:
		r.Dash = true
	case ActionAttack:
		r.Attack = true
	}
}
