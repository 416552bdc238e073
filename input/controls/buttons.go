package controls

import "math"

// Action is a one-shot control.
type Action int

const (
	ActionJump Action = iota
	ActionDash
	ActionAttack
)

func (a Action) String() string {
	switch a {
	case ActionJump:
		return "JUMP"
	case ActionDash:
		return "DASH"
	case ActionAttack:
		return "ATK"
	}
	return "?"
}

// Button is a round on-screen action button.
type Button struct {
	Action Action
	X, Y   float64
	R      float64
}

func (b Button) Contains(x, y float64) bool {
	return math.Hypot(x-b.X, y-b.Y) <= b.R
}

const (
	buttonRadius  = 36
	buttonSpacing = 90
	buttonMargin  = 40
)

// ButtonLayout places jump, dash and attack along the bottom-right corner.
func ButtonLayout(viewW, viewH float64) []Button {
	y := viewH - buttonMargin - buttonRadius
	right := viewW - buttonMargin - buttonRadius
	return []Button{
		{Action: ActionAttack, X: right - 2*buttonSpacing, Y: y, R: buttonRadius},
		{Action: ActionDash, X: right - buttonSpacing, Y: y - buttonRadius, R: buttonRadius},
		{Action: ActionJump, X: right, Y: y, R: buttonRadius},
	}
}

// HitTest returns the action of the first button under (x, y).
func HitTest(buttons []Button, x, y float64) (Action, bool) {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b.Action, true
		}
	}
	return 0, false
}
