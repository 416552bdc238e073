package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fragmentrun/common"
)

const (
	joystickRadius     = 60
	joystickScale      = 40
	joystickKnobTravel = 30
	joystickMargin     = 30
)

// mouseTouchID lets a held left mouse button drive the stick like a touch.
const mouseTouchID ebiten.TouchID = -1

// Joystick is the fixed on-screen stick. A press inside its circle captures
// that touch; the axis is the clamped, scaled horizontal offset of the touch
// from the rest centre.
type Joystick struct {
	CenterX, CenterY float64
	Radius           float64

	active bool
	touch  ebiten.TouchID
	value  float64
}

func NewJoystick(cx, cy float64) *Joystick {
	return &Joystick{CenterX: cx, CenterY: cy, Radius: joystickRadius}
}

// Place anchors the stick to the bottom-left corner of the viewport.
func (j *Joystick) Place(viewH float64) {
	j.CenterX = joystickMargin + j.Radius
	j.CenterY = viewH - joystickMargin - j.Radius
}

func (j *Joystick) Contains(x, y float64) bool {
	return math.Hypot(x-j.CenterX, y-j.CenterY) <= j.Radius
}

// Press captures the touch if it lands on the stick and no other touch owns it.
func (j *Joystick) Press(id ebiten.TouchID, x, y float64) bool {
	if j.active || !j.Contains(x, y) {
		return false
	}
	j.active = true
	j.touch = id
	j.set(x)
	return true
}

// Move updates the axis for the owning touch. Dragging outside the circle
// keeps steering.
func (j *Joystick) Move(id ebiten.TouchID, x, y float64) {
	if !j.active || id != j.touch {
		return
	}
	j.set(x)
}

// Release resets the axis and snaps the knob back to centre.
func (j *Joystick) Release(id ebiten.TouchID) {
	if !j.active || id != j.touch {
		return
	}
	j.active = false
	j.value = 0
}

func (j *Joystick) set(x float64) {
	j.value = common.Clamp((x-j.CenterX)/joystickScale, -1, 1)
}

func (j *Joystick) Active() bool { return j.active }

func (j *Joystick) Touch() ebiten.TouchID { return j.touch }

func (j *Joystick) Value() float64 { return j.value }

// KnobOffset is the knob's horizontal displacement from centre in pixels.
func (j *Joystick) KnobOffset() float64 {
	return j.value * joystickKnobTravel
}
