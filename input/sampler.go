package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/fragmentrun/input/controls"
	"github.com/milk9111/fragmentrun/sim"
)

// Bindings maps controls to keys.
type Bindings struct {
	Left, Right []ebiten.Key
	Jump        []ebiten.Key
	Dash        []ebiten.Key
	Attack      []ebiten.Key
	Restart     []ebiten.Key
}

var DefaultBindings = Bindings{
	Left:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
	Right:   []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
	Jump:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
	Dash:    []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	Attack:  []ebiten.Key{ebiten.KeyJ},
	Restart: []ebiten.Key{ebiten.KeyR},
}

// Sampler polls Ebitengine once per frame and produces a sim.Input.
type Sampler struct {
	Bindings Bindings
	Joystick *Joystick
	Buttons  []controls.Button

	// Disabled suppresses every source, e.g. while a modal is open.
	Disabled bool

	touchIDs []ebiten.TouchID
}

func NewSampler() *Sampler {
	return &Sampler{
		Bindings: DefaultBindings,
		Joystick: NewJoystick(0, 0),
	}
}

// Layout repositions the touch controls for a viewport size.
func (s *Sampler) Layout(vp sim.Viewport) {
	s.Joystick.Place(vp.H)
	s.Buttons = controls.ButtonLayout(vp.W, vp.H)
}

func (s *Sampler) Sample() sim.Input {
	if s.Disabled {
		s.Joystick.Release(s.Joystick.Touch())
		return sim.Input{}
	}

	var r controls.Raw
	b := s.Bindings
	r.Left = anyPressed(b.Left)
	r.Right = anyPressed(b.Right)
	r.Jump = anyJustPressed(b.Jump)
	r.Dash = anyJustPressed(b.Dash)
	r.Attack = anyJustPressed(b.Attack)
	r.Restart = anyJustPressed(b.Restart)

	s.pollGamepad(&r)
	s.pollTouches(&r)
	s.pollMouse(&r)

	r.TouchX = s.Joystick.Value()
	return controls.Merge(r)
}

func (s *Sampler) pollGamepad(r *controls.Raw) {
	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	id := ids[0]
	r.GamepadX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	r.Jump = r.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	r.Dash = r.Dash || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	r.Attack = r.Attack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	r.Restart = r.Restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
}

func (s *Sampler) pollTouches(r *controls.Raw) {
	j := s.Joystick
	if j.Active() && j.Touch() != mouseTouchID {
		if inpututil.IsTouchJustReleased(j.Touch()) {
			j.Release(j.Touch())
		} else {
			x, y := ebiten.TouchPosition(j.Touch())
			j.Move(j.Touch(), float64(x), float64(y))
		}
	}

	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		ix, iy := ebiten.TouchPosition(id)
		x, y := float64(ix), float64(iy)
		if j.Press(id, x, y) {
			continue
		}
		if a, ok := controls.HitTest(s.Buttons, x, y); ok {
			r.Trigger(a)
		}
	}
}

func (s *Sampler) pollMouse(r *controls.Raw) {
	j := s.Joystick
	ix, iy := ebiten.CursorPosition()
	x, y := float64(ix), float64(iy)

	if j.Active() && j.Touch() == mouseTouchID {
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			j.Release(mouseTouchID)
		} else {
			j.Move(mouseTouchID, x, y)
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if j.Press(mouseTouchID, x, y) {
		return
	}
	if a, ok := controls.HitTest(s.Buttons, x, y); ok {
		r.Trigger(a)
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
