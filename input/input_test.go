package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoystickAxis(t *testing.T) {
	j := NewJoystick(100, 500)

	require.False(t, j.Press(1, 400, 500), "press outside the stick is ignored")
	require.True(t, j.Press(1, 120, 500))
	assert.InDelta(t, 0.5, j.Value(), 1e-9)
	assert.InDelta(t, 15.0, j.KnobOffset(), 1e-9)

	require.False(t, j.Press(2, 100, 500), "second touch cannot steal the stick")

	j.Move(2, 0, 500)
	assert.InDelta(t, 0.5, j.Value(), 1e-9, "foreign touch ignored")

	j.Move(1, 20, 500)
	assert.Equal(t, -1.0, j.Value())
	j.Move(1, 1000, 300)
	assert.Equal(t, 1.0, j.Value(), "dragging past the rim keeps clamping")

	j.Release(1)
	assert.False(t, j.Active())
	assert.Equal(t, 0.0, j.Value())
	assert.Equal(t, 0.0, j.KnobOffset())
}

func TestJoystickPlace(t *testing.T) {
	j := NewJoystick(0, 0)
	j.Place(600)
	assert.Equal(t, 90.0, j.CenterX)
	assert.Equal(t, 510.0, j.CenterY)
}
