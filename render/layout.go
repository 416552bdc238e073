package render

import (
	"image/color"
	"math"
)

const (
	stripCount   = 120
	stripSpacing = 120
	stripY       = 80
	stripW       = 40
	stripH       = 2
	parallax     = 0.2
)

// StripX is the screen X of background strip i. The remainder keeps the
// dividend's sign, so strips scrolled past the left edge sit off screen.
func StripX(i int, cameraX, viewW float64) float64 {
	if viewW <= 0 {
		return 0
	}
	return math.Mod(float64(i)*stripSpacing-cameraX*parallax, viewW)
}

// EnemyColor alternates between two reds on the enemy's animation phase.
func EnemyColor(anim float64) color.RGBA {
	if math.Mod(anim, 1) < 0.5 {
		return EnemyColorA
	}
	return EnemyColorB
}

// SlashOffset is the attack bar's X relative to the player's X.
func SlashOffset(facing, playerW float64) float64 {
	if facing > 0 {
		return playerW
	}
	return -8
}

// PlayerVisible blinks the player while invulnerable.
func PlayerVisible(invulnerable int) bool {
	return invulnerable <= 0 || (invulnerable/4)%2 == 0
}
