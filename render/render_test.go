package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/fragmentrun/sim"
)

func TestStripX(t *testing.T) {
	tests := []struct {
		name    string
		i       int
		cameraX float64
		viewW   float64
		want    float64
	}{
		{"origin", 0, 0, 800, 0},
		{"wraps", 7, 0, 800, 40},
		{"scrolled past left edge", 0, 100, 800, -20},
		{"parallax", 2, 500, 800, 140},
		{"zero viewport", 3, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, StripX(tt.i, tt.cameraX, tt.viewW), 1e-9)
		})
	}
}

func TestRunnerFrame(t *testing.T) {
	assert.Equal(t, runnerFrames[sim.AnimIdle][0], RunnerFrame(sim.AnimIdle, 0.9))
	assert.Equal(t, runnerFrames[sim.AnimIdle][1], RunnerFrame(sim.AnimIdle, 1.7))
	assert.Equal(t, runnerFrames[sim.AnimRun][0], RunnerFrame(sim.AnimRun, 4.2))
	assert.Equal(t, runnerFrames[sim.AnimJump][0], RunnerFrame(sim.AnimJump, 5))
	assert.Equal(t, runnerFrames[sim.AnimAttack][0], RunnerFrame(sim.AnimAttack, 3.3))
	assert.Equal(t, runnerFrames[sim.AnimIdle][0], RunnerFrame(sim.AnimState("unknown"), 0))
}

func TestFramesAreSixBySix(t *testing.T) {
	for state, frames := range runnerFrames {
		for i, f := range frames {
			assert.Len(t, f, 6, "%s frame %d", state, i)
			for _, row := range f {
				assert.Len(t, row, 6, "%s frame %d", state, i)
			}
		}
	}
}

func TestCells(t *testing.T) {
	cells := Cells(runnerFrames[sim.AnimIdle][0])
	assert.Len(t, cells, 26)
	assert.Equal(t, Cell{X: 2, Y: 0}, cells[0])
	assert.Empty(t, Cells([]string{"000", "000"}))
}

func TestEnemyColor(t *testing.T) {
	assert.Equal(t, EnemyColorA, EnemyColor(0.2))
	assert.Equal(t, EnemyColorB, EnemyColor(0.7))
	assert.Equal(t, EnemyColorA, EnemyColor(1.3))
}

func TestSlashOffset(t *testing.T) {
	assert.Equal(t, 24.0, SlashOffset(1, 24))
	assert.Equal(t, -8.0, SlashOffset(-1, 24))
}

func TestPlayerVisible(t *testing.T) {
	assert.True(t, PlayerVisible(0))
	assert.True(t, PlayerVisible(3))
	assert.False(t, PlayerVisible(5))
	assert.True(t, PlayerVisible(9))
}
