package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chaseScript = `
dx = 0.0
if player_x > enemy_x {
	dx = speed
} else if player_x < enemy_x {
	dx = -speed
}
`

func TestEnemyChaseStep(t *testing.T) {
	cases := []struct {
		name    string
		enemyX  float64
		playerX float64
		want    float64
	}{
		{"player_right", 100, 400, 101.2},
		{"player_left", 400, 100, 398.8},
		{"same_x", 250, 250, 250},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestState(t)
			s.Player.X = c.playerX
			s.Enemies = []Enemy{{X: c.enemyX, Health: 2}}
			NewEnemyAISystem().Update(s)
			assert.InDelta(t, c.want, s.Enemies[0].X, 1e-9)
			assert.InDelta(t, 0.1, s.Enemies[0].Anim, 1e-9)
		})
	}
}

func TestScriptedChaseMatchesBuiltin(t *testing.T) {
	builtin := newTestState(t)

	prof := ClassicProfile()
	prof.EnemyScriptName = "chase.tengo"
	prof.EnemyScript = []byte(chaseScript)
	scripted, err := NewState(prof, DefaultWorld(), testViewport)
	require.NoError(t, err)
	require.NotNil(t, scripted.ai)

	pairs := [][2]float64{{0, 10}, {10, 0}, {5, 5}, {-20, 3000}, {3000, -20}}
	for _, p := range pairs {
		want := builtin.chaseStep(p[0], p[1], 1.2)
		got := scripted.chaseStep(p[0], p[1], 1.2)
		assert.InDelta(t, want, got, 1e-9, "enemy=%v player=%v", p[0], p[1])
	}
	require.NotNil(t, scripted.ai, "script stays active when it succeeds")
}

func TestBadEnemyScriptFailsState(t *testing.T) {
	prof := ClassicProfile()
	prof.EnemyScriptName = "broken.tengo"
	prof.EnemyScript = []byte(`dx = (`)
	_, err := NewState(prof, DefaultWorld(), testViewport)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.tengo")
}
