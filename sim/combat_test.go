package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeleeDamagesAndRemoves(t *testing.T) {
	s := newTestState(t)
	sched := DefaultScheduler()
	s.Enemies = []Enemy{
		{X: s.Player.X + 10, Y: s.Player.Y, W: 20, H: 20, Health: 2},
		{X: s.Player.X + 400, Y: s.Player.Y, W: 20, H: 20, Health: 2},
	}

	s.Step(sched, Input{Attack: true})
	require.Len(t, s.Enemies, 2)
	assert.Equal(t, 1, s.Enemies[0].Health)
	assert.Equal(t, 2, s.Enemies[1].Health)

	s.Step(sched, Input{})
	require.Len(t, s.Enemies, 1)
	assert.Equal(t, 2, s.Enemies[0].Health)
	assert.Equal(t, 1, countEvents(s.Events().Drain(), EventEnemyDefeated))
}

func TestMeleeRemovesAdjacentDeadEnemies(t *testing.T) {
	s := newTestState(t)
	s.Player.AttackTimer = 5
	s.Enemies = []Enemy{
		{X: s.Player.X, Health: 1},
		{X: s.Player.X + 5, Health: 1},
		{X: s.Player.X + 500, Health: 1},
		{X: s.Player.X - 5, Health: 3},
	}

	NewCombatSystem().Update(s)
	require.Len(t, s.Enemies, 2)
	assert.Equal(t, s.Player.X+500, s.Enemies[0].X)
	assert.Equal(t, 2, s.Enemies[1].Health)
}

func TestEnemyHealthNeverIncreases(t *testing.T) {
	s := newTestState(t)
	sched := DefaultScheduler()
	prev := map[int]int{}
	for i, e := range s.Enemies {
		prev[i] = e.Health
	}
	total := func() int {
		n := 0
		for _, e := range s.Enemies {
			n += e.Health
		}
		return n
	}
	last := total()

	for frame := 0; frame < 600; frame++ {
		s.Step(sched, Input{Attack: true})
		require.Equal(t, 0, s.StageIndex)
		cur := total()
		require.LessOrEqual(t, cur, last, "frame %d", frame)
		last = cur
		for _, e := range s.Enemies {
			require.Greater(t, e.Health, 0, "dead enemies must not stay active")
		}
	}
	assert.Less(t, len(s.Enemies), len(prev), "chasing enemies reach the attacking player")
}

func TestContactDamage(t *testing.T) {
	s := newTestState(t)
	s.Profile.ContactDamage = 1
	s.Profile.InvulnerableFrames = 60
	s.Player.Health = 2
	s.Enemies = []Enemy{{X: s.Player.X, Y: s.Player.Y, W: 20, H: 20, Health: 2}}

	sys := NewCombatSystem()
	sys.Update(s)
	assert.Equal(t, 1, s.Player.Health)
	assert.Equal(t, 60, s.Player.Invulnerable)

	sys.Update(s)
	assert.Equal(t, 1, s.Player.Health, "invulnerable frames block repeat hits")

	s.Player.Invulnerable = 0
	sys.Update(s)
	assert.Equal(t, 3, s.Player.Health, "defeat restarts with full health")
	evts := s.Events().Drain()
	assert.Equal(t, 1, countEvents(evts, EventPlayerDefeated))
	assert.Equal(t, 1, countEvents(evts, EventRestarted))
}

func TestClassicHasNoContactDamage(t *testing.T) {
	s := newTestState(t)
	s.Enemies = []Enemy{{X: s.Player.X, Y: s.Player.Y, W: 20, H: 20, Health: 2}}
	NewCombatSystem().Update(s)
	assert.Equal(t, 3, s.Player.Health)
}
