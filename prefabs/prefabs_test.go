package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/fragmentrun/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedClassicMatchesBuiltin(t *testing.T) {
	prof, err := LoadProfile("")
	require.NoError(t, err)
	assert.Equal(t, sim.ClassicProfile(), prof)
}

func TestLoadMomentumProfile(t *testing.T) {
	prof, err := LoadProfile("momentum")
	require.NoError(t, err)
	assert.Equal(t, sim.MoveAccel, prof.Move)
	assert.Equal(t, 16.0, prof.LandingBand)
	assert.Equal(t, sim.HUDHearts, prof.HUD)
	assert.Equal(t, 1, prof.ContactDamage)
	assert.False(t, prof.RestartResetsProgress)
	assert.Equal(t, "chase.tengo", prof.EnemyScriptName)
	assert.NotEmpty(t, prof.EnemyScript)

	s, err := sim.NewState(prof, sim.DefaultWorld(), sim.Viewport{W: 800, H: 600})
	require.NoError(t, err, "shipped chase script must compile")
	s.Player.X = 0
	s.Enemies = []sim.Enemy{{X: 100, Health: 2}}
	sim.NewEnemyAISystem().Update(s)
	assert.InDelta(t, 98.8, s.Enemies[0].X, 1e-9)
}

func TestProfileNames(t *testing.T) {
	names, err := ProfileNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"classic", "momentum"}, names)
}

func TestUnknownProfile(t *testing.T) {
	_, err := LoadProfile("turbo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "turbo")
}

func TestProfileSpecRejectsBadMove(t *testing.T) {
	_, err := ProfileSpec{Name: "x", Move: "teleport"}.Build()
	require.Error(t, err)
}

func TestProfileSpecMaxJumps(t *testing.T) {
	cases := []struct {
		name  string
		jumps int
		ok    bool
	}{
		{"unset_uses_default", 0, true},
		{"single", 1, true},
		{"double", 2, true},
		{"triple", 3, false},
		{"negative", -1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ProfileSpec{Name: "x", MaxJumps: c.jumps}.Build()
			if c.ok {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
		})
	}
}

func TestEmbeddedStagesMatchBuiltin(t *testing.T) {
	w, err := LoadWorld()
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultWorld(), w)
}

func TestStagesSpecValidation(t *testing.T) {
	cases := []struct {
		name string
		spec StagesSpec
	}{
		{"no_stages", StagesSpec{WorldWidth: 100}},
		{"no_width", StagesSpec{Stages: []StageSpec{{Name: "a", Platforms: []PlatformSpec{{H: 1}}}}}},
		{"no_platforms", StagesSpec{WorldWidth: 100, Stages: []StageSpec{{Name: "a"}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.spec.Build()
			require.Error(t, err)
		})
	}
}

func TestCleanScriptPath(t *testing.T) {
	for _, in := range []string{"chase.tengo", "scripts/chase.tengo", "prefabs/scripts/chase.tengo"} {
		assert.Equal(t, "scripts/chase.tengo", cleanScriptPath(in))
	}
}

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "stages.yaml")
	require.NoError(t, os.WriteFile(target, []byte("world_width: 1\n"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Pending()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)
	for _, name := range got {
		assert.Equal(t, target, name)
	}
}
