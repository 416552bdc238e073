package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/fragmentrun/sim"
)

var testViewport = sim.Viewport{W: 800, H: 600}

func TestLoadStateDefaultProfile(t *testing.T) {
	st, err := loadState("", testViewport)
	require.NoError(t, err)
	assert.Equal(t, "classic", st.Profile.Name)
	assert.Equal(t, "Root Directory", st.CurrentStage().Name)
}

func TestLoadStateUnknownProfile(t *testing.T) {
	_, err := loadState("nope", testViewport)
	assert.Error(t, err)
}

func TestReloadStateKeepsProgress(t *testing.T) {
	prev, err := loadState("classic", testViewport)
	require.NoError(t, err)
	require.NoError(t, prev.GoToStage(2))
	prev.Fragments = 2

	st, err := reloadState(prev, "momentum")
	require.NoError(t, err)
	assert.Equal(t, "momentum", st.Profile.Name)
	assert.Equal(t, 2, st.StageIndex)
	assert.Equal(t, 2, st.Fragments)
	assert.Zero(t, st.Events().Len())
}

func TestSnapshotYAML(t *testing.T) {
	st, err := loadState("classic", testViewport)
	require.NoError(t, err)
	st.Enemies = st.Enemies[:2]
	st.Enemies[1].Health = 1

	b, err := yaml.Marshal(takeSnapshot(st))
	require.NoError(t, err)

	var got snapshot
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, "Root Directory", got.Stage)
	assert.Equal(t, 50.0, got.Player.X)
	assert.Equal(t, "idle", got.Player.State)
	require.Len(t, got.Enemies, 2)
	assert.Equal(t, 1, got.Enemies[1].Health)
	assert.Contains(t, string(b), "stage_index: 0")
}
