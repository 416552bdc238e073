package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fragmentrun/sim"
)

func TestBannerQueue(t *testing.T) {
	b := NewBanner()
	assert.False(t, b.Pending())
	_, ok := b.Current()
	assert.False(t, ok)

	b.Notify(Message{Title: "one"})
	b.Notify(Message{Title: "two"})
	require.True(t, b.Pending())

	m, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, "one", m.Title)

	b.Dismiss()
	m, _ = b.Current()
	assert.Equal(t, "two", m.Title)

	b.Dismiss()
	assert.False(t, b.Pending())
	b.Dismiss()
	assert.False(t, b.Pending())
}

func TestForEvent(t *testing.T) {
	m, ok := ForEvent(sim.Event{Kind: sim.EventRestored})
	require.True(t, ok)
	assert.Equal(t, "SYSTEM RESTORED", m.Title)

	_, ok = ForEvent(sim.Event{Kind: sim.EventStageCleared})
	assert.False(t, ok)
}
