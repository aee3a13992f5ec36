package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBays(n int) GlobalConfig {
	cfg := DefaultConfig()
	for i := 0; i < n; i++ {
		cfg.Bays = append(cfg.Bays, NewBay(82.5, BayNormal))
	}
	return cfg
}

func TestHistory_InitialState(t *testing.T) {
	h := NewHistory(DefaultConfig())

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())
	assert.Equal(t, 1, h.Len())
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory(withBays(0))
	h.Push(withBays(1))
	h.Push(withBays(2))

	assert.Len(t, h.Current().Bays, 2)

	require.True(t, h.Undo())
	assert.Len(t, h.Current().Bays, 1)
	assert.True(t, h.CanRedo())

	require.True(t, h.Undo())
	assert.Len(t, h.Current().Bays, 0)
	assert.False(t, h.CanUndo())

	require.True(t, h.Redo())
	require.True(t, h.Redo())
	assert.Len(t, h.Current().Bays, 2)
	assert.False(t, h.CanRedo())
}

func TestHistory_PushTruncatesRedoTail(t *testing.T) {
	h := NewHistory(withBays(0))
	h.Push(withBays(1))
	h.Push(withBays(2))

	require.True(t, h.Undo())
	h.Push(withBays(3))

	assert.False(t, h.CanRedo(), "diverging discards the redo tail")
	assert.Equal(t, 3, h.Len())
	assert.Len(t, h.Current().Bays, 3)

	require.True(t, h.Undo())
	assert.Len(t, h.Current().Bays, 1)
}

func TestHistory_SnapshotsAreIsolated(t *testing.T) {
	cfg := withBays(1)
	h := NewHistory(cfg)

	// Mutating the pushed value must not reach back into history.
	cfg.Bays[0].Width = 1
	assert.Equal(t, 82.5, h.Current().Bays[0].Width)

	// Mutating what Current returned must not either.
	cur := h.Current()
	cur.Bays[0].Items = nil
	assert.Len(t, h.Current().Bays[0].Items, 3)
}

func TestHistory_Reset(t *testing.T) {
	h := NewHistory(withBays(0))
	h.Push(withBays(1))
	h.Reset(withBays(5))

	assert.Equal(t, 1, h.Len())
	assert.False(t, h.CanUndo())
	assert.Len(t, h.Current().Bays, 5)
}
