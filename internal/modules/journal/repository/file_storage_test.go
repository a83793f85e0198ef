package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reshetovitsme/channel-mirror/internal/modules/journal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndGetEntries(t *testing.T) {
	store, err := NewFileStorage(t.TempDir(), 0)
	require.NoError(t, err)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveEntry(&domain.Entry{
			Target:    "@mirror",
			MessageID: 100 + i,
			Text:      "post",
			Date:      base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, store.SaveEntry(&domain.Entry{Target: "-100555", MessageID: 1, Date: base}))

	entries, err := store.GetEntries("@mirror", 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{104, 103, 102}, []int{entries[0].MessageID, entries[1].MessageID, entries[2].MessageID})

	targets, err := store.GetTargets()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"@mirror", "-100555"}, targets)
}

func TestGetEntriesUnknownTarget(t *testing.T) {
	store, err := NewFileStorage(t.TempDir(), 0)
	require.NoError(t, err)

	entries, err := store.GetEntries("@nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTargetDirSanitized(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStorage(dir, 0)
	require.NoError(t, err)

	require.NoError(t, store.SaveEntry(&domain.Entry{Target: "../escape", MessageID: 1, Date: time.Now()}))

	_, err = os.Stat(filepath.Join(dir, "escape"))
	assert.True(t, os.IsNotExist(err))
	entries, err := store.GetEntries("../escape", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPrune(t *testing.T) {
	store, err := NewFileStorage(t.TempDir(), time.Hour)
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, store.SaveEntry(&domain.Entry{Target: "@mirror", MessageID: 1, Date: now.Add(-2 * time.Hour)}))
	require.NoError(t, store.SaveEntry(&domain.Entry{Target: "@mirror", MessageID: 2, Date: now}))

	removed, err := store.Prune(now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	entries, err := store.GetEntries("@mirror", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].MessageID)
}

func TestPruneDisabled(t *testing.T) {
	store, err := NewFileStorage(t.TempDir(), 0)
	require.NoError(t, err)

	removed, err := store.Prune(time.Now().Add(24 * time.Hour))
	require.NoError(t, err)
	assert.Zero(t, removed)
}
