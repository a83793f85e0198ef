package repository

import (
	"testing"
	"time"

	"github.com/reshetovitsme/channel-mirror/internal/modules/delivery/domain"
	settingsRepo "github.com/reshetovitsme/channel-mirror/internal/modules/settings/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T, ttl time.Duration, max int) *DocumentStorage {
	t.Helper()
	store, err := settingsRepo.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return NewDocumentStorage(store, ttl, max)
}

func TestRecordLookupForget(t *testing.T) {
	s := newStorage(t, 0, 0)
	now := time.Now()

	require.NoError(t, s.Record("-1001:10", now, []domain.Delivery{{Target: "@b", MessageID: 2}}))
	require.NoError(t, s.Record("-1001:10", now, []domain.Delivery{{Target: "@a", MessageID: 1}}))

	got, err := s.Lookup("-1001:10")
	require.NoError(t, err)
	assert.Equal(t, []domain.Delivery{{Target: "@a", MessageID: 1}, {Target: "@b", MessageID: 2}}, got)

	missing, err := s.Lookup("-1001:11")
	require.NoError(t, err)
	assert.Empty(t, missing)

	require.NoError(t, s.Forget("-1001:10"))
	got, err = s.Lookup("-1001:10")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPruneByAgeAndSize(t *testing.T) {
	s := newStorage(t, time.Hour, 2)
	now := time.Now()

	require.NoError(t, s.Record("old", now.Add(-2*time.Hour), []domain.Delivery{{Target: "@a", MessageID: 1}}))
	require.NoError(t, s.Record("k1", now.Add(-3*time.Minute), []domain.Delivery{{Target: "@a", MessageID: 2}}))
	require.NoError(t, s.Record("k2", now.Add(-2*time.Minute), []domain.Delivery{{Target: "@a", MessageID: 3}}))
	require.NoError(t, s.Record("k3", now.Add(-1*time.Minute), []domain.Delivery{{Target: "@a", MessageID: 4}}))

	removed, err := s.Prune(now)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	for key, present := range map[string]bool{"old": false, "k1": false, "k2": true, "k3": true} {
		got, err := s.Lookup(key)
		require.NoError(t, err)
		assert.Equal(t, present, len(got) > 0, key)
	}
}
