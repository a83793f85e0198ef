package service

import (
	"context"
	"testing"

	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	"github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
	"github.com/reshetovitsme/channel-mirror/internal/modules/settings/repository"
	"github.com/reshetovitsme/channel-mirror/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	ids   map[string]int64
	calls []string
}

func (r *stubResolver) Resolve(_ context.Context, ref string) (int64, error) {
	r.calls = append(r.calls, ref)
	id, ok := r.ids[ref]
	if !ok {
		return 0, errors.ErrInvalidRef
	}
	return id, nil
}

func newService(t *testing.T) *Service {
	t.Helper()
	repo, err := repository.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	svc := New(repo)
	require.NoError(t, svc.Bootstrap())
	return svc
}

func TestSourcesAndTargetsAreNormalizedAndIdempotent(t *testing.T) {
	svc := newService(t)

	key, added, err := svc.AddSource("https://t.me/News")
	require.NoError(t, err)
	assert.Equal(t, "@news", key)
	assert.True(t, added)

	_, added, err = svc.AddSource("@NEWS")
	require.NoError(t, err)
	assert.False(t, added, "same channel under another spelling")

	_, _, err = svc.AddTarget("123456789")
	require.NoError(t, err)

	routing, err := svc.Routing()
	require.NoError(t, err)
	assert.Equal(t, []string{"@news"}, routing.Sources)
	assert.Equal(t, []string{"-100123456789"}, routing.Targets)

	_, removed, err := svc.RemoveSource("t.me/news")
	require.NoError(t, err)
	assert.True(t, removed)

	_, removed, err = svc.RemoveSource("t.me/news")
	require.NoError(t, err)
	assert.False(t, removed)

	_, _, err = svc.AddSource("   ")
	assert.ErrorIs(t, err, errors.ErrInvalidRef)
}

func TestRoutes(t *testing.T) {
	svc := newService(t)

	rule, err := svc.AddRoute("@news", "@mirror", "@MIRROR", "-100555")
	require.NoError(t, err)
	assert.Equal(t, "@news", rule.Source)
	assert.Equal(t, []string{"@mirror", "-100555"}, rule.Targets)

	rule, err = svc.AddRoute("https://t.me/news", "@second")
	require.NoError(t, err)
	assert.Equal(t, []string{"@mirror", "-100555", "@second"}, rule.Targets)

	removed, err := svc.RemoveRoute("@News")
	require.NoError(t, err)
	assert.True(t, removed)

	routing, err := svc.Routing()
	require.NoError(t, err)
	assert.Empty(t, routing.Rules)

	_, err = svc.AddRoute("@news")
	assert.ErrorIs(t, err, errors.ErrInvalidRef)
}

func TestReplacements(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.UpsertReplacement(domain.NamespaceWords, "old", "new"))
	require.NoError(t, svc.UpsertReplacement(domain.NamespaceWords, "foo", "bar"))
	require.NoError(t, svc.UpsertReplacement(domain.NamespaceWords, " old ", "newer"))
	require.NoError(t, svc.UpsertReplacement(domain.NamespaceMentions, "spam", "ham"))
	require.NoError(t, svc.UpsertReplacement(domain.NamespaceLinks, "http://a", "http://b"))

	assert.ErrorIs(t, svc.UpsertReplacement(domain.NamespaceWords, "  ", "x"), errors.ErrEmptyKey)
	assert.ErrorIs(t, svc.UpsertReplacement(domain.Namespace("emoji"), "a", "b"), errors.ErrUnknownNamespace)

	r, err := svc.Replacements()
	require.NoError(t, err)
	assert.Equal(t, []domain.Replacement{{From: "old", To: "newer"}, {From: "foo", To: "bar"}}, r.Words)
	assert.Equal(t, []domain.Replacement{{From: "@spam", To: "@ham"}}, r.Mentions)
	assert.Equal(t, []domain.Replacement{{From: "http://a", To: "http://b"}}, r.Links)

	removed, err := svc.RemoveReplacement(domain.NamespaceMentions, "spam")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestBlacklistAndFilters(t *testing.T) {
	svc := newService(t)

	words, err := svc.SetBlacklist([]string{" buy ", "", "buy", "sale"})
	require.NoError(t, err)
	assert.Equal(t, []string{"buy", "sale"}, words)

	require.NoError(t, svc.SetBlacklistMode(domain.BlacklistModeReject))
	assert.Error(t, svc.SetBlacklistMode(domain.BlacklistMode("shred")))

	on, err := svc.ToggleFilter(domain.FilterNameBlacklist)
	require.NoError(t, err)
	assert.False(t, on)

	on, err = svc.ToggleFilter(domain.FilterNameLink)
	require.NoError(t, err)
	assert.True(t, on)

	_, err = svc.ToggleFilter(domain.FilterName("audio"))
	assert.ErrorIs(t, err, errors.ErrUnknownFilter)

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, domain.Blacklist{Enabled: false, Mode: domain.BlacklistModeReject, Words: []string{"buy", "sale"}}, snap.Blacklist)
	assert.True(t, snap.Filters.OnlyLink)
}

func TestForwardingSwitches(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.SetForwarding(false))
	require.NoError(t, svc.SetEditSync(true))
	require.NoError(t, svc.SetDeleteSync(true))

	status, err := svc.Forwarding()
	require.NoError(t, err)
	assert.Equal(t, domain.ForwardingStatus{Forwarding: false, EditSync: true, DeleteSync: true}, *status)
}

func TestResolveStoresAlias(t *testing.T) {
	svc := newService(t)
	resolver := &stubResolver{ids: map[string]int64{"@news": -100123}}
	svc.SetResolver(resolver)

	id, err := svc.Resolve(context.Background(), "https://t.me/News")
	require.NoError(t, err)
	assert.Equal(t, int64(-100123), id)
	assert.Equal(t, []string{"@news"}, resolver.calls)

	aliases, err := svc.Aliases()
	require.NoError(t, err)
	assert.Equal(t, "-100123", aliases.Canonical("@news"))

	_, err = svc.Resolve(context.Background(), "https://t.me/+InviteHash")
	assert.ErrorIs(t, err, errors.ErrInviteNotResolvable)
	assert.Len(t, resolver.calls, 1, "invite tokens never reach the platform")

	require.NoError(t, svc.SetAlias("https://t.me/+InviteHash", -100123))
	aliases, err = svc.Aliases()
	require.NoError(t, err)
	assert.Equal(t, identity.Aliases{"@news": "-100123", "invitehash": "-100123"}, aliases)
}

func TestResetAll(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.AddSource("@news")
	require.NoError(t, err)
	require.NoError(t, svc.UpsertReplacement(domain.NamespaceWords, "a", "b"))
	require.NoError(t, svc.SetForwarding(false))

	require.NoError(t, svc.ResetAll())

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snap.Routing.Sources)
	assert.Empty(t, snap.Replacements.Words)
	assert.False(t, snap.Forwarding.Forwarding, "reset leaves forwarding switches alone")
}
