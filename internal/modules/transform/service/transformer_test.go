package service

import (
	"testing"

	settings "github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
	"github.com/stretchr/testify/assert"
)

func TestApplyNamespacesInOrder(t *testing.T) {
	r := settings.Replacements{
		Words:    []settings.Replacement{{From: "old", To: "new"}},
		Links:    []settings.Replacement{{From: "http://a.com", To: "http://b.com"}},
		Mentions: []settings.Replacement{{From: "@spam", To: "@ham"}},
	}

	got := Apply("old news at http://a.com by @spam", r)
	assert.Equal(t, "new news at http://b.com by @ham", got)
}

func TestApplyOverlapResolvedByOrder(t *testing.T) {
	r := settings.Replacements{
		Words: []settings.Replacement{{From: "cat", To: "dog"}, {From: "dog", To: "bird"}},
	}
	assert.Equal(t, "bird bird", Apply("cat dog", r))

	r.Words[0], r.Words[1] = r.Words[1], r.Words[0]
	assert.Equal(t, "dog bird", Apply("cat dog", r))
}

func TestApplyLiteralKeys(t *testing.T) {
	r := settings.Replacements{
		Words: []settings.Replacement{{From: "a.b*", To: "x"}, {From: "(", To: ""}},
	}
	assert.Equal(t, "x aab)", Apply("a.b* aab()", r))
}

func TestApplyCanEmptyText(t *testing.T) {
	r := settings.Replacements{Words: []settings.Replacement{{From: "gone", To: ""}}}
	assert.Equal(t, "", Apply("gone", r))
}

func TestApplyIdempotentWithoutSelfFeedingRules(t *testing.T) {
	r := settings.Replacements{
		Words:    []settings.Replacement{{From: "color", To: "colour"}},
		Mentions: []settings.Replacement{{From: "@old", To: "@new"}},
	}
	once := Apply("color by @old", r)
	assert.Equal(t, once, Apply(once, r))
}

func TestApplyIgnoresEmptyKeys(t *testing.T) {
	r := settings.Replacements{Words: []settings.Replacement{{From: "", To: "x"}}}
	assert.Equal(t, "abc", Apply("abc", r))
}
