package service

import (
	"testing"

	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
	settings "github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
	"github.com/stretchr/testify/assert"
)

var (
	textMsg  = &message.Event{Text: "hello world"}
	linkMsg  = &message.Event{Text: "read https://example.com now"}
	photoMsg = &message.Event{Text: "caption", Media: &message.Media{Kind: message.ContentKindPhoto, FileID: "p"}}
	videoMsg = &message.Event{Media: &message.Media{Kind: message.ContentKindVideo, FileID: "v"}}
	pngFile  = &message.Event{Media: &message.Media{Kind: message.ContentKindFile, FileID: "f", MimeType: "image/png"}}
)

func TestMediaFilters(t *testing.T) {
	cases := []struct {
		name    string
		filters settings.FilterSet
		ev      *message.Event
		drop    bool
	}{
		{name: "no filters", filters: settings.FilterSet{}, ev: photoMsg},
		{name: "only text keeps text", filters: settings.FilterSet{OnlyText: true}, ev: textMsg},
		{name: "only text drops photo", filters: settings.FilterSet{OnlyText: true}, ev: photoMsg, drop: true},
		{name: "only image keeps photo", filters: settings.FilterSet{OnlyImage: true}, ev: photoMsg},
		{name: "only image keeps image file", filters: settings.FilterSet{OnlyImage: true}, ev: pngFile},
		{name: "only image drops video", filters: settings.FilterSet{OnlyImage: true}, ev: videoMsg, drop: true},
		{name: "only video keeps video", filters: settings.FilterSet{OnlyVideo: true}, ev: videoMsg},
		{name: "only video drops text", filters: settings.FilterSet{OnlyVideo: true}, ev: textMsg, drop: true},
		{name: "only link keeps link", filters: settings.FilterSet{OnlyLink: true}, ev: linkMsg},
		{name: "only link drops plain text", filters: settings.FilterSet{OnlyLink: true}, ev: textMsg, drop: true},
		{name: "link entity counts", filters: settings.FilterSet{OnlyLink: true}, ev: &message.Event{Text: "see here", Links: []string{"https://x"}}},
		{name: "text and link combined", filters: settings.FilterSet{OnlyText: true, OnlyLink: true}, ev: linkMsg},
		{name: "text and image can never both hold", filters: settings.FilterSet{OnlyText: true, OnlyImage: true}, ev: photoMsg, drop: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Apply(tc.ev, tc.filters, settings.Blacklist{})
			assert.Equal(t, tc.drop, v.Drop)
			if tc.drop {
				assert.Equal(t, StageMedia, v.Stage)
			}
		})
	}
}

func TestMentionBlock(t *testing.T) {
	ev := &message.Event{Text: "ping @someone"}

	v := Apply(ev, settings.FilterSet{BlockMentions: true}, settings.Blacklist{})
	assert.True(t, v.Drop)
	assert.Equal(t, StageMentions, v.Stage)

	v = Apply(ev, settings.FilterSet{}, settings.Blacklist{})
	assert.False(t, v.Drop)
	assert.Equal(t, "ping @someone", v.Text)
}

func TestBlacklistStrip(t *testing.T) {
	ev := &message.Event{Text: "buy now, buy cheap http://spam"}
	bl := settings.Blacklist{Enabled: true, Mode: settings.BlacklistModeStrip, Words: []string{"buy", "cheap", "absent"}}

	v := Apply(ev, settings.FilterSet{}, bl)
	assert.False(t, v.Drop)
	assert.Equal(t, " now,   http://spam", v.Text)
	assert.Equal(t, "buy now, buy cheap http://spam", ev.Text, "the event itself is not modified")
}

func TestBlacklistReject(t *testing.T) {
	bl := settings.Blacklist{Enabled: true, Mode: settings.BlacklistModeReject, Words: []string{"casino"}}

	v := Apply(&message.Event{Text: "best casino"}, settings.FilterSet{}, bl)
	assert.True(t, v.Drop)
	assert.Equal(t, StageBlacklist, v.Stage)

	v = Apply(&message.Event{Text: "clean"}, settings.FilterSet{}, bl)
	assert.False(t, v.Drop)
	assert.Equal(t, "clean", v.Text)
}

func TestBlacklistDisabled(t *testing.T) {
	bl := settings.Blacklist{Enabled: false, Mode: settings.BlacklistModeReject, Words: []string{"casino"}}

	v := Apply(&message.Event{Text: "best casino"}, settings.FilterSet{}, bl)
	assert.False(t, v.Drop)
	assert.Equal(t, "best casino", v.Text)
}

func TestStagesShortCircuit(t *testing.T) {
	// dropped by the media stage before the mention stage could run
	v := Apply(&message.Event{Text: "@a"}, settings.FilterSet{OnlyLink: true, BlockMentions: true}, settings.Blacklist{})
	assert.Equal(t, StageMedia, v.Stage)

	// dropped by the mention stage before the blacklist stage could run
	bl := settings.Blacklist{Enabled: true, Mode: settings.BlacklistModeReject, Words: []string{"@a"}}
	v = Apply(&message.Event{Text: "@a"}, settings.FilterSet{BlockMentions: true}, bl)
	assert.Equal(t, StageMentions, v.Stage)
}
