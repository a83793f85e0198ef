package domain

import (
	"testing"

	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	"github.com/stretchr/testify/assert"
)

func TestEventContentKind(t *testing.T) {
	cases := []struct {
		name    string
		media   *Media
		kind    ContentKind
		isImage bool
		isVideo bool
	}{
		{name: "text", media: nil, kind: ContentKindText},
		{name: "photo", media: &Media{Kind: ContentKindPhoto}, kind: ContentKindPhoto, isImage: true},
		{name: "video", media: &Media{Kind: ContentKindVideo}, kind: ContentKindVideo, isVideo: true},
		{name: "image file", media: &Media{Kind: ContentKindFile, MimeType: "IMAGE/PNG"}, kind: ContentKindFile, isImage: true},
		{name: "video file", media: &Media{Kind: ContentKindFile, MimeType: "video/mp4"}, kind: ContentKindFile, isVideo: true},
		{name: "pdf", media: &Media{Kind: ContentKindFile, MimeType: "application/pdf"}, kind: ContentKindFile},
		{name: "sticker", media: &Media{Kind: ContentKindSticker}, kind: ContentKindSticker},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := &Event{Media: tc.media}
			assert.Equal(t, tc.kind, ev.ContentKind())
			assert.Equal(t, tc.isImage, ev.IsImage())
			assert.Equal(t, tc.isVideo, ev.IsVideo())
		})
	}
}

func TestEventKey(t *testing.T) {
	ev := &Event{Origin: identity.Origin{ChatID: -100123, Username: "news"}, MessageID: 7}
	assert.Equal(t, "-100123:7", ev.Key())
}
